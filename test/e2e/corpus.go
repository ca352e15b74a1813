// Package e2e provides end-to-end tests with a generated FAQ corpus and query cases.
package e2e

import (
	"fmt"
	"os"
	"strings"

	"github.com/hyperjump/kotae/internal/models"
)

// QueryTestCase defines a question and the corpus question(s) whose answer is
// acceptable. The engine must either return one of those answers or surface one
// of those questions as a suggestion.
type QueryTestCase struct {
	Query             string
	ExpectedQuestions []string
	Description       string
}

// Corpus holds FAQ entries and query test cases for E2E tests.
type Corpus struct {
	Entries      []models.FaqEntry
	TestCases    []QueryTestCase
	TotalEntries int
	TotalQueries int
}

var corpusPlans = []string{"starter", "team", "business", "enterprise"}

// Each topic carries a unique action phrase so queries can target a specific
// group of entries.
var corpusTopics = []string{
	"reset my password",
	"update billing details",
	"cancel my subscription",
	"export my data",
	"invite a teammate",
	"change my email address",
	"enable two factor authentication",
	"delete my account",
	"upgrade my storage",
	"download an invoice",
	"connect a custom domain",
	"rotate my api key",
	"configure webhook notifications",
	"restore a deleted project",
	"transfer workspace ownership",
	"merge duplicate contacts",
	"schedule a recurring report",
	"archive an old project",
	"set a spending limit",
	"review login activity",
	"import contacts from a spreadsheet",
	"pause outgoing campaigns",
	"customize the signup form",
	"request a refund",
	"track email open rates",
}

// BuildCorpus returns a corpus of 100 FAQ entries (25 topics across 4 plans)
// and query test cases targeting specific entries.
func BuildCorpus() *Corpus {
	entries := buildEntries()
	cases := buildQueryTestCases()
	return &Corpus{
		Entries:      entries,
		TestCases:    cases,
		TotalEntries: len(entries),
		TotalQueries: len(cases),
	}
}

func buildEntries() []models.FaqEntry {
	entries := make([]models.FaqEntry, 0, len(corpusTopics)*len(corpusPlans))
	for _, topic := range corpusTopics {
		for _, plan := range corpusPlans {
			entries = append(entries, models.FaqEntry{
				Question: questionFor(topic, plan),
				Answer:   answerFor(topic, plan),
			})
		}
	}
	return entries
}

func questionFor(topic, plan string) string {
	return fmt.Sprintf("How do I %s on the %s plan?", topic, plan)
}

func answerFor(topic, plan string) string {
	return fmt.Sprintf("To %s on the %s plan, open Settings and follow the steps in the help article.", topic, plan)
}

func buildQueryTestCases() []QueryTestCase {
	var cases []QueryTestCase

	// Exact question text must resolve to that entry.
	for _, topic := range []string{"reset my password", "download an invoice", "request a refund"} {
		for _, plan := range []string{"starter", "enterprise"} {
			cases = append(cases, QueryTestCase{
				Query:             questionFor(topic, plan),
				ExpectedQuestions: []string{questionFor(topic, plan)},
				Description:       fmt.Sprintf("exact question: %s / %s", topic, plan),
			})
		}
	}

	// A paraphrase with topic and plan terms must land on the right entry.
	paraphrases := []struct {
		query string
		topic string
		plan  string
	}{
		{"password reset team", "reset my password", "team"},
		{"invoice download business", "download an invoice", "business"},
		{"rotate api key enterprise", "rotate my api key", "enterprise"},
		{"webhook notifications starter", "configure webhook notifications", "starter"},
	}
	for _, p := range paraphrases {
		cases = append(cases, QueryTestCase{
			Query:             p.query,
			ExpectedQuestions: []string{questionFor(p.topic, p.plan)},
			Description:       "paraphrase: " + p.query,
		})
	}

	// A topic-only query may resolve to any plan variant of that topic.
	for _, topic := range []string{"cancel my subscription", "merge duplicate contacts"} {
		expected := make([]string, 0, len(corpusPlans))
		for _, plan := range corpusPlans {
			expected = append(expected, questionFor(topic, plan))
		}
		cases = append(cases, QueryTestCase{
			Query:             topic,
			ExpectedQuestions: expected,
			Description:       "topic only: " + topic,
		})
	}
	return cases
}

// WriteFile writes the corpus to path in the Q:/A: text format.
func (c *Corpus) WriteFile(path string) error {
	var b strings.Builder
	for _, e := range c.Entries {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n\n", e.Question, e.Answer)
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

// AnswerByQuestion returns a lookup from question text to answer.
func (c *Corpus) AnswerByQuestion() map[string]string {
	m := make(map[string]string, len(c.Entries))
	for _, e := range c.Entries {
		m[e.Question] = e.Answer
	}
	return m
}
