package benchmark

import (
	"fmt"
	"testing"

	"github.com/hyperjump/kotae/internal/fuzzy"
	"github.com/hyperjump/kotae/internal/normalize"
	"github.com/hyperjump/kotae/internal/relevance"
)

func benchQuestions(n int) []string {
	topics := []string{
		"reset my password", "update billing details", "cancel my subscription",
		"export my data", "invite a teammate", "change my email address",
		"enable two factor authentication", "delete my account",
	}
	questions := make([]string, n)
	for i := 0; i < n; i++ {
		questions[i] = fmt.Sprintf("How do I %s in workspace %d?", topics[i%len(topics)], i)
	}
	return questions
}

func BenchmarkNormalize(b *testing.B) {
	n, err := normalize.New()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Normalize("How do I reset my password after changing my email address?")
	}
}

func BenchmarkRelevanceBuild(b *testing.B) {
	n, err := normalize.New()
	if err != nil {
		b.Fatal(err)
	}
	questions := benchQuestions(1000)
	normalized := make([]string, len(questions))
	for i, q := range questions {
		normalized[i] = n.Normalize(q)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = relevance.Build(normalized)
	}
}

func BenchmarkRelevanceScore(b *testing.B) {
	n, err := normalize.New()
	if err != nil {
		b.Fatal(err)
	}
	questions := benchQuestions(1000)
	normalized := make([]string, len(questions))
	for i, q := range questions {
		normalized[i] = n.Normalize(q)
	}
	idx := relevance.Build(normalized)
	query := n.Normalize("reset password workspace 42")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.Score(query)
	}
}

func BenchmarkFuzzySearch(b *testing.B) {
	idx := fuzzy.NewIndex(benchQuestions(1000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.Search("rest my pasword workspace 42", 3)
	}
}

func BenchmarkDamerauLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = fuzzy.DamerauLevenshteinDistance("how do i reset my password", "how do i rest my pasword")
	}
}
