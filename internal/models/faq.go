// Package models defines core data structures for FAQ entries, queries, and results.
package models

// FaqEntry represents one question/answer pair in the corpus.
// Entries are immutable once loaded and identified by their position
// in the corpus (a stable integer index). Duplicate questions are
// allowed; each is indexed independently.
type FaqEntry struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Outcome classifies how a query was resolved.
type Outcome string

const (
	// OutcomeConfident means the relevance index produced an unambiguous match.
	OutcomeConfident Outcome = "confident"
	// OutcomeWeak means the relevance index matched with middling confidence;
	// the answer is returned together with alternative questions.
	OutcomeWeak Outcome = "weak"
	// OutcomeFuzzy means the answer came from the fuzzy fallback.
	OutcomeFuzzy Outcome = "fuzzy"
	// OutcomeNone means no match was confident enough to answer.
	OutcomeNone Outcome = "none"
	// OutcomeEscalated means repeated failures triggered the escalation message.
	OutcomeEscalated Outcome = "escalated"
)

// Answered reports whether the outcome carries an answer.
func (o Outcome) Answered() bool {
	return o != OutcomeNone
}
