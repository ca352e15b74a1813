// Package normalize turns raw text into a canonical space-joined token sequence.
package normalize

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	porterstemmer "github.com/blevesearch/go-porterstemmer"
)

// Normalizer lowercases input, strips characters outside the allowed
// scripts, removes English stopwords, and stems ASCII tokens.
// Tokens with no ASCII letters (e.g. other-script tokens) pass through
// unchanged; no stemming is attempted for scripts without a stemming rule.
// Normalize is deterministic and pure once the Normalizer is built.
type Normalizer struct {
	stopwords    analysis.TokenMap
	extraScripts []*unicode.RangeTable
}

// New creates a Normalizer. extraScripts names additional Unicode scripts
// whose characters are kept alongside ASCII letters and digits (names as in
// unicode.Scripts, e.g. "Thai", "Arabic"). Unknown names are an error.
func New(extraScripts ...string) (*Normalizer, error) {
	tm := analysis.NewTokenMap()
	if err := tm.LoadBytes(en.EnglishStopWords); err != nil {
		return nil, fmt.Errorf("failed to load stopwords: %w", err)
	}
	tables := make([]*unicode.RangeTable, 0, len(extraScripts))
	for _, name := range extraScripts {
		rt, ok := unicode.Scripts[name]
		if !ok {
			return nil, fmt.Errorf("unknown script %q", name)
		}
		tables = append(tables, rt)
	}
	return &Normalizer{stopwords: tm, extraScripts: tables}, nil
}

// Normalize converts text into a space-joined sequence of canonical tokens.
// Empty or blank input normalizes to an empty string.
func (n *Normalizer) Normalize(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if n.allowed(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	tokens := strings.Fields(b.String())
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !hasASCIILetter(tok) {
			out = append(out, tok)
			continue
		}
		if _, stop := n.stopwords[tok]; stop {
			continue
		}
		out = append(out, porterstemmer.StemString(tok))
	}
	return strings.Join(out, " ")
}

// allowed reports whether r survives normalization: ASCII letters and
// digits always, plus any configured extra script.
func (n *Normalizer) allowed(r rune) bool {
	if r < 128 {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	}
	for _, rt := range n.extraScripts {
		if unicode.Is(rt, r) {
			return true
		}
	}
	return false
}

func hasASCIILetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}
