package fuzzy

import (
	"sort"
	"strings"
	"unicode"
)

// Match is a single fuzzy hit. Score is a similarity in [0,1] where 0 is
// identical and higher is less similar.
type Match struct {
	EntryIndex int
	Question   string
	Score      float64
}

// Index is an immutable approximate-string index over the raw (unnormalized)
// question texts, so surface-level typos and word-order differences are
// tolerated. It is rebuilt in full on every corpus reload.
type Index struct {
	questions      []string
	lowered        []string
	tokens         [][]string
	maxScore       float64
	maxTokenEdits  int
	minTokenLength int
}

// Option configures an Index.
type Option func(*Index)

// WithMaxScore sets the similarity threshold beyond which an entry is not
// returned at all.
func WithMaxScore(s float64) Option {
	return func(idx *Index) {
		if s > 0 {
			idx.maxScore = s
		}
	}
}

// WithMaxTokenEdits sets the maximum edit distance for a query token to
// count as matching a question token.
func WithMaxTokenEdits(d int) Option {
	return func(idx *Index) {
		if d > 0 {
			idx.maxTokenEdits = d
		}
	}
}

// WithMinTokenLength sets the minimum rune length for a query token to be
// eligible for matching. Very short tokens are unreliable.
func WithMinTokenLength(n int) Option {
	return func(idx *Index) {
		if n > 0 {
			idx.minTokenLength = n
		}
	}
}

// NewIndex builds an index over the raw question texts, in corpus order.
func NewIndex(questions []string, opts ...Option) *Index {
	idx := &Index{
		questions:      questions,
		lowered:        make([]string, len(questions)),
		tokens:         make([][]string, len(questions)),
		maxScore:       0.45,
		maxTokenEdits:  2,
		minTokenLength: 3,
	}
	for i, q := range questions {
		idx.lowered[i] = strings.ToLower(q)
		idx.tokens[i] = tokenize(q)
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Size returns the number of indexed questions.
func (idx *Index) Size() int {
	return len(idx.questions)
}

// Search returns at most limit entries whose similarity to rawQuery is
// within the configured threshold, sorted ascending by score (best first).
// A blank query or empty index yields no matches.
func (idx *Index) Search(rawQuery string, limit int) []Match {
	query := strings.ToLower(strings.TrimSpace(rawQuery))
	if query == "" || len(idx.questions) == 0 || limit <= 0 {
		return nil
	}
	queryTokens := eligibleTokens(tokenize(query), idx.minTokenLength)

	matches := make([]Match, 0, limit)
	for i := range idx.questions {
		score := idx.similarity(query, queryTokens, i)
		if score > idx.maxScore {
			continue
		}
		matches = append(matches, Match{
			EntryIndex: i,
			Question:   idx.questions[i],
			Score:      score,
		})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score < matches[b].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// similarity combines a whole-string edit distance with token overlap and
// keeps whichever view of the pair is more favorable. The whole-string side
// catches word-order-preserving typos; the token side catches reordering
// and partial overlap.
func (idx *Index) similarity(query string, queryTokens []string, entry int) float64 {
	whole := 1.0
	if maxLen := maxRuneLen(query, idx.lowered[entry]); maxLen > 0 {
		whole = float64(DamerauLevenshteinDistance(query, idx.lowered[entry])) / float64(maxLen)
	}

	token := 1.0
	if len(queryTokens) > 0 {
		matched := 0
		for _, qt := range queryTokens {
			if idx.tokenMatches(qt, entry) {
				matched++
			}
		}
		token = 1.0 - float64(matched)/float64(len(queryTokens))
	}

	if token < whole {
		return token
	}
	return whole
}

// tokenMatches reports whether a query token is within the edit budget of
// any token of the indexed question.
func (idx *Index) tokenMatches(qt string, entry int) bool {
	qtLen := len([]rune(qt))
	for _, t := range idx.tokens[entry] {
		lenDiff := len([]rune(t)) - qtLen
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > idx.maxTokenEdits {
			continue
		}
		if LevenshteinDistance(qt, t) <= idx.maxTokenEdits {
			return true
		}
	}
	return false
}

// tokenize lowercases and splits on anything that is not a letter or digit.
func tokenize(s string) []string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}

func eligibleTokens(tokens []string, minLen int) []string {
	out := tokens[:0]
	for _, t := range tokens {
		if len([]rune(t)) >= minLen {
			out = append(out, t)
		}
	}
	return out
}

func maxRuneLen(a, b string) int {
	la := len([]rune(a))
	lb := len([]rune(b))
	if la > lb {
		return la
	}
	return lb
}
