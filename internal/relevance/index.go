// Package relevance provides the term-weighted (TF-IDF) index over FAQ questions.
package relevance

import (
	"math"
	"strings"
)

// Score is one entry's relevance for a query. Higher is more relevant.
type Score struct {
	EntryIndex int
	Score      float64
}

// Index is an immutable TF-IDF index built once per corpus load from the
// normalized question of every entry. Index size always equals corpus size;
// positions correspond 1:1.
type Index struct {
	vectors []map[string]float64
	norms   []float64
	idf     map[string]float64
}

// Build constructs an index from the normalized questions, in corpus order.
// A term's inverse document frequency is ln(1 + N/df); term frequency is the
// term's share of its question's tokens.
func Build(normalizedQuestions []string) *Index {
	n := len(normalizedQuestions)
	docs := make([][]string, n)
	df := make(map[string]int)
	for i, q := range normalizedQuestions {
		docs[i] = strings.Fields(q)
		seen := make(map[string]struct{}, len(docs[i]))
		for _, term := range docs[i] {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log(1 + float64(n)/float64(count))
	}

	idx := &Index{
		vectors: make([]map[string]float64, n),
		norms:   make([]float64, n),
		idf:     idf,
	}
	for i, tokens := range docs {
		vec := termVector(tokens, idf)
		idx.vectors[i] = vec
		idx.norms[i] = l2Norm(vec)
	}
	return idx
}

// Size returns the number of indexed entries.
func (idx *Index) Size() int {
	return len(idx.vectors)
}

// Score computes cosine similarity between the query's TF-IDF vector and
// every indexed question, in entry order. Scores are in [0,1]. Query terms
// absent from the corpus contribute nothing. An empty corpus yields an
// empty slice.
func (idx *Index) Score(normalizedQuery string) []Score {
	if len(idx.vectors) == 0 {
		return nil
	}
	qv := termVector(knownTerms(strings.Fields(normalizedQuery), idx.idf), idx.idf)
	qNorm := l2Norm(qv)

	scores := make([]Score, len(idx.vectors))
	for i, vec := range idx.vectors {
		s := 0.0
		if qNorm > 0 && idx.norms[i] > 0 {
			var dot float64
			for term, w := range qv {
				dot += w * vec[term]
			}
			s = dot / (qNorm * idx.norms[i])
		}
		scores[i] = Score{EntryIndex: i, Score: s}
	}
	return scores
}

// knownTerms filters tokens down to terms present in the corpus vocabulary.
func knownTerms(tokens []string, idf map[string]float64) []string {
	out := tokens[:0]
	for _, t := range tokens {
		if _, ok := idf[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// termVector builds a tf·idf weight map for a token sequence.
func termVector(tokens []string, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(tokens))
	if len(tokens) == 0 {
		return vec
	}
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	total := float64(len(tokens))
	for term, count := range counts {
		if w, ok := idf[term]; ok {
			vec[term] = (float64(count) / total) * w
		}
	}
	return vec
}

func l2Norm(vec map[string]float64) float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}
