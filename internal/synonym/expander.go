package synonym

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultLookupTimeout = 800 * time.Millisecond

// Only ASCII-letter words are expanded; synonym lookup is assumed available
// for one language.
var wordPattern = regexp.MustCompile(`[A-Za-z]+`)

// Expander augments a raw query with synonyms of its recognizable words.
// Lookups run concurrently with a bounded per-word timeout; a failure for
// one word never aborts the others. The output preserves first-seen order
// (original word, then its synonyms) so scoring stays reproducible no
// matter which lookup finishes first.
type Expander struct {
	provider Provider
	timeout  time.Duration
	logger   *zap.Logger // optional; when set, logs failed lookups at debug
}

// ExpanderOption configures an Expander.
type ExpanderOption func(*Expander)

// WithTimeout sets the per-word lookup timeout.
func WithTimeout(d time.Duration) ExpanderOption {
	return func(e *Expander) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets a logger for debug output on failed lookups.
func WithLogger(l *zap.Logger) ExpanderOption {
	return func(e *Expander) { e.logger = l }
}

// NewExpander creates an Expander backed by the given provider.
func NewExpander(p Provider, opts ...ExpanderOption) *Expander {
	e := &Expander{
		provider: p,
		timeout:  defaultLookupTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand returns the query's ASCII words plus every single-word synonym of
// each, joined into one string. Multi-word synonyms are discarded. The
// result is best-effort: words whose lookup fails simply contribute no
// synonyms.
func (e *Expander) Expand(ctx context.Context, rawQuery string) string {
	words := wordPattern.FindAllString(rawQuery, -1)
	if len(words) == 0 {
		return ""
	}

	results := make([][]string, len(words))
	var wg sync.WaitGroup
	for i, w := range words {
		wg.Add(1)
		go func(i int, word string) {
			defer wg.Done()
			lookupCtx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()
			syns, err := e.provider.Synonyms(lookupCtx, word)
			if err != nil {
				if e.logger != nil {
					e.logger.Debug("synonym lookup failed", zap.String("word", word), zap.Error(err))
				}
				return
			}
			results[i] = syns
		}(i, strings.ToLower(w))
	}
	wg.Wait()

	// Merge by original word order, not completion order.
	seen := make(map[string]struct{}, len(words)*2)
	out := make([]string, 0, len(words)*2)
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || strings.ContainsAny(s, " \t") {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for i, w := range words {
		add(w)
		for _, syn := range results[i] {
			add(syn)
		}
	}
	return strings.Join(out, " ")
}
