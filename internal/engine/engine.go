// Package engine orchestrates the matching pipeline: normalization, synonym
// expansion, relevance scoring, the fuzzy fallback, and failure escalation.
package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/kotae/internal/config"
	"github.com/hyperjump/kotae/internal/corpus"
	"github.com/hyperjump/kotae/internal/fuzzy"
	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/internal/normalize"
	"github.com/hyperjump/kotae/internal/relevance"
	"github.com/hyperjump/kotae/internal/synonym"
)

// Engine answers questions against the loaded corpus. The only mutable
// cross-request state is the consecutive-failure counter; everything else
// lives in immutable snapshots.
type Engine struct {
	source     corpus.Source
	normalizer *normalize.Normalizer
	expander   *synonym.Expander
	match      *config.MatchConfig
	fuzzyCfg   *config.FuzzyConfig
	logger     *zap.Logger // optional

	snapshot atomic.Pointer[Snapshot]
	reloadMu sync.Mutex

	failMu   sync.Mutex
	failures int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a logger for reload and per-query debug output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an engine. Call Reload before serving queries; until then
// every ask falls through to a no-answer result.
func New(
	source corpus.Source,
	normalizer *normalize.Normalizer,
	expander *synonym.Expander,
	match *config.MatchConfig,
	fuzzyCfg *config.FuzzyConfig,
	opts ...Option,
) *Engine {
	e := &Engine{
		source:     source,
		normalizer: normalizer,
		expander:   expander,
		match:      match,
		fuzzyCfg:   fuzzyCfg,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reload builds a fresh snapshot from the corpus source and swaps it in.
// On load failure the previous snapshot stays active and the error is
// returned. Reload never touches the failure counter.
func (e *Engine) Reload(ctx context.Context) (*Snapshot, error) {
	e.reloadMu.Lock()
	defer e.reloadMu.Unlock()

	start := time.Now()
	entries, err := e.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("corpus load failed: %w", err)
	}

	questions := make([]string, len(entries))
	normalized := make([]string, len(entries))
	for i, entry := range entries {
		questions[i] = entry.Question
		normalized[i] = e.normalizer.Normalize(entry.Question)
	}

	snap := &Snapshot{
		ID:        uuid.New().String(),
		Entries:   entries,
		Relevance: relevance.Build(normalized),
		Fuzzy: fuzzy.NewIndex(questions,
			fuzzy.WithMaxScore(e.fuzzyCfg.MaxScore),
			fuzzy.WithMaxTokenEdits(e.fuzzyCfg.MaxTokenEdits),
			fuzzy.WithMinTokenLength(e.fuzzyCfg.MinTokenLength),
		),
	}
	e.snapshot.Store(snap)

	if e.logger != nil {
		e.logger.Info("corpus reloaded",
			zap.String("snapshot_id", snap.ID),
			zap.Int("entries", len(entries)),
			zap.Duration("took", time.Since(start)),
		)
	}
	return snap, nil
}

// Snapshot returns the active snapshot, or nil before the first reload.
func (e *Engine) Snapshot() *Snapshot {
	return e.snapshot.Load()
}

// Ask answers one question. It never returns an error: the worst case is a
// nil answer with suggestions, or the escalation message after repeated
// failures.
func (e *Engine) Ask(ctx context.Context, question string) models.QueryResult {
	if strings.TrimSpace(question) == "" {
		return e.trackFailures(models.QueryResult{
			Suggestions: []string{},
			Outcome:     models.OutcomeNone,
		})
	}

	snap := e.snapshot.Load()
	if snap.Size() == 0 {
		return e.trackFailures(models.QueryResult{
			Suggestions: []string{},
			Outcome:     models.OutcomeNone,
		})
	}

	result := e.classify(ctx, snap, question)
	result = e.trackFailures(result)

	if e.logger != nil {
		e.logger.Debug("ask",
			zap.String("question", question),
			zap.String("outcome", string(result.Outcome)),
			zap.Int("suggestions", len(result.Suggestions)),
		)
	}
	return result
}

// classify runs steps 2-5 of the per-query flow: build the scoring string,
// score, apply the thresholds, fall back to fuzzy.
func (e *Engine) classify(ctx context.Context, snap *Snapshot, question string) models.QueryResult {
	normQuery := e.normalizer.Normalize(question)
	// The expander's raw output is re-normalized so non-word artifacts
	// never reach the relevance index.
	normExpansion := e.normalizer.Normalize(e.expander.Expand(ctx, question))
	scoring := strings.TrimSpace(normQuery + " " + normExpansion)

	scores := snap.Relevance.Score(scoring)
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].Score > scores[b].Score
	})
	top := scores
	if len(top) > e.match.TopK {
		top = top[:e.match.TopK]
	}

	if len(top) > 0 && top[0].Score > 0 {
		topScore := top[0].Score
		second := 0.0
		if len(top) > 1 {
			second = top[1].Score
		}
		best := snap.Entries[top[0].EntryIndex]

		if topScore >= e.match.Strong && topScore-second >= e.match.Gap {
			return models.QueryResult{
				Answer:      &best.Answer,
				Suggestions: []string{},
				Outcome:     models.OutcomeConfident,
			}
		}
		if topScore >= e.match.Weak {
			suggestions := make([]string, 0, len(top))
			for _, s := range top {
				suggestions = append(suggestions, snap.Entries[s.EntryIndex].Question)
			}
			return models.QueryResult{
				Answer:      &best.Answer,
				Suggestions: dedupe(suggestions),
				Outcome:     models.OutcomeWeak,
			}
		}
	}

	return e.fuzzyFallback(snap, question)
}

// fuzzyFallback is consulted only when the relevance index is not
// confident. It accepts the best approximate match unless the runner-up is
// too close to call.
func (e *Engine) fuzzyFallback(snap *Snapshot, question string) models.QueryResult {
	matches := snap.Fuzzy.Search(question, e.match.TopK)
	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, m.Question)
	}
	candidates = dedupe(candidates)

	if len(matches) > 0 && matches[0].Score <= e.match.FuzzyAccept {
		ambiguous := len(matches) > 1 &&
			matches[1].Score-matches[0].Score < e.match.AmbiguityEpsilon
		if !ambiguous {
			answer := snap.Entries[matches[0].EntryIndex].Answer
			return models.QueryResult{
				Answer:      &answer,
				Suggestions: candidates,
				Outcome:     models.OutcomeFuzzy,
			}
		}
		// Too close to call: ask the user to pick rather than guessing.
		return models.QueryResult{
			Suggestions: candidates,
			Outcome:     models.OutcomeNone,
		}
	}

	if len(candidates) == 0 {
		// Generic prompt: the first few corpus questions.
		for i := 0; i < len(snap.Entries) && i < e.match.TopK; i++ {
			candidates = append(candidates, snap.Entries[i].Question)
		}
		candidates = dedupe(candidates)
	}
	return models.QueryResult{
		Suggestions: candidates,
		Outcome:     models.OutcomeNone,
	}
}

// trackFailures applies step 6: non-answers increment the shared counter,
// answers reset it, and hitting the limit overrides the response with the
// escalation message and resets the counter.
func (e *Engine) trackFailures(result models.QueryResult) models.QueryResult {
	e.failMu.Lock()
	defer e.failMu.Unlock()

	if result.Outcome.Answered() {
		e.failures = 0
		return result
	}
	e.failures++
	if e.failures < e.match.FailLimit {
		return result
	}
	e.failures = 0
	msg := e.match.EscalationMessage
	return models.QueryResult{
		Answer:      &msg,
		Suggestions: []string{},
		Outcome:     models.OutcomeEscalated,
	}
}

// FailureCount returns the current consecutive-failure count.
func (e *Engine) FailureCount() int {
	e.failMu.Lock()
	defer e.failMu.Unlock()
	return e.failures
}

// dedupe removes duplicates preserving first-seen order. A corpus may hold
// the same question twice; suggestion lists should not.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
