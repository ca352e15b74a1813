package synonym

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// fakeProvider returns canned synonyms with optional per-word errors/delays.
type fakeProvider struct {
	table  map[string][]string
	errs   map[string]error
	delays map[string]time.Duration
}

func (f *fakeProvider) Synonyms(ctx context.Context, word string) ([]string, error) {
	if d, ok := f.delays[word]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err, ok := f.errs[word]; ok {
		return nil, err
	}
	return f.table[word], nil
}

func TestExpand(t *testing.T) {
	p := &fakeProvider{table: map[string][]string{
		"reset":    {"restore", "clear"},
		"password": {"passcode", "secret phrase"},
	}}
	e := NewExpander(p)

	got := e.Expand(context.Background(), "Reset password?")
	// Original words first-seen order, synonyms after each; the multi-word
	// "secret phrase" is discarded.
	want := "reset restore clear password passcode"
	if got != want {
		t.Errorf("Expand = %q, want %q", got, want)
	}
}

func TestExpandNonASCIIWordsIgnored(t *testing.T) {
	p := &fakeProvider{table: map[string][]string{"hello": {"hi"}}}
	e := NewExpander(p)

	got := e.Expand(context.Background(), "สวัสดี hello 123")
	if got != "hello hi" {
		t.Errorf("Expand = %q, want %q", got, "hello hi")
	}
}

func TestExpandEmptyQuery(t *testing.T) {
	e := NewExpander(NoopProvider{})
	if got := e.Expand(context.Background(), "  !?  "); got != "" {
		t.Errorf("Expand = %q, want empty", got)
	}
}

func TestExpandFailureDoesNotAbortOthers(t *testing.T) {
	p := &fakeProvider{
		table: map[string][]string{"password": {"passcode"}},
		errs:  map[string]error{"reset": errors.New("lexical db down")},
	}
	e := NewExpander(p)

	got := e.Expand(context.Background(), "reset password")
	want := "reset password passcode"
	if got != want {
		t.Errorf("Expand = %q, want %q", got, want)
	}
}

func TestExpandTimeoutTreatedAsNoSynonyms(t *testing.T) {
	p := &fakeProvider{
		table:  map[string][]string{"reset": {"restore"}, "password": {"passcode"}},
		delays: map[string]time.Duration{"reset": 200 * time.Millisecond},
	}
	e := NewExpander(p, WithTimeout(20*time.Millisecond))

	got := e.Expand(context.Background(), "reset password")
	want := "reset password passcode"
	if got != want {
		t.Errorf("Expand = %q, want %q", got, want)
	}
}

func TestExpandDeterministicUnderConcurrency(t *testing.T) {
	// The slow word finishes last, but merge order follows word order.
	p := &fakeProvider{
		table:  map[string][]string{"alpha": {"first"}, "beta": {"second"}},
		delays: map[string]time.Duration{"alpha": 30 * time.Millisecond},
	}
	e := NewExpander(p)

	want := e.Expand(context.Background(), "alpha beta")
	for i := 0; i < 5; i++ {
		if got := e.Expand(context.Background(), "alpha beta"); got != want {
			t.Fatalf("Expand not deterministic: %q vs %q", got, want)
		}
	}
	if want != "alpha first beta second" {
		t.Errorf("Expand = %q, want %q", want, "alpha first beta second")
	}
}

func TestExpandDeduplicates(t *testing.T) {
	p := &fakeProvider{table: map[string][]string{
		"big":   {"large", "huge"},
		"large": {"big", "huge"},
	}}
	e := NewExpander(p)

	got := e.Expand(context.Background(), "big large big")
	want := "big large huge"
	if got != want {
		t.Errorf("Expand = %q, want %q", got, want)
	}
}

func TestHTTPProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("rel_syn") != "reset" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"word":"restore"},{"word":"clear"}]`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "rel_syn")
	syns, err := p.Synonyms(context.Background(), "reset")
	if err != nil {
		t.Fatalf("Synonyms failed: %v", err)
	}
	if len(syns) != 2 || syns[0] != "restore" || syns[1] != "clear" {
		t.Errorf("Synonyms = %v, want [restore clear]", syns)
	}

	if _, err := p.Synonyms(context.Background(), "unknownword"); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider(map[string][]string{"Reset": {"restore"}})
	syns, err := p.Synonyms(context.Background(), "RESET")
	if err != nil {
		t.Fatalf("Synonyms failed: %v", err)
	}
	if len(syns) != 1 || syns[0] != "restore" {
		t.Errorf("Synonyms = %v, want [restore]", syns)
	}
}
