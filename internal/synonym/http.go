package synonym

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// HTTPProvider queries a lexical web service for synonyms. The service is
// expected to answer GET {baseURL}?{param}={word} with a JSON array of
// {"word": "..."} objects (the Datamuse response shape).
type HTTPProvider struct {
	baseURL string
	param   string
	client  *http.Client
}

// HTTPProviderOption configures an HTTPProvider.
type HTTPProviderOption func(*HTTPProvider)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) HTTPProviderOption {
	return func(p *HTTPProvider) {
		if c != nil {
			p.client = c
		}
	}
}

// NewHTTPProvider creates a provider for the lexical service at baseURL.
// param is the query parameter carrying the word (e.g. "rel_syn" for
// Datamuse); empty means "word".
func NewHTTPProvider(baseURL, param string, opts ...HTTPProviderOption) *HTTPProvider {
	if param == "" {
		param = "word"
	}
	p := &HTTPProvider{
		baseURL: baseURL,
		param:   param,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Synonyms looks up one word. Cancellation and timeout come from ctx; the
// expander bounds each call.
func (p *HTTPProvider) Synonyms(ctx context.Context, word string) ([]string, error) {
	q := url.Values{}
	q.Set(p.param, word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lexical lookup failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lexical service returned %d", resp.StatusCode)
	}

	var entries []struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode lexical response: %w", err)
	}
	words := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Word != "" {
			words = append(words, e.Word)
		}
	}
	return words, nil
}
