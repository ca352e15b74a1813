package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hyperjump/kotae/internal/models"
)

func TestWriteAskResult_JSON(t *testing.T) {
	answer := "Use the reset link."
	result := &models.QueryResult{
		Answer:      &answer,
		Suggestions: []string{},
		Outcome:     models.OutcomeConfident,
	}
	var buf bytes.Buffer
	if err := WriteAskResult(&buf, result, OutputJSON); err != nil {
		t.Fatalf("WriteAskResult(json): %v", err)
	}
	var decoded models.QueryResult
	if err := json.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Answer == nil || *decoded.Answer != answer {
		t.Errorf("decoded answer = %v, want %q", decoded.Answer, answer)
	}
	if decoded.Outcome != models.OutcomeConfident {
		t.Errorf("decoded outcome = %s", decoded.Outcome)
	}
}

func TestWriteAskResult_TextWithAnswer(t *testing.T) {
	answer := "Call 16221."
	result := &models.QueryResult{
		Answer:      &answer,
		Suggestions: []string{"How do I contact support?"},
		Outcome:     models.OutcomeWeak,
	}
	var buf bytes.Buffer
	if err := WriteAskResult(&buf, result, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Call 16221.") {
		t.Errorf("output missing answer: %s", out)
	}
	if !strings.Contains(out, "Did you mean:") || !strings.Contains(out, "How do I contact support?") {
		t.Errorf("output missing suggestions: %s", out)
	}
}

func TestWriteAskResult_TextNoAnswer(t *testing.T) {
	result := &models.QueryResult{
		Answer:      nil,
		Suggestions: []string{},
		Outcome:     models.OutcomeNone,
	}
	var buf bytes.Buffer
	if err := WriteAskResult(&buf, result, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "No answer found.") {
		t.Errorf("output missing fallback line: %s", out)
	}
	if strings.Contains(out, "Did you mean:") {
		t.Errorf("empty suggestions should not print header: %s", out)
	}
}

func TestWriteAskResult_DefaultFormatIsText(t *testing.T) {
	result := &models.QueryResult{Suggestions: []string{}, Outcome: models.OutcomeNone}
	var buf bytes.Buffer
	if err := WriteAskResult(&buf, result, OutputFormat("bogus")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No answer found.") {
		t.Errorf("unknown format should fall back to text, got: %s", buf.String())
	}
}
