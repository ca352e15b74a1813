// Package cli provides CLI output utilities for Kotae.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hyperjump/kotae/internal/models"
)

// OutputFormat is the format for ask result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteAskResult writes an ask result to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteAskResult(w io.Writer, result *models.QueryResult, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		writeAskResultText(w, result)
		return nil
	}
}

func writeAskResultText(w io.Writer, result *models.QueryResult) {
	if result.Answer != nil {
		fmt.Fprintf(w, "%s\n", *result.Answer)
	} else {
		fmt.Fprintln(w, "No answer found.")
	}
	if len(result.Suggestions) > 0 {
		fmt.Fprintln(w, "\nDid you mean:")
		for _, q := range result.Suggestions {
			fmt.Fprintf(w, "  - %s\n", q)
		}
	}
}

// PrintAskResult prints an ask result to stdout in text format.
func PrintAskResult(result *models.QueryResult) {
	_ = WriteAskResult(os.Stdout, result, OutputText)
}
