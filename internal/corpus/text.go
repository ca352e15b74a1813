package corpus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hyperjump/kotae/internal/models"
)

const (
	questionMarker = "Q:"
	answerMarker   = "A:"
)

// FileSource reads a corpus from a text file of repeated blocks:
//
//	Q: <question>
//	A: <answer, possibly spanning
//	multiple lines>
//
// A block ends at the next Q: marker or end of input. Blocks without an
// A: line are dropped, not treated as a fatal error.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the corpus file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the corpus file path.
func (s *FileSource) Path() string {
	return s.path
}

// Load reads and parses the corpus file.
func (s *FileSource) Load(ctx context.Context) ([]models.FaqEntry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()
	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse corpus %s: %w", s.path, err)
	}
	return entries, nil
}

// Parse scans r line by line and produces the ordered entry sequence.
func Parse(r io.Reader) ([]models.FaqEntry, error) {
	var (
		entries  []models.FaqEntry
		question string
		answer   []string
		inAnswer bool
	)
	flush := func() {
		if question != "" && inAnswer {
			entries = append(entries, models.FaqEntry{
				Question: question,
				Answer:   strings.TrimSpace(strings.Join(answer, "\n")),
			})
		}
		question = ""
		answer = nil
		inAnswer = false
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, questionMarker):
			flush()
			question = strings.TrimSpace(strings.TrimPrefix(line, questionMarker))
		case strings.HasPrefix(line, answerMarker) && !inAnswer:
			inAnswer = true
			answer = append(answer, strings.TrimSpace(strings.TrimPrefix(line, answerMarker)))
		case inAnswer:
			answer = append(answer, line)
		}
		// Lines before the first Q: or between Q: and A: are ignored.
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return entries, nil
}
