package fuzzy

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{"identical empty", "", "", 0},
		{"identical word", "password", "password", 0},
		{"empty a", "", "reset", 5},
		{"empty b", "reset", "", 5},
		{"one substitution", "cat", "bat", 1},
		{"one insertion", "reset", "resets", 1},
		{"one deletion", "resets", "reset", 1},
		{"kitten to sitting", "kitten", "sitting", 3},
		{"common typo", "password", "pasword", 1},
		{"case difference", "Reset", "reset", 1},
		{"unicode substitution", "café", "cafe", 1},
		{"transposition is two edits", "ab", "ba", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LevenshteinDistance(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
			if rev := LevenshteinDistance(tt.b, tt.a); rev != result {
				t.Errorf("LevenshteinDistance is not symmetric: (%q,%q)=%d, (%q,%q)=%d",
					tt.a, tt.b, result, tt.b, tt.a, rev)
			}
		})
	}
}

func TestDamerauLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{"identical", "reset", "reset", 0},
		{"empty a", "", "abc", 3},
		{"transposition is one edit", "ab", "ba", 1},
		{"swapped letters in word", "pasword", "password", 1},
		{"teh to the", "teh", "the", 1},
		{"substitution still one", "cat", "bat", 1},
		{"mixed edits", "recieve", "receive", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DamerauLevenshteinDistance(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("DamerauLevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}
