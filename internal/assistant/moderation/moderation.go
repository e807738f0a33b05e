package moderation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// TermList is the set of prohibited terms, lowercased. Loaded fresh per
// retrieval call and read-only afterwards.
type TermList []string

// LoadTermList reads the prohibited-term file: first field of each CSV row
// is one term. A missing file means an empty list.
func LoadTermList(path string) (TermList, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("prohibited terms open: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("prohibited terms read: %w", err)
	}

	terms := make(TermList, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		term := strings.ToLower(strings.TrimSpace(row[0]))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms, nil
}

// Blocked reports whether the lowercased text contains any prohibited term
// as a substring.
func (t TermList) Blocked(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range t {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
