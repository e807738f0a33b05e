package knowledge

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/usicamm-ai/GobiAPI/internal/domain/commonModels"
	"github.com/usicamm-ai/GobiAPI/pkg/logger_i"
)

// Store is the knowledge base contract shared by the ingestion orchestrator
// (writer) and the retrieval layer (reader).
type Store interface {
	Append(question string, answer string) error
	LoadAll() ([]commonModels.QAPair, error)
	FindSimilar(question string, threshold float64) (commonModels.QAPair, bool, error)
}

// CSVStore is an append-only flat file with a `question,answer` header row.
// Every query re-reads the whole file - linear cost, fine for the expected
// human-curated growth rate. A mutex serializes appends because the
// check-existence-then-open-append sequence is not atomic on its own.
type CSVStore struct {
	path   string
	mu     sync.Mutex
	logger *logger_i.Logger
}

var header = []string{"question", "answer"}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{
		path:   path,
		logger: logger_i.NewLogger("Knowledge Store"),
	}
}

// Append durably writes one pair; the pair is either fully written or not
// at all (a single buffered write against an O_APPEND handle). The header
// row goes in first on a fresh file.
func (s *CSVStore) Append(question string, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	isNew := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if isNew {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("knowledge store write: %w", err)
		}
	}
	if err := w.Write([]string{question, answer}); err != nil {
		return fmt.Errorf("knowledge store write: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("knowledge store write: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("knowledge store open: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("knowledge store write: %w", err)
	}
	s.logger.Debug("appended pair", "question", question)
	return nil
}

// LoadAll reads every stored pair in insertion order. A missing file is an
// empty store, not an error.
func (s *CSVStore) LoadAll() ([]commonModels.QAPair, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("knowledge store open: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("knowledge store read: %w", err)
	}

	pairs := make([]commonModels.QAPair, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) >= 2 && row[0] == header[0] && row[1] == header[1] {
			continue
		}
		if len(row) < 2 {
			continue
		}
		pairs = append(pairs, commonModels.QAPair{Question: row[0], Answer: row[1]})
	}
	return pairs, nil
}

// FindSimilar returns the FIRST stored pair whose question scores at or
// above threshold against the input. Insertion order is the tie-break: no
// global best-match search happens.
func (s *CSVStore) FindSimilar(question string, threshold float64) (commonModels.QAPair, bool, error) {
	pairs, err := s.LoadAll()
	if err != nil {
		return commonModels.QAPair{}, false, err
	}
	for _, p := range pairs {
		if Similarity(p.Question, question) >= threshold {
			return p, true, nil
		}
	}
	return commonModels.QAPair{}, false, nil
}
