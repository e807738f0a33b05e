package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/usicamm-ai/GobiAPI/internal/domain/commonModels"
	"github.com/usicamm-ai/GobiAPI/internal/domain/jobModel"
)

type MockExtractor struct {
	OnExtract func(ctx context.Context, path string) (string, error)
}

func (m *MockExtractor) Extract(ctx context.Context, path string) (string, error) {
	if m.OnExtract != nil {
		return m.OnExtract(ctx, path)
	}
	return "", nil
}

type MockCompleter struct {
	OnComplete func(ctx context.Context, system, prompt string) (string, error)
	Calls      int
}

func (m *MockCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	m.Calls++
	if m.OnComplete != nil {
		return m.OnComplete(ctx, system, prompt)
	}
	return "", nil
}

type MockKnowledgeStore struct {
	OnAppend func(q, a string) error
	Appended []commonModels.QAPair
}

func (m *MockKnowledgeStore) Append(q, a string) error {
	if m.OnAppend != nil {
		if err := m.OnAppend(q, a); err != nil {
			return err
		}
	}
	m.Appended = append(m.Appended, commonModels.QAPair{Question: q, Answer: a})
	return nil
}

func (m *MockKnowledgeStore) LoadAll() ([]commonModels.QAPair, error) {
	return m.Appended, nil
}

func (m *MockKnowledgeStore) FindSimilar(q string, threshold float64) (commonModels.QAPair, bool, error) {
	return commonModels.QAPair{}, false, nil
}

type MockReportWriter struct {
	OnWrite func(ctx context.Context, docName, body string) (string, error)
	Body    string
}

func (m *MockReportWriter) Write(ctx context.Context, docName, body string) (string, error) {
	m.Body = body
	if m.OnWrite != nil {
		return m.OnWrite(ctx, docName, body)
	}
	return "results_word/" + docName + ".docx", nil
}

func newTestJob() jobModel.Job {
	return jobModel.Job{
		Id:      "job-1",
		TraceId: "trace-1",
		JobPayload: jobModel.JobPayload{
			DocumentName: "convocatoria.pdf",
			SourcePath:   "/tmp/convocatoria.pdf",
		},
	}
}

func TestProcessDocument_HappyPath(t *testing.T) {
	extractor := &MockExtractor{
		OnExtract: func(ctx context.Context, path string) (string, error) {
			return strings.Repeat("a", 10), nil
		},
	}
	completer := &MockCompleter{
		OnComplete: func(ctx context.Context, system, prompt string) (string, error) {
			if strings.Contains(prompt, "pregunta frecuente") {
				return "¿Pregunta?||Respuesta.", nil
			}
			return "- requisito", nil
		},
	}
	store := &MockKnowledgeStore{}
	writer := &MockReportWriter{}

	job, pairs := ProcessDocument(context.Background(), newTestJob(), Deps{
		Extractor: extractor,
		Completer: completer,
		Knowledge: store,
		Report:    writer,
		MaxChunk:  5,
	})

	if job.Status != jobModel.JobStatusComplete {
		t.Fatalf("status = %v, want COMPLETE (error: %v)", job.Status, job.Error)
	}
	if job.JobPayload.ChunkCount != 2 {
		t.Errorf("ChunkCount = %d, want 2", job.JobPayload.ChunkCount)
	}
	if job.JobPayload.FAQCount != 2 || len(pairs) != 2 {
		t.Errorf("FAQCount = %d, pairs = %d, want 2 each", job.JobPayload.FAQCount, len(pairs))
	}
	if job.JobPayload.Partial {
		t.Error("Partial should be false when every chunk succeeds")
	}
	if job.JobPayload.ReportPath == "" {
		t.Error("ReportPath not set")
	}
	// two completions per chunk
	if completer.Calls != 4 {
		t.Errorf("completion calls = %d, want 4", completer.Calls)
	}
	if !strings.Contains(writer.Body, "- requisito") {
		t.Errorf("report body missing analysis: %q", writer.Body)
	}
	if len(store.Appended) != 2 || store.Appended[0].Question != "¿Pregunta?" {
		t.Errorf("unexpected persisted pairs: %v", store.Appended)
	}
}

func TestProcessDocument_ExtractorFailureFailsJob(t *testing.T) {
	extractor := &MockExtractor{
		OnExtract: func(ctx context.Context, path string) (string, error) {
			return "", errors.New("document unreadable")
		},
	}
	completer := &MockCompleter{}

	job, _ := ProcessDocument(context.Background(), newTestJob(), Deps{
		Extractor: extractor,
		Completer: completer,
		Knowledge: &MockKnowledgeStore{},
		Report:    &MockReportWriter{},
	})

	if job.Status != jobModel.JobStatusError {
		t.Fatalf("status = %v, want Error", job.Status)
	}
	if completer.Calls != 0 {
		t.Errorf("no completion call expected after extraction failure, got %d", completer.Calls)
	}
}

func TestProcessDocument_ChunkFailureSkipsAndMarksPartial(t *testing.T) {
	extractor := &MockExtractor{
		OnExtract: func(ctx context.Context, path string) (string, error) {
			return strings.Repeat("a", 10), nil
		},
	}
	chunkSeen := 0
	completer := &MockCompleter{
		OnComplete: func(ctx context.Context, system, prompt string) (string, error) {
			if strings.Contains(prompt, "pregunta frecuente") {
				return "¿P?||R.", nil
			}
			chunkSeen++
			if chunkSeen == 1 {
				return "", errors.New("backend down")
			}
			return "- requisito", nil
		},
	}
	store := &MockKnowledgeStore{}

	job, pairs := ProcessDocument(context.Background(), newTestJob(), Deps{
		Extractor: extractor,
		Completer: completer,
		Knowledge: store,
		Report:    &MockReportWriter{},
		MaxChunk:  5,
	})

	if job.Status != jobModel.JobStatusComplete {
		t.Fatalf("a skipped chunk must not fail the job, status = %v", job.Status)
	}
	if !job.JobPayload.Partial {
		t.Error("Partial should be true after a skipped chunk")
	}
	if len(pairs) != 1 {
		t.Errorf("pairs = %d, want 1 (only the surviving chunk)", len(pairs))
	}
}

func TestProcessDocument_UnparsableFAQIsNotPersisted(t *testing.T) {
	extractor := &MockExtractor{
		OnExtract: func(ctx context.Context, path string) (string, error) {
			return "texto corto", nil
		},
	}
	completer := &MockCompleter{
		OnComplete: func(ctx context.Context, system, prompt string) (string, error) {
			return "una sola línea sin separador", nil
		},
	}
	store := &MockKnowledgeStore{}

	job, pairs := ProcessDocument(context.Background(), newTestJob(), Deps{
		Extractor: extractor,
		Completer: completer,
		Knowledge: store,
		Report:    &MockReportWriter{},
	})

	if job.Status != jobModel.JobStatusComplete {
		t.Fatalf("status = %v, want COMPLETE", job.Status)
	}
	if len(pairs) != 0 || len(store.Appended) != 0 {
		t.Errorf("nothing should be persisted, got %v", store.Appended)
	}
	if job.JobPayload.Partial {
		t.Error("an unparsable pair is not a partial document")
	}
}

func TestProcessDocument_StoreWriteFailureFailsJob(t *testing.T) {
	extractor := &MockExtractor{
		OnExtract: func(ctx context.Context, path string) (string, error) {
			return "texto corto", nil
		},
	}
	completer := &MockCompleter{
		OnComplete: func(ctx context.Context, system, prompt string) (string, error) {
			return "¿P?||R.", nil
		},
	}
	store := &MockKnowledgeStore{
		OnAppend: func(q, a string) error { return errors.New("disk full") },
	}
	writer := &MockReportWriter{}

	job, _ := ProcessDocument(context.Background(), newTestJob(), Deps{
		Extractor: extractor,
		Completer: completer,
		Knowledge: store,
		Report:    writer,
	})

	if job.Status != jobModel.JobStatusError {
		t.Fatalf("status = %v, want Error", job.Status)
	}
	if job.Error.Message != "Knowledge store write failed" {
		t.Errorf("error message = %q", job.Error.Message)
	}
	if writer.Body != "" {
		t.Error("report must not be written after a store failure")
	}
}

func TestProcessDocument_ReportFailureFailsJob(t *testing.T) {
	extractor := &MockExtractor{
		OnExtract: func(ctx context.Context, path string) (string, error) {
			return "texto corto", nil
		},
	}
	completer := &MockCompleter{
		OnComplete: func(ctx context.Context, system, prompt string) (string, error) {
			return "¿P?||R.", nil
		},
	}
	writer := &MockReportWriter{
		OnWrite: func(ctx context.Context, docName, body string) (string, error) {
			return "", errors.New("no space left on device")
		},
	}

	job, pairs := ProcessDocument(context.Background(), newTestJob(), Deps{
		Extractor: extractor,
		Completer: completer,
		Knowledge: &MockKnowledgeStore{},
		Report:    writer,
	})

	if job.Status != jobModel.JobStatusError {
		t.Fatalf("status = %v, want Error", job.Status)
	}
	// the pairs persisted before the report failure stay persisted
	if len(pairs) != 1 {
		t.Errorf("pairs = %d, want 1", len(pairs))
	}
}

func TestProcessDocument_EmptyDocumentStillWritesReport(t *testing.T) {
	extractor := &MockExtractor{
		OnExtract: func(ctx context.Context, path string) (string, error) {
			return "", nil
		},
	}
	completer := &MockCompleter{}
	writer := &MockReportWriter{}

	job, _ := ProcessDocument(context.Background(), newTestJob(), Deps{
		Extractor: extractor,
		Completer: completer,
		Knowledge: &MockKnowledgeStore{},
		Report:    writer,
	})

	if job.Status != jobModel.JobStatusComplete {
		t.Fatalf("status = %v, want COMPLETE", job.Status)
	}
	if job.JobPayload.ChunkCount != 0 || completer.Calls != 0 {
		t.Errorf("empty document must not reach the model, chunks=%d calls=%d",
			job.JobPayload.ChunkCount, completer.Calls)
	}
}
