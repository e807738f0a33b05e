package assistant

import (
	"context"
	"time"

	"github.com/usicamm-ai/GobiAPI/internal/assistant/ingest"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/knowledge"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/llm"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/report"
	"github.com/usicamm-ai/GobiAPI/internal/config"
	"github.com/usicamm-ai/GobiAPI/internal/domain/jobModel"
	"github.com/usicamm-ai/GobiAPI/internal/metrics"
	"github.com/usicamm-ai/GobiAPI/pkg/logger_i"
)

type AnswerSource string

const (
	SourceModeration AnswerSource = "moderation"
	SourceKnowledge  AnswerSource = "knowledge"
	SourceModel      AnswerSource = "model"
)

type AnswerResult struct {
	Text   string
	Source AnswerSource
}

// Service is the public contract: workers and handlers only see this, never
// the completion backend or the store underneath.
type Service interface {
	// Answer resolves a live user question: moderation gate, then knowledge
	// base lookup, then a live completion call. A non-nil error alongside a
	// filled result means the answer was produced but persisting it failed.
	Answer(ctx context.Context, question string) (AnswerResult, error)

	// ProcessDocument runs the extraction pipeline for one ingestion job.
	ProcessDocument(ctx context.Context, job jobModel.Job) jobModel.Job
}

type service struct {
	extractor ingest.TextExtractor
	completer llm.Provider
	knowledge knowledge.Store
	report    report.Writer
	cfg       config.Config
	logger    *logger_i.Logger
}

// NewService wires the pipeline components together.
func NewService(ex ingest.TextExtractor, completer llm.Provider, store knowledge.Store, rep report.Writer, cfg config.Config) Service {
	return &service{
		extractor: ex,
		completer: completer,
		knowledge: store,
		report:    rep,
		cfg:       cfg,
		logger:    logger_i.NewLogger("Assistant Service"),
	}
}

func (s *service) Answer(ctx context.Context, question string) (AnswerResult, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	// the term list is reloaded per call: edits to the file apply to the
	// next request without a restart
	terms, err := s.loadTermsStep(log)
	if err != nil {
		return AnswerResult{}, err
	}

	if terms.Blocked(question) {
		log.Info("question blocked by moderation gate")
		metrics.CountAnswer(string(SourceModeration))
		return AnswerResult{Text: s.cfg.Retrieval.RefusalMessage, Source: SourceModeration}, nil
	}

	if pair, found, err := s.knowledgeLookupStep(log, question); err != nil {
		return AnswerResult{}, err
	} else if found {
		metrics.CountAnswer(string(SourceKnowledge))
		return AnswerResult{Text: pair.Answer, Source: SourceKnowledge}, nil
	}

	answer, err := s.completionStep(ctx, log, question)
	if err != nil {
		return AnswerResult{}, err
	}
	result := AnswerResult{Text: answer, Source: SourceModel}
	metrics.CountAnswer(string(SourceModel))

	if err := s.knowledge.Append(question, answer); err != nil {
		// the answer still stands; the caller decides how loudly to complain
		log.Error("failed persisting live answer", "error", err)
		return result, err
	}
	return result, nil
}

func (s *service) ProcessDocument(ctx context.Context, job jobModel.Job) jobModel.Job {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("document_ingestion", time.Since(start)) }()

	j, _ := ingest.ProcessDocument(ctx, job, ingest.Deps{
		Extractor: s.extractor,
		Completer: s.completer,
		Knowledge: s.knowledge,
		Report:    s.report,
		MaxChunk:  s.cfg.Extract.MaxChunk,
	})
	return j
}
