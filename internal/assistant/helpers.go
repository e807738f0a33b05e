package assistant

import (
	"context"
	"time"

	"github.com/usicamm-ai/GobiAPI/internal/assistant/moderation"
	"github.com/usicamm-ai/GobiAPI/internal/domain/commonModels"
	"github.com/usicamm-ai/GobiAPI/internal/metrics"
	"github.com/usicamm-ai/GobiAPI/pkg/logger_i"
)

func (s *service) loadTermsStep(log *logger_i.Logger) (moderation.TermList, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("moderation_load", time.Since(start)) }()

	terms, err := moderation.LoadTermList(s.cfg.Store.ProhibitedCSV)
	if err != nil {
		log.Error("failed loading prohibited terms", "error", err)
		return nil, err
	}
	return terms, nil
}

func (s *service) knowledgeLookupStep(log *logger_i.Logger, question string) (commonModels.QAPair, bool, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("knowledge_lookup", time.Since(start)) }()

	pair, found, err := s.knowledge.FindSimilar(question, s.cfg.Retrieval.SimilarityThreshold)
	if err != nil {
		log.Error("knowledge base lookup failed", "error", err)
		return commonModels.QAPair{}, false, err
	}
	if found {
		log.Info("knowledge base hit", "stored_question", pair.Question)
	}
	return pair, found, nil
}

func (s *service) completionStep(ctx context.Context, log *logger_i.Logger, question string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	answer, err := s.completer.Complete(ctx, s.cfg.Retrieval.SystemPrompt, question)
	if err != nil {
		log.Error("live completion failed", "error", err)
		metrics.IncrementCompletionFailures()
		return "", err
	}
	return answer, nil
}
