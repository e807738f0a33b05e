package ingest

import (
	"context"
	"strings"

	"github.com/usicamm-ai/GobiAPI/internal/assistant/extract"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/knowledge"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/llm"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/report"
	"github.com/usicamm-ai/GobiAPI/internal/config"
	"github.com/usicamm-ai/GobiAPI/internal/domain/commonModels"
	"github.com/usicamm-ai/GobiAPI/internal/domain/jobModel"
	"github.com/usicamm-ai/GobiAPI/internal/metrics"
	"github.com/usicamm-ai/GobiAPI/pkg/logger_i"
)

// TextExtractor is what the orchestrator needs from the extractor; the
// concrete implementation lives in the extract package.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Deps bundles the collaborators for one document run. One orchestrator
// serves every completion backend - the backend choice never leaks in here.
type Deps struct {
	Extractor TextExtractor
	Completer llm.Provider
	Knowledge knowledge.Store
	Report    report.Writer
	MaxChunk  int
}

// ProcessDocument drives extract -> chunk -> per-chunk completion calls for
// one document and hands the aggregated analysis to the report sink.
// Per-chunk completion failures skip that chunk and mark the report partial;
// extractor, store-write and report-write failures fail the document.
func ProcessDocument(ctx context.Context, job jobModel.Job, deps Deps) (jobModel.Job, []commonModels.QAPair) {
	logger := logger_i.NewLogger("Document Ingestion").
		With("traceId", job.TraceId, "document", job.JobPayload.DocumentName)

	if deps.MaxChunk <= 0 {
		deps.MaxChunk = config.DefaultMaxChunk
	}

	job.CurrentStep = jobModel.TextExtraction
	text, err := deps.Extractor.Extract(ctx, job.JobPayload.SourcePath)
	if err != nil {
		logger.Error("Error extracting document content", "error", err)
		job.Status = jobModel.JobStatusError
		job.Error = jobModel.JobError{Message: "Error extracting document content"}
		return job, nil
	}

	job.CurrentStep = jobModel.Chunking
	blocks := extract.SplitIntoBlocks(text, deps.MaxChunk)
	job.JobPayload.ChunkCount = len(blocks)
	logger.Debug("Processing document", "chunks", len(blocks), "chars", len(text))

	job.CurrentStep = jobModel.CompletionCalls
	var analysis strings.Builder
	var pairs []commonModels.QAPair

	for i, block := range blocks {
		result, err := deps.Completer.Complete(ctx, "", requirementPrompt+block)
		if err != nil {
			// skip the chunk, keep going; the report is partial from here on
			logger.Error("completion failed for chunk, skipping",
				"chunk", i, "error", err)
			metrics.IncrementCompletionFailures()
			job.JobPayload.Partial = true
			continue
		}
		analysis.WriteString(result)
		analysis.WriteString("\n\n")

		faqRaw, err := deps.Completer.Complete(ctx, "", faqPrompt+block)
		if err != nil {
			logger.Error("FAQ completion failed for chunk, skipping",
				"chunk", i, "error", err)
			metrics.IncrementCompletionFailures()
			job.JobPayload.Partial = true
			continue
		}

		q, a, ok := ParseFAQ(faqRaw)
		if !ok {
			logger.Warn("could not parse question and answer from model output", "chunk", i)
			continue
		}

		if err := deps.Knowledge.Append(q, a); err != nil {
			// a silently lost pair would corrupt the append-only guarantee
			logger.Error("failed persisting FAQ pair", "chunk", i, "error", err)
			job.Status = jobModel.JobStatusError
			job.Error = jobModel.JobError{Message: "Knowledge store write failed"}
			return job, pairs
		}
		pairs = append(pairs, commonModels.QAPair{Question: q, Answer: a})
		metrics.IncrementFAQPairs()
	}
	job.JobPayload.FAQCount = len(pairs)

	job.CurrentStep = jobModel.ReportWrite
	reportPath, err := deps.Report.Write(ctx, job.JobPayload.DocumentName, analysis.String())
	if err != nil {
		logger.Error("report sink failed", "error", err)
		job.Status = jobModel.JobStatusError
		job.Error = jobModel.JobError{Message: "Report write failed"}
		return job, pairs
	}
	job.JobPayload.ReportPath = reportPath

	job.Status = jobModel.JobStatusComplete
	job.CurrentStep = jobModel.Complete
	metrics.IncrementDocumentsProcessed()
	return job, pairs
}
