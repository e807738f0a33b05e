package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/usicamm-ai/GobiAPI/internal/assistant"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/extract"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/knowledge"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/report"
	"github.com/usicamm-ai/GobiAPI/internal/config"
	"github.com/usicamm-ai/GobiAPI/internal/domain/commonModels"
	jobmodel "github.com/usicamm-ai/GobiAPI/internal/domain/jobModel"
	"github.com/usicamm-ai/GobiAPI/pkg/logger_i"
)

// batch runs the ingestion pipeline over every document in a directory,
// one at a time, without the HTTP server or the worker pool. Meant for
// the initial bulk load of convocatoria archives.
func main() {

	logger_i.Init()
	logger := logger_i.NewLogger("batch")

	var dir string
	flag.StringVar(&dir, "dir", "documents", "directory with PDF/DOCX documents to ingest")
	flag.Parse()

	cfg := config.Load()

	extractor := extract.NewExtractor(cfg.Extract)
	provider := assistant.NewProviderFromConfig(cfg.LLM)
	knowledgeStore := knowledge.NewCSVStore(cfg.Store.ResponsesCSV)
	reportWriter := report.NewDocxWriter(cfg.Report)
	assistantService := assistant.NewService(extractor, provider, knowledgeStore, reportWriter, cfg)

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error("Cannot read document directory", "dir", dir, "error", err)
		os.Exit(1)
	}

	processed, failed, skipped := 0, 0, 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if extract.GetDocType(path) == commonModels.ERR {
			logger.Warn("Skipping unsupported file", "file", entry.Name())
			skipped++
			continue
		}

		job := jobmodel.Job{
			Id:          uuid.New().String(),
			TraceId:     uuid.New().String(),
			CreatedTime: time.Now(),
			Status:      jobmodel.JobStatusRunning,
			CurrentStep: jobmodel.IngestInit,
			JobPayload: jobmodel.JobPayload{
				DocumentName: entry.Name(),
				SourcePath:   path,
			},
		}

		ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
		logger.Info("Ingesting document", "file", entry.Name())
		job = assistantService.ProcessDocument(ctx, job)

		if job.Status == jobmodel.JobStatusError {
			// one broken document must not stop the batch
			logger.Error("Document failed", "file", entry.Name(), "error", job.Error.Message)
			failed++
			continue
		}
		logger.Info("Document done",
			"file", entry.Name(),
			"faqPairs", job.JobPayload.FAQCount,
			"chunks", job.JobPayload.ChunkCount,
			"partial", job.JobPayload.Partial,
			"report", job.JobPayload.ReportPath)
		processed++
	}

	logger.Info("Batch complete", "processed", processed, "failed", failed, "skipped", skipped)
	if failed > 0 && processed == 0 {
		os.Exit(1)
	}
}
