package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"

	"github.com/usicamm-ai/GobiAPI/internal/config"
	"github.com/usicamm-ai/GobiAPI/pkg/logger_i"
)

// Writer is the report sink: one artifact per processed document, named by
// replacing the document's extension.
type Writer interface {
	Write(ctx context.Context, docName string, body string) (string, error)
}

// DocxWriter renders the aggregated extraction text into a Word document,
// optionally converting it to PDF through a headless LibreOffice run.
type DocxWriter struct {
	cfg       config.ReportConfig
	converter converter
	logger    *logger_i.Logger
}

func NewDocxWriter(cfg config.ReportConfig) *DocxWriter {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "results_word"
	}
	if cfg.Soffice == "" {
		cfg.Soffice = "soffice"
	}
	return &DocxWriter{
		cfg:       cfg,
		converter: execConverter{},
		logger:    logger_i.NewLogger("Report Writer"),
	}
}

// NewTestWriter injects a fake converter; test use only.
func NewTestWriter(cfg config.ReportConfig, c converter) *DocxWriter {
	w := NewDocxWriter(cfg)
	w.converter = c
	return w
}

func (w *DocxWriter) Write(ctx context.Context, docName string, body string) (string, error) {
	if err := os.MkdirAll(w.cfg.OutputDir, 0750); err != nil {
		return "", fmt.Errorf("report write: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", fmt.Errorf("report write: %w", err)
	}
	if _, err := doc.AddHeading("Requisitos extraídos de la convocatoria: "+docName, 1); err != nil {
		return "", fmt.Errorf("report write: %w", err)
	}
	doc.AddParagraph(body)

	base := strings.TrimSuffix(docName, filepath.Ext(docName))
	outPath := filepath.Join(w.cfg.OutputDir, base+".docx")
	if err := doc.SaveTo(outPath); err != nil {
		return "", fmt.Errorf("report write: %w", err)
	}
	w.logger.Info("report saved", "path", outPath)

	if w.cfg.ConvertToPDF {
		// secondary conversion may fail independently of the pipeline
		if err := w.convertToPDF(ctx, outPath); err != nil {
			w.logger.Error("pdf conversion failed", "path", outPath, "error", err)
		}
	}
	return outPath, nil
}

func (w *DocxWriter) convertToPDF(ctx context.Context, docxPath string) error {
	return w.converter.Convert(ctx, w.cfg.Soffice,
		"--headless", "--convert-to", "pdf", docxPath, "--outdir", w.cfg.OutputDir)
}
