package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/usicamm-ai/GobiAPI/internal/config"
	"github.com/usicamm-ai/GobiAPI/internal/domain/commonModels"
	"github.com/usicamm-ai/GobiAPI/pkg/logger_i"
)

// ErrDocumentUnreadable marks a document that cannot be opened or parsed at
// all. The caller skips that document and continues with the next one.
var ErrDocumentUnreadable = errors.New("document unreadable")

type rawPage struct {
	Number  int
	Content string
}

type Extractor struct {
	cfg    config.ExtractConfig
	runner Runner
	logger *logger_i.Logger
}

func NewExtractor(cfg config.ExtractConfig) *Extractor {
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Languages == "" {
		cfg.Languages = "spa+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{
		cfg:    cfg,
		runner: ExecRunner{},
		logger: logger_i.NewLogger("Text Extractor"),
	}
}

// NewTestExtractor injects a fake Runner; test use only.
func NewTestExtractor(cfg config.ExtractConfig, r Runner) *Extractor {
	e := NewExtractor(cfg)
	e.runner = r
	return e
}

func GetDocType(docPath string) commonModels.DocType {
	ext := strings.ToLower(filepath.Ext(docPath))
	switch ext {
	case ".pdf":
		return commonModels.PDF
	case ".docx", ".txt", ".rtf", ".odt":
		return commonModels.DOCX
	default:
		return commonModels.ERR
	}
}

// Extract returns the cleaned plain text of the whole document. Pages with
// an embedded text layer use it directly; pages without one are rasterized
// and OCRed. An empty or all-blank document yields "" and no error.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	var pages []rawPage
	var err error

	switch GetDocType(path) {
	case commonModels.PDF:
		pages, err = e.extractPDF(ctx, path)
	case commonModels.DOCX:
		pages, err = e.extractDocxTxtRtf(path)
	default:
		return "", fmt.Errorf("%w: unsupported extension %q", ErrDocumentUnreadable, filepath.Ext(path))
	}
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, page := range pages {
		b.WriteString(page.Content)
		b.WriteString("\n")
	}
	return CleanText(b.String()), nil
}
