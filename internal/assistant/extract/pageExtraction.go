package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

func (e *Extractor) extractPDF(ctx context.Context, path string) ([]rawPage, error) {
	e.logger.Debug("extractPDF", "attempting extraction", path)
	f, err := pdf.Open(path)
	if err != nil {
		e.logger.Error("failed opening pdf file", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	var pages []rawPage
	numPages := f.NumPage()
	e.logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			pages = append(pages, e.ocrFallback(ctx, path, i))
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			e.logger.Error("Error parsing page content", "page", i, "Error", err)
			pages = append(pages, e.ocrFallback(ctx, path, i))
			continue
		}

		if strings.TrimSpace(content) == "" {
			// no embedded text layer - scanned page
			pages = append(pages, e.ocrFallback(ctx, path, i))
			continue
		}

		pages = append(pages, rawPage{Number: i, Content: content})
	}
	return pages, nil
}

func (e *Extractor) ocrFallback(ctx context.Context, path string, pageNum int) rawPage {
	text, err := e.ocrPage(ctx, path, pageNum)
	if err != nil {
		// OCR failure degrades to an empty page, not a document failure
		e.logger.Error("OCR fallback failed", "page", pageNum, "error", err)
		return rawPage{Number: pageNum}
	}
	return rawPage{Number: pageNum, Content: text}
}

// extractDocxTxtRtf reads a .odt, .docx, .rtf or plaintext file and returns
// the content as a single page.
func (e *Extractor) extractDocxTxtRtf(path string) ([]rawPage, error) {
	text, err := cat.File(path)
	if err != nil {
		e.logger.Error("Error extracting content from doc", "path", path)
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	return []rawPage{
		{
			Number:  1,
			Content: text,
		},
	}, nil
}

func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(time.Second * 10):
		return "", errors.New("timeout")
	}
}
