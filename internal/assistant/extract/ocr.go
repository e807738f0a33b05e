package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ocrPage rasterizes a single PDF page and runs tesseract over the bitmap.
// The bitmap lives in a temp dir that is removed before returning - nothing
// is cached between pages.
func (e *Extractor) ocrPage(ctx context.Context, path string, pageNum int) (string, error) {
	tmpDir, err := os.MkdirTemp("", "gobi-ocr-*")
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", err)
		}
	}()

	pageArg := fmt.Sprintf("%d", pageNum)
	prefix := filepath.Join(tmpDir, "page")

	// pdftoppm -f N -l N -r <dpi> -gray|-mono -png <in.pdf> <tmp/page>
	args := []string{"-f", pageArg, "-l", pageArg, "-r", fmt.Sprintf("%d", e.cfg.DPI)}
	if e.cfg.Binarize {
		args = append(args, "-mono")
	} else {
		args = append(args, "-gray")
	}
	args = append(args, "-png", path, prefix)

	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, args...)
	if err != nil {
		return "", fmt.Errorf("pdftoppm page %d: %w (%s)", pageNum, err, truncate(string(errb), 512))
	}

	// page number padding in the output name depends on the page count
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", fmt.Errorf("pdftoppm produced no image for page %d", pageNum)
	}

	// tesseract <img> stdout -l <langs> --psm 6
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, matches[0], "stdout", "-l", e.cfg.Languages, "--psm", "6")
	if err != nil {
		return "", fmt.Errorf("tesseract page %d: %w (%s)", pageNum, err, truncate(string(errb), 512))
	}
	return string(out), nil
}
