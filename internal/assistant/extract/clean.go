package extract

import (
	"regexp"
	"strings"
)

var (
	// Printable ASCII plus the Spanish accented set and common punctuation.
	// Everything else (control chars, box-drawing noise from OCR, emoji) is
	// dropped before the text reaches a prompt.
	disallowedChars = regexp.MustCompile(`[^\x20-\x7EÁÉÍÓÚáéíóúÜüÑñ.,;:!?()\-–—\n]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	unbrokenRuns    = regexp.MustCompile(`\S{50,}`)
)

// CleanText normalizes extracted page text: strips characters outside the
// allowlist, collapses whitespace runs to a single space and cuts unspaced
// runs of 50+ characters down to 50 plus a hyphen. Degenerate OCR output
// would otherwise blow up chunk prompts downstream.
func CleanText(text string) string {
	text = disallowedChars.ReplaceAllString(text, "")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = unbrokenRuns.ReplaceAllStringFunc(text, func(run string) string {
		r := []rune(run)
		return string(r[:50]) + "-"
	})
	return strings.TrimSpace(text)
}
