package extract

// SplitIntoBlocks partitions text into consecutive slices of at most
// maxChars characters, in original order; only the last block may be
// shorter. Concatenating the result reproduces text exactly. Boundaries are
// character offsets, not semantic - a sentence may split mid-way, which is
// an accepted limitation of the pipeline.
func SplitIntoBlocks(text string, maxChars int) []string {
	if maxChars <= 0 || text == "" {
		return nil
	}

	runes := []rune(text)
	blocks := make([]string, 0, (len(runes)+maxChars-1)/maxChars)
	for i := 0; i < len(runes); i += maxChars {
		end := i + maxChars
		if end > len(runes) {
			end = len(runes)
		}
		blocks = append(blocks, string(runes[i:end]))
	}
	return blocks
}
