package knowledge

import (
	"regexp"
	"strings"
)

// Matches what the rest of the pipeline treats as a word: letters, digits
// and underscore. \p{L} keeps accented Spanish words whole.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Similarity scores two strings in [0,1] by lowercase token-set overlap:
// |intersection| / max(|a|,|b|). Not classic Jaccard - the denominator is
// the larger set, not the union. Either side empty scores 0.
func Similarity(a, b string) float64 {
	aWords := tokenSet(a)
	bWords := tokenSet(b)
	if len(aWords) == 0 || len(bWords) == 0 {
		return 0.0
	}

	inter := 0
	for w := range aWords {
		if bWords[w] {
			inter++
		}
	}

	denom := len(aWords)
	if len(bWords) > denom {
		denom = len(bWords)
	}
	return float64(inter) / float64(denom)
}

func tokenSet(s string) map[string]bool {
	words := wordPattern.FindAllString(strings.ToLower(s), -1)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
