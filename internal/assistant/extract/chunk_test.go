package extract

import (
	"strings"
	"testing"
)

func TestSplitIntoBlocks(t *testing.T) {
	t.Run("empty text gives no blocks", func(t *testing.T) {
		if got := SplitIntoBlocks("", 2000); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("short text is a single block", func(t *testing.T) {
		blocks := SplitIntoBlocks("hola", 2000)
		if len(blocks) != 1 || blocks[0] != "hola" {
			t.Errorf("got %v", blocks)
		}
	})

	t.Run("exact multiple splits evenly", func(t *testing.T) {
		blocks := SplitIntoBlocks(strings.Repeat("a", 6), 3)
		if len(blocks) != 2 {
			t.Fatalf("expected 2 blocks, got %d", len(blocks))
		}
		for i, b := range blocks {
			if len(b) != 3 {
				t.Errorf("block %d has length %d", i, len(b))
			}
		}
	})

	t.Run("last block carries the remainder", func(t *testing.T) {
		blocks := SplitIntoBlocks(strings.Repeat("a", 7), 3)
		if len(blocks) != 3 {
			t.Fatalf("expected 3 blocks, got %d", len(blocks))
		}
		if blocks[2] != "a" {
			t.Errorf("last block = %q", blocks[2])
		}
	})

	t.Run("invalid bound gives no blocks", func(t *testing.T) {
		if got := SplitIntoBlocks("texto", 0); got != nil {
			t.Errorf("expected nil for bound 0, got %v", got)
		}
		if got := SplitIntoBlocks("texto", -5); got != nil {
			t.Errorf("expected nil for negative bound, got %v", got)
		}
	})
}

// Joining the blocks must reproduce the input exactly, and no block may
// exceed the bound. Multibyte runes must never be split in half.
func TestSplitIntoBlocks_Reconstruction(t *testing.T) {
	inputs := []string{
		strings.Repeat("convocatoria ", 400),
		strings.Repeat("admisión y promoción ", 300),
		"ñ",
		strings.Repeat("á", 2001),
	}

	for _, input := range inputs {
		blocks := SplitIntoBlocks(input, 2000)

		joined := strings.Join(blocks, "")
		if joined != input {
			t.Fatalf("reconstruction failed for input of %d bytes", len(input))
		}
		for i, b := range blocks {
			if n := len([]rune(b)); n > 2000 {
				t.Errorf("block %d has %d runes, bound is 2000", i, n)
			}
		}
	}
}
