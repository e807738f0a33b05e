package moderation

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTermFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prohibidas.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTermList(t *testing.T) {
	path := writeTermFile(t, "boleto\nVENTA\n  acordeón  \n")

	terms, err := LoadTermList(path)
	if err != nil {
		t.Fatalf("LoadTermList failed: %v", err)
	}
	want := TermList{"boleto", "venta", "acordeón"}
	if len(terms) != len(want) {
		t.Fatalf("got %v, want %v", terms, want)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("term %d = %q, want %q", i, terms[i], want[i])
		}
	}
}

func TestLoadTermList_MissingFile(t *testing.T) {
	terms, err := LoadTermList(filepath.Join(t.TempDir(), "no-existe.csv"))
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if terms.Blocked("cualquier pregunta") {
		t.Error("empty list must not block anything")
	}
}

func TestBlocked(t *testing.T) {
	terms := TermList{"boleto", "venta de plazas"}

	tests := []struct {
		text string
		want bool
	}{
		{"¿Dónde compro un boleto?", true},
		{"¿DÓNDE COMPRO UN BOLETO?", true},
		{"me ofrecieron venta de plazas", true},
		{"el término aparece dentro: boletos baratos", true}, // substring match
		{"¿cuáles son los requisitos?", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := terms.Blocked(tc.text); got != tc.want {
			t.Errorf("Blocked(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
