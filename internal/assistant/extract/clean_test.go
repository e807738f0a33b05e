package extract

import (
	"strings"
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "Requisitos de la convocatoria 2024.",
			want:  "Requisitos de la convocatoria 2024.",
		},
		{
			name:  "keeps accents but drops inverted marks",
			input: "Admisión básica: ¿título? año Ñoño",
			want:  "Admisión básica: título? año Ñoño",
		},
		{
			name:  "collapses whitespace runs",
			input: "uno \t dos\n\n\n  tres",
			want:  "uno dos tres",
		},
		{
			name:  "drops control and box drawing noise",
			input: "a\x00b\x01c │ d",
			want:  "abc d",
		},
		{
			name:  "trims surrounding space",
			input: "   centrado   ",
			want:  "centrado",
		},
		{
			name:  "empty stays empty",
			input: "",
			want:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CleanText(tc.input)
			if got != tc.want {
				t.Errorf("CleanText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCleanText_AccentedSetSurvives(t *testing.T) {
	input := "ÁÉÍÓÚáéíóúÜüÑñ"
	if got := CleanText(input); got != input {
		t.Errorf("accented allowlist was mangled: got %q", got)
	}
}

func TestCleanText_CutsUnbrokenRuns(t *testing.T) {
	run := strings.Repeat("x", 80)
	got := CleanText("antes " + run + " despues")

	want := "antes " + strings.Repeat("x", 50) + "- despues"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanText_RunOfExactly49Untouched(t *testing.T) {
	run := strings.Repeat("y", 49)
	if got := CleanText(run); got != run {
		t.Errorf("49-char run should pass through, got %q", got)
	}
}

func TestCleanText_RunBoundaryAt50(t *testing.T) {
	run := strings.Repeat("z", 50)
	want := run + "-"
	if got := CleanText(run); got != want {
		t.Errorf("50-char run should be cut and hyphenated, got %q", got)
	}
}
