package ingest

import "testing"

func TestParseFAQ(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantQuestion string
		wantAnswer   string
		wantOk       bool
	}{
		{
			name:         "delimiter form",
			raw:          "¿Qué documentos se requieren?||Acta de nacimiento y título profesional.",
			wantQuestion: "¿Qué documentos se requieren?",
			wantAnswer:   "Acta de nacimiento y título profesional.",
			wantOk:       true,
		},
		{
			name:         "delimiter form with surrounding space",
			raw:          "  ¿Cuál es la fecha límite?  ||  El 30 de junio.  ",
			wantQuestion: "¿Cuál es la fecha límite?",
			wantAnswer:   "El 30 de junio.",
			wantOk:       true,
		},
		{
			name:         "only first delimiter splits",
			raw:          "¿Qué es A||B?||Es la ruta A||B.",
			wantQuestion: "¿Qué es A",
			wantAnswer:   "B?||Es la ruta A||B.",
			wantOk:       true,
		},
		{
			name:   "delimiter with empty answer fails",
			raw:    "¿Pregunta suelta?||",
			wantOk: false,
		},
		{
			name:   "delimiter with empty question fails",
			raw:    "||Respuesta suelta.",
			wantOk: false,
		},
		{
			name:         "two line fallback",
			raw:          "¿Se acepta cédula en trámite?\nNo, la cédula debe estar emitida.",
			wantQuestion: "¿Se acepta cédula en trámite?",
			wantAnswer:   "No, la cédula debe estar emitida.",
			wantOk:       true,
		},
		{
			name:         "multiline answer joined with spaces",
			raw:          "¿Cómo me registro?\nEntra al portal.\nLlena el formato.\nEnvía tus documentos.",
			wantQuestion: "¿Cómo me registro?",
			wantAnswer:   "Entra al portal. Llena el formato. Envía tus documentos.",
			wantOk:       true,
		},
		{
			name:         "blank lines are skipped in fallback",
			raw:          "\n\n¿Pregunta?\n\n\nRespuesta.\n",
			wantQuestion: "¿Pregunta?",
			wantAnswer:   "Respuesta.",
			wantOk:       true,
		},
		{
			name:   "single line fails",
			raw:    "El modelo no entendió la instrucción.",
			wantOk: false,
		},
		{
			name:   "empty input fails",
			raw:    "",
			wantOk: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q, a, ok := ParseFAQ(tc.raw)
			if ok != tc.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOk)
			}
			if !ok {
				return
			}
			if q != tc.wantQuestion {
				t.Errorf("question = %q, want %q", q, tc.wantQuestion)
			}
			if a != tc.wantAnswer {
				t.Errorf("answer = %q, want %q", a, tc.wantAnswer)
			}
		})
	}
}
