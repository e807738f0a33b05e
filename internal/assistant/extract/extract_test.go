package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/usicamm-ai/GobiAPI/internal/config"
	"github.com/usicamm-ai/GobiAPI/internal/domain/commonModels"
)

type fakeRunner struct {
	OnRun func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)
	calls []string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	if f.OnRun != nil {
		return f.OnRun(ctx, name, args...)
	}
	return nil, nil, nil
}

func TestGetDocType(t *testing.T) {
	tests := []struct {
		path string
		want commonModels.DocType
	}{
		{"convocatoria.pdf", commonModels.PDF},
		{"CONVOCATORIA.PDF", commonModels.PDF},
		{"anexo.docx", commonModels.DOCX},
		{"notas.txt", commonModels.DOCX},
		{"oficio.rtf", commonModels.DOCX},
		{"tabla.odt", commonModels.DOCX},
		{"imagen.png", commonModels.ERR},
		{"sin_extension", commonModels.ERR},
	}

	for _, tc := range tests {
		if got := GetDocType(tc.path); got != tc.want {
			t.Errorf("GetDocType(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	e := NewExtractor(config.ExtractConfig{})

	_, err := e.Extract(context.Background(), "foto.jpeg")
	if !errors.Is(err, ErrDocumentUnreadable) {
		t.Errorf("expected ErrDocumentUnreadable, got %v", err)
	}
}

func TestExtract_TxtDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notas.txt")
	if err := os.WriteFile(path, []byte("Requisitos:   título  y\n\nexperiencia."), 0644); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(config.ExtractConfig{})
	got, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	want := "Requisitos: título y experiencia."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOcrPage_InvokesToolchain(t *testing.T) {
	runner := &fakeRunner{}
	runner.OnRun = func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		if name == "pdftoppm" {
			// last arg is the output prefix; fake the png pdftoppm would write
			prefix := args[len(args)-1]
			if err := os.WriteFile(prefix+"-1.png", []byte("png"), 0644); err != nil {
				t.Fatal(err)
			}
			return nil, nil, nil
		}
		return []byte("texto ocr"), nil, nil
	}

	e := NewTestExtractor(config.ExtractConfig{DPI: 150}, runner)
	got, err := e.ocrPage(context.Background(), "doc.pdf", 3)
	if err != nil {
		t.Fatalf("ocrPage failed: %v", err)
	}
	if got != "texto ocr" {
		t.Errorf("got %q", got)
	}
	if len(runner.calls) != 2 || runner.calls[0] != "pdftoppm" || runner.calls[1] != "tesseract" {
		t.Errorf("unexpected call sequence: %v", runner.calls)
	}
}

func TestOcrPage_PdftoppmFailure(t *testing.T) {
	runner := &fakeRunner{
		OnRun: func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
			return nil, []byte("Syntax Error: corrupt stream"), errors.New("exit status 1")
		},
	}

	e := NewTestExtractor(config.ExtractConfig{}, runner)
	_, err := e.ocrPage(context.Background(), "doc.pdf", 1)
	if err == nil {
		t.Fatal("expected an error when pdftoppm fails")
	}
}
