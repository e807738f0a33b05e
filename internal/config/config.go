package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	//if redis init fails, job tracking falls back to an internal in-memory store
	FALLBACK_REDIS_TO_INTERNALSTORE = true

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	// ingestion makes one completion call per chunk, so a large
	// convocatoria can legitimately run for many minutes
	JobExecutionTimeout = 30 * time.Minute

	//serverTimeouts
	//WriteTimeout must cover a full synchronous completion call on /chat
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 120 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisPassword = ""

	//redis has 16 DB we can use
	RedisJobStore = 0

	RedisJobStoreTTL = 24 * time.Hour
)

// Config carries everything the pipeline components need at construction.
// Paths, thresholds and model ids are never read from package globals by the
// components themselves - main builds one of these and hands pieces out.
type Config struct {
	Extract   ExtractConfig
	LLM       LLMConfig
	Store     StoreConfig
	Retrieval RetrievalConfig
	Report    ReportConfig
}

type ExtractConfig struct {
	Pdftoppm  string // binary name or absolute path; defaults to "pdftoppm"
	Tesseract string // defaults to "tesseract"
	Languages string // tesseract -l value, e.g. "spa+eng"
	DPI       int    // rasterization DPI for pages without a text layer
	Binarize  bool   // render two-tone instead of grayscale before OCR
	MaxChunk  int    // chunk bound in characters
}

type LLMConfig struct {
	// Backend selects the completion client: "subprocess", "http" or "openai".
	Backend string
	Model   string
	BaseURL string // http + openai backends
	Binary  string // subprocess backend, defaults to "ollama"
	APIKey  string // openai backend only; local servers ignore it
}

type StoreConfig struct {
	ResponsesCSV  string
	ProhibitedCSV string
}

type RetrievalConfig struct {
	SimilarityThreshold float64
	SystemPrompt        string
	RefusalMessage      string
}

type ReportConfig struct {
	OutputDir    string
	ConvertToPDF bool
	Soffice      string // LibreOffice binary for the optional PDF conversion
}

const (
	DefaultModel     = "deepseek-llm:7b"
	DefaultOllamaURL = "http://localhost:11434"
	DefaultMaxChunk  = 2000
	DefaultThreshold = 0.6

	DefaultSystemPrompt = "Gobi, el asistente virtual oficial de la USICAMM. " +
		"Responde con precisión y amabilidad las dudas relacionadas con la USICAMM."
	DefaultRefusalMessage = "Lo siento, no puedo responder esa pregunta."
)

// Load builds a Config from environment variables with sane defaults.
// Flag overrides happen in main on top of this.
func Load() Config {
	return Config{
		Extract: ExtractConfig{
			Pdftoppm:  envOr("GOBI_PDFTOPPM", "pdftoppm"),
			Tesseract: envOr("GOBI_TESSERACT", "tesseract"),
			Languages: envOr("GOBI_OCR_LANGS", "spa+eng"),
			DPI:       envIntOr("GOBI_OCR_DPI", 300),
			Binarize:  envOr("GOBI_OCR_BINARIZE", "") != "",
			MaxChunk:  envIntOr("GOBI_MAX_CHUNK", DefaultMaxChunk),
		},
		LLM: LLMConfig{
			Backend: envOr("GOBI_LLM_BACKEND", "http"),
			Model:   envOr("GOBI_LLM_MODEL", DefaultModel),
			BaseURL: envOr("GOBI_LLM_URL", DefaultOllamaURL),
			Binary:  envOr("GOBI_LLM_BINARY", "ollama"),
			APIKey:  os.Getenv("GOBI_LLM_API_KEY"),
		},
		Store: StoreConfig{
			ResponsesCSV:  envOr("GOBI_RESPONSES_CSV", "responses.csv"),
			ProhibitedCSV: envOr("GOBI_PROHIBITED_CSV", "prohibidas.csv"),
		},
		Retrieval: RetrievalConfig{
			SimilarityThreshold: DefaultThreshold,
			SystemPrompt:        DefaultSystemPrompt,
			RefusalMessage:      DefaultRefusalMessage,
		},
		Report: ReportConfig{
			OutputDir:    envOr("GOBI_REPORT_DIR", "results_word"),
			ConvertToPDF: envOr("GOBI_REPORT_PDF", "") != "",
			Soffice:      envOr("GOBI_SOFFICE", "soffice"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
