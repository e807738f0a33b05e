package api

import "time"

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

// IngestResult reports what the pipeline produced for one document.
type IngestResult struct {
	DocumentName string `json:"document_name"`
	ReportPath   string `json:"report_path,omitempty"`
	FAQCount     int    `json:"faq_count"`
	ChunkCount   int    `json:"chunk_count"`
	Partial      bool   `json:"partial"`
}

type Result struct {
	Status       string        `json:"status"`
	IngestResult *IngestResult `json:"ingest_result,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

// requests---------------------

type ChatRequest struct {
	Message string `json:"message" validate:"required" `
}

type ChatResponse struct {
	Answer string `json:"answer"`
	Source string `json:"source" example:"knowledge"`
}

type JobStatusRequest struct {
	JobId string `json:"job_id" validate:"required"`
}

type IngestDocumentRequest struct {
	DocumentName string `json:"document_name" validate:"required"`
}
