package jobModel

import (
	"context"
	"time"
)

type JobStatus string
type InternalStatus string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	IngestInit      InternalStatus = "IngestInit"
	TextExtraction  InternalStatus = "TextExtraction"
	Chunking        InternalStatus = "Chunking"
	CompletionCalls InternalStatus = "CompletionCalls"
	ReportWrite     InternalStatus = "ReportWrite"
	Error           InternalStatus = "Error"

	Complete InternalStatus = "Complete"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobPayload struct {
	DocumentName string `json:"document_name,omitempty"`
	SourcePath   string `json:"source_path,omitempty"`

	ReportPath string `json:"report_path,omitempty"`
	FAQCount   int    `json:"faq_count,omitempty"`
	ChunkCount int    `json:"chunk_count,omitempty"`

	// Partial means at least one chunk was skipped because the completion
	// service failed for it; the report exists but is incomplete.
	Partial bool `json:"partial,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}
