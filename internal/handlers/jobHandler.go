package handlers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/usicamm-ai/GobiAPI/internal/assistant"
	"github.com/usicamm-ai/GobiAPI/internal/config"
	"github.com/usicamm-ai/GobiAPI/internal/domain/jobModel"
	"github.com/usicamm-ai/GobiAPI/internal/job"
	"github.com/usicamm-ai/GobiAPI/internal/metrics"
	"github.com/usicamm-ai/GobiAPI/pkg/logger_i"
)

var (
	handlerInstance *JobHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
	_assistant      assistant.Service
)

type JobHandler struct {
	service *job.Service
}

func InitHandlers(jobService *job.Service, assistantService assistant.Service) {
	once.Do(func() {
		handlerInstance = &JobHandler{service: jobService}
		_assistant = assistantService

		logJH = logger_i.NewLogger("JobHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logJH.Info("Starting job handler")
	})
}

func CreateNewJob(newJob newJobData) {
	logJH.With("traceId", newJob.traceId, "job id", newJob.id)
	logJH.Info("To create new ingestion job")
	handlerInstance.pushToJobChannel(newJob)
}

func GetJobStatus(id string, traceId string) (result jobModel.Job, isFound bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance != nil {
		return handlerInstance.service.JobStore.GetJob(ctxC, id)
	}
	return result, false
}

// private methods
func (h *JobHandler) pushToJobChannel(newJob newJobData) {

	_job := jobModel.Job{}
	_job.Id = newJob.id
	_job.CreatedTime = time.Now()
	_job.TraceId = newJob.traceId
	_job.Status = jobModel.JobStatusQueued
	_job.CurrentStep = jobModel.IngestInit
	_job.JobPayload.DocumentName = newJob.documentName
	_job.JobPayload.SourcePath = newJob.sourcePath

	//metrics
	metrics.IncrementJobsInQueue()

	h.service.JobChannel <- _job //this is a blocking send to prevent the system from being overwhelmed
	logJH.Info("Created new job")

	//ingestion makes one completion call per chunk so every queued
	//document gets a dispatcher signal - the pool scales up to
	//MaxWorkerCount and idle workers retire on their own
	atomic.AddInt64(&h.service.RequestCount, 1)
	metrics.StartDispatcherSignalCount() //metrics
	h.service.DispatcherChannel <- true
}
