// @title           Gobi Assistant API
// @version         1.0
// @description     Document ingestion pipeline and FAQ knowledge-base assistant for USICAMM convocatorias.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/usicamm-ai/GobiAPI/internal/assistant"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/extract"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/knowledge"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/report"
	"github.com/usicamm-ai/GobiAPI/internal/config"
	"github.com/usicamm-ai/GobiAPI/internal/data/store"
	jobmodel "github.com/usicamm-ai/GobiAPI/internal/domain/jobModel"
	"github.com/usicamm-ai/GobiAPI/internal/handlers"
	"github.com/usicamm-ai/GobiAPI/internal/job"
	"github.com/usicamm-ai/GobiAPI/internal/mcpserver"
	"github.com/usicamm-ai/GobiAPI/internal/server"
	"github.com/usicamm-ai/GobiAPI/internal/worker"
	"github.com/usicamm-ai/GobiAPI/pkg/logger_i"
)

var (
	listenAddr        string
	mcpMode           bool
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.BoolVar(&mcpMode, "mcp", false, "serve the assistant over MCP stdio instead of HTTP")
	flag.Parse()

	cfg := config.Load()

	//assistant pipeline
	extractor := extract.NewExtractor(cfg.Extract)
	provider := assistant.NewProviderFromConfig(cfg.LLM)
	knowledgeStore := knowledge.NewCSVStore(cfg.Store.ResponsesCSV)
	reportWriter := report.NewDocxWriter(cfg.Report)
	assistantService := assistant.NewService(extractor, provider, knowledgeStore, reportWriter, cfg)

	if mcpMode {
		mcpServer := mcpserver.NewServer(assistantService, knowledgeStore, cfg.Retrieval.SimilarityThreshold)
		if err := mcpServer.Run(context.Background()); err != nil {
			logger.Error("MCP server stopped", "error", err)
		}
		return
	}

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and job store
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	}
	logger.Info("Starting job service")

	if redisJobStore := store.GetRedisJobStore(serviceContext); redisJobStore != nil {
		serviceConfig.JobStore = redisJobStore
	} else if config.FALLBACK_REDIS_TO_INTERNALSTORE {
		logger.Error("Redis job store is offline, using in-memory store")
		serviceConfig.JobStore = store.InitInMemoryJobStore()
	} else {
		logger.Error("Redis job store is offline. Shutting down.")
		return
	}
	service := job.InitJobService(serviceConfig)

	handlers.InitHandlers(service, assistantService)

	//init worker pool
	worker.InitServices(service, assistantService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
