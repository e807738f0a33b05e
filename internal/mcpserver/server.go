package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usicamm-ai/GobiAPI/internal/assistant"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/knowledge"
	"github.com/usicamm-ai/GobiAPI/pkg/logger_i"
)

// Version is the MCP server version.
const Version = "1.0.0"

// Server exposes the assistant over the Model Context Protocol so that
// MCP-capable clients can ask questions and browse the FAQ knowledge base.
type Server struct {
	assistant assistant.Service
	knowledge knowledge.Store
	threshold float64
	server    *mcp.Server
	logger    *logger_i.Logger
}

func NewServer(assistantService assistant.Service, store knowledge.Store, threshold float64) *Server {
	impl := &mcp.Implementation{
		Name:    "gobi",
		Version: Version,
	}

	s := &Server{
		assistant: assistantService,
		knowledge: store,
		threshold: threshold,
		server:    mcp.NewServer(impl, nil),
		logger:    logger_i.NewLogger("MCPServer"),
	}

	s.registerTools()

	return s
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("MCP server listening on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
