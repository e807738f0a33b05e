package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to ask the assistant"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer string `json:"answer"`
	Source string `json:"source" jsonschema:"where the answer came from: moderation, knowledge or model"`
}

// SearchFAQInput is the input schema for the search_faq tool.
type SearchFAQInput struct {
	Question string `json:"question" jsonschema:"the question to look up in the FAQ knowledge base"`
}

// SearchFAQOutput is the output schema for the search_faq tool.
type SearchFAQOutput struct {
	Found    bool   `json:"found"`
	Question string `json:"question,omitempty" jsonschema:"the stored question that matched"`
	Answer   string `json:"answer,omitempty"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask the USICAMM assistant a question. Known questions are answered from the FAQ knowledge base, new ones go to the model and are remembered.",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_faq",
		Description: "Look up a question in the FAQ knowledge base without invoking the model.",
	}, s.handleSearchFAQ)
}

func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	result, err := s.assistant.Answer(ctx, input.Question)
	if err != nil && result.Text == "" {
		return nil, AskOutput{}, err
	}
	if err != nil {
		// answer produced but not persisted - still usable
		s.logger.Warn("Answer produced but not persisted", "err", err)
	}

	return nil, AskOutput{
		Answer: result.Text,
		Source: string(result.Source),
	}, nil
}

func (s *Server) handleSearchFAQ(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchFAQInput,
) (*mcp.CallToolResult, SearchFAQOutput, error) {
	pair, found, err := s.knowledge.FindSimilar(input.Question, s.threshold)
	if err != nil {
		return nil, SearchFAQOutput{}, err
	}
	if !found {
		return nil, SearchFAQOutput{Found: false}, nil
	}

	return nil, SearchFAQOutput{
		Found:    true,
		Question: pair.Question,
		Answer:   pair.Answer,
	}, nil
}
