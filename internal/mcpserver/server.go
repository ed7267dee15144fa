// Package mcpserver exposes the hero catalog as Model Context Protocol tools,
// served over the streamable HTTP transport.
package mcpserver

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/HerbHall/herodex/internal/catalog"
	"github.com/HerbHall/herodex/internal/version"
	"github.com/HerbHall/herodex/pkg/models"
)

// Tool names.
const (
	ToolListHeroes   = "list_heroes"
	ToolSearchHeroes = "search_heroes"
)

// ListHeroesInput is the argument of list_heroes.
type ListHeroesInput struct {
	Page *int `json:"page,omitempty" jsonschema:"1-based page number, defaults to the first page"`
}

// ListHeroesOutput is the structured result of list_heroes.
type ListHeroesOutput struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message"`
	PrevPage *int          `json:"prevPage,omitempty"`
	NextPage *int          `json:"nextPage,omitempty"`
	Heroes   []models.Hero `json:"heroes"`
}

// SearchHeroesInput is the argument of search_heroes.
type SearchHeroesInput struct {
	Name string `json:"name,omitempty" jsonschema:"case-insensitive substring of the hero name"`
}

// SearchHeroesOutput is the structured result of search_heroes.
type SearchHeroesOutput struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Heroes  []models.Hero `json:"heroes"`
}

// Server wraps an MCP server whose tools answer from a catalog engine.
type Server struct {
	engine *catalog.Engine
	logger *zap.Logger
	mcp    *mcp.Server
}

// New creates the MCP server and registers the catalog tools.
func New(engine *catalog.Engine, logger *zap.Logger) *Server {
	s := &Server{
		engine: engine,
		logger: logger,
		mcp:    mcp.NewServer(&mcp.Implementation{Name: version.Name, Version: version.Short()}, nil),
	}

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        ToolListHeroes,
		Description: "List one page of the hero catalog.",
	}, s.listHeroes)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        ToolSearchHeroes,
		Description: "Find heroes whose name contains the given text, ignoring case.",
	}, s.searchHeroes)

	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Handler returns the streamable HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
}

// RegisterRoutes implements server.RouteRegistrar.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/mcp", s.Handler())
}

func (s *Server) listHeroes(_ context.Context, _ *mcp.CallToolRequest, in ListHeroesInput) (*mcp.CallToolResult, ListHeroesOutput, error) {
	page := 1
	if in.Page != nil {
		page = *in.Page
	}

	res, err := s.engine.PageNumber(page)
	if err != nil {
		s.logger.Debug("list_heroes rejected", zap.Int("page", page), zap.Error(err))
		return nil, ListHeroesOutput{}, err
	}

	return nil, ListHeroesOutput{
		Success:  true,
		Message:  catalog.MessageFetched,
		PrevPage: res.PrevPage,
		NextPage: res.NextPage,
		Heroes:   res.Heroes,
	}, nil
}

func (s *Server) searchHeroes(_ context.Context, _ *mcp.CallToolRequest, in SearchHeroesInput) (*mcp.CallToolResult, SearchHeroesOutput, error) {
	return nil, SearchHeroesOutput{
		Success: true,
		Message: catalog.MessageSearchOK,
		Heroes:  s.engine.Search(in.Name),
	}, nil
}
