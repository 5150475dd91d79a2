// Package server exposes the shapeshift engine over the Model Context
// Protocol, with stdio and SSE transports.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HumanAssisted/shapeshift-go/internal/apptype"
	"github.com/HumanAssisted/shapeshift-go/internal/matcher"
	"github.com/HumanAssisted/shapeshift-go/internal/metrics"
)

const serverVersion = "0.1.0"

// MCPServer handles MCP protocol communication
type MCPServer struct {
	server *mcp.Server
	engine *matcher.Engine
}

// NewMCPServer creates a new MCP server around the given engine.
func NewMCPServer(engine *matcher.Engine) *MCPServer {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "shapeshift-go",
		Version: serverVersion,
	}, nil)

	mcpServer := &MCPServer{
		server: server,
		engine: engine,
	}

	// initialize metrics from env (no-op if disabled)
	metrics.InitFromEnv()
	mcpServer.setupToolHandlers()
	return mcpServer
}

// setupToolHandlers registers all MCP tools
func (s *MCPServer) setupToolHandlers() {
	shapeshiftInputSchema, err := jsonschema.For[apptype.ShapeshiftArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for ShapeshiftArgs: %v", err))
	}
	healthInputSchema, err := jsonschema.For[apptype.HealthArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for HealthArgs: %v", err))
	}
	healthOutputSchema, err := jsonschema.For[apptype.HealthResult]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for HealthResult: %v", err))
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "shapeshift",
		Title:       "Shapeshift",
		Description: "Map the fields of a source object onto a differently-shaped target template using semantic key similarity.",
		InputSchema: shapeshiftInputSchema,
	}, s.handleShapeshift)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "health_check",
		Title:        "Health Check",
		Description:  "Returns engine and provider configuration information.",
		InputSchema:  healthInputSchema,
		OutputSchema: healthOutputSchema,
	}, s.handleHealth)
}

// handleShapeshift handles the shapeshift tool call
func (s *MCPServer) handleShapeshift(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.ShapeshiftArgs],
) (*mcp.CallToolResultFor[any], error) {
	result, err := s.engine.Shapeshift(ctx, params.Arguments.Source, params.Arguments.Target)
	if err != nil {
		return nil, fmt.Errorf("shapeshift failed: %w", err)
	}

	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Mapped %d source keys onto %d target keys",
					len(result.DebugInfo.SourceKeys), len(result.DebugInfo.TargetKeys)),
			},
		},
		StructuredContent: result,
	}, nil
}

// handleHealth handles the health_check tool call
func (s *MCPServer) handleHealth(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.HealthArgs],
) (*mcp.CallToolResultFor[apptype.HealthResult], error) {
	provider := s.engine.Provider()
	return &mcp.CallToolResultFor[apptype.HealthResult]{
		Content: []mcp.Content{&mcp.TextContent{Text: "ok"}},
		StructuredContent: apptype.HealthResult{
			Status:    "ok",
			Provider:  provider.Name(),
			Dims:      provider.Dimensions(),
			Threshold: s.engine.Threshold(),
		},
	}, nil
}

// Run starts the MCP server with stdio transport
func (s *MCPServer) Run(ctx context.Context) error {
	transport := mcp.NewStdioTransport()
	return s.server.Run(ctx, transport)
}

// RunSSE starts the MCP server over SSE at the given address and endpoint
func (s *MCPServer) RunSSE(ctx context.Context, addr string, endpoint string) error {
	handler := mcp.NewSSEHandler(func(r *http.Request) *mcp.Server { return s.server })
	mux := http.NewServeMux()
	mux.Handle(endpoint, handler)
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 0)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("SSE MCP server listening on %s%s", addr, endpoint)
	return srv.ListenAndServe()
}
