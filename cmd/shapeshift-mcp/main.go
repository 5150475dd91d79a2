// Command shapeshift-mcp serves the shapeshift engine as an MCP tool over
// stdio or SSE.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/HumanAssisted/shapeshift-go/internal/matcher"
	"github.com/HumanAssisted/shapeshift-go/internal/metrics"
	"github.com/HumanAssisted/shapeshift-go/internal/server"
)

var (
	provider    = flag.String("provider", "", "Embeddings provider (default: EMBEDDINGS_PROVIDER env, else static)")
	apiKey      = flag.String("api-key", "", "Provider API key (falls back to provider env vars)")
	model       = flag.String("model", "", "Embedding model identifier")
	threshold   = flag.Float64("threshold", 0, "Minimum cosine similarity to accept a match")
	cacheURL    = flag.String("cache-url", "", "libSQL URL for the embedding cache")
	transport   = flag.String("transport", "stdio", "Transport to use: stdio or sse")
	addr        = flag.String("addr", ":8080", "Address to listen on when using SSE transport")
	sseEndpoint = flag.String("sse-endpoint", "/sse", "SSE endpoint path when using SSE transport")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, closing server...")
		cancel()
	}()

	config := matcher.NewConfigFromEnv()

	// Initialize metrics (noop if disabled)
	metrics.InitFromEnv()

	// Override with command line flags if provided
	if *provider != "" {
		config.Provider = *provider
	}
	if *apiKey != "" {
		config.APIKey = *apiKey
	}
	if *model != "" {
		config.Model = *model
	}
	if *threshold != 0 {
		config.Threshold = *threshold
	}
	if *cacheURL != "" {
		config.CacheURL = *cacheURL
	}

	engine, err := matcher.NewEngine(config)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			log.Printf("Error closing engine: %v", err)
		}
	}()

	mcpServer := server.NewMCPServer(engine)

	log.Println("Starting shapeshift MCP server...")
	switch *transport {
	case "stdio":
		go func() {
			if err := mcpServer.Run(ctx); err != nil {
				log.Printf("Server error: %v", err)
			}
		}()
	case "sse":
		go func() {
			if err := mcpServer.RunSSE(ctx, *addr, *sseEndpoint); err != nil {
				log.Printf("SSE server error: %v", err)
			}
		}()
	default:
		log.Fatalf("unknown transport: %s (expected: stdio or sse)", *transport)
	}

	<-ctx.Done()

	log.Println("Server stopped")
}
