// Command shapeshift-server exposes the shapeshift engine over HTTP.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/HumanAssisted/shapeshift-go/internal/api"
	"github.com/HumanAssisted/shapeshift-go/internal/matcher"
	"github.com/HumanAssisted/shapeshift-go/internal/metrics"
)

var (
	port      = flag.Int("port", 8001, "Port to listen on")
	provider  = flag.String("provider", "", "Embeddings provider (default: EMBEDDINGS_PROVIDER env, else static)")
	apiKey    = flag.String("api-key", "", "Provider API key (falls back to provider env vars)")
	model     = flag.String("model", "", "Embedding model identifier")
	threshold = flag.Float64("threshold", 0, "Minimum cosine similarity to accept a match")
	cacheURL  = flag.String("cache-url", "", "libSQL URL for the embedding cache")
)

func main() {
	flag.Parse()

	metrics.InitFromEnv()

	cfg := matcher.NewConfigFromEnv()
	if *provider != "" {
		cfg.Provider = *provider
	}
	if *apiKey != "" {
		cfg.APIKey = *apiKey
	}
	if *model != "" {
		cfg.Model = *model
	}
	if *threshold != 0 {
		cfg.Threshold = *threshold
	}
	if *cacheURL != "" {
		cfg.CacheURL = *cacheURL
	}

	engine, err := matcher.NewEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer engine.Close()

	handler := api.NewHandler(engine)
	router := api.NewRouter(handler)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("shapeshift server starting on %s (provider=%s threshold=%.2f)",
		addr, engine.Provider().Name(), engine.Threshold())
	log.Printf("Endpoints:")
	log.Printf("   POST /shapeshift - map a source object onto a target template")
	log.Printf("   GET  /health     - engine health and configuration")

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
