// Command shapeshift reads a source JSON document and a target JSON template
// and prints the source mapped onto the target's shape.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	json "github.com/goccy/go-json"

	"github.com/HumanAssisted/shapeshift-go/internal/matcher"
	"github.com/HumanAssisted/shapeshift-go/internal/metrics"
)

var (
	provider  = flag.String("provider", "", "Embeddings provider: openai, huggingface, ollama, gemini, vertex, localai, voyageai, static")
	apiKey    = flag.String("api-key", "", "Provider API key (falls back to provider env vars)")
	model     = flag.String("model", "", "Embedding model identifier (provider default if empty)")
	threshold = flag.Float64("threshold", 0, "Minimum cosine similarity to accept a match")
	dims      = flag.Int("dims", 0, "Pad/truncate embeddings to this dimensionality")
	cacheURL  = flag.String("cache-url", "", "libSQL URL for the embedding cache (e.g. file:./embeddings.db)")
	debug     = flag.Bool("debug", false, "Include key lists and embedding batches in the output")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <source.json> <target.json>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

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
	if *dims > 0 {
		cfg.EmbeddingDims = *dims
	}
	if *cacheURL != "" {
		cfg.CacheURL = *cacheURL
	}

	source := readValue(flag.Arg(0))
	target := readValue(flag.Arg(1))

	engine, err := matcher.NewEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			log.Printf("Error closing engine: %v", err)
		}
	}()

	result, err := engine.Shapeshift(context.Background(), source, target)
	if err != nil {
		log.Fatalf("Shapeshift failed: %v", err)
	}

	var payload any = result.Result
	if *debug {
		payload = result
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}

func readValue(path string) any {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		log.Fatalf("Failed to parse %s: %v", path, err)
	}
	return v
}
