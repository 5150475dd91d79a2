package embeddings

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Provider defines a simple embeddings provider interface.
// Implementations should be concurrency-safe.
type Provider interface {
	// Name returns the provider name (e.g., "openai", "ollama").
	Name() string
	// Dimensions returns the embedding dimensionality this provider produces.
	Dimensions() int
	// Embed returns one embedding per input string, in input order.
	Embed(ctx context.Context, inputs []string) ([][]float32, error)
}

// New constructs a provider by name with an explicit credential and model.
// Empty apiKey or model fall back to the provider's environment variables and
// defaults, so engines can be built either fully parameterized or from env.
func New(name, apiKey, model string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "openai":
		return newOpenAI(apiKey, model)
	case "huggingface", "hf":
		return newHuggingFace(apiKey, model)
	case "ollama":
		return newOllama(model)
	case "gemini", "google-gemini", "google":
		return newGemini(apiKey, model)
	case "vertex", "vertexai", "google-vertex":
		return newVertex(apiKey)
	case "localai", "llamacpp", "llama.cpp":
		return newLocalAI(apiKey, model)
	case "voyageai", "voyage":
		return newVoyage(apiKey, model)
	case "static", "mock", "":
		return NewStatic(defaultStaticDims, nil), nil
	default:
		return nil, fmt.Errorf("unknown embeddings provider: %q", name)
	}
}

// NewFromEnv constructs a provider based on EMBEDDINGS_PROVIDER plus the
// provider-specific environment variables. Returns the static provider when
// unset so callers always get a working (if credential-free) provider.
func NewFromEnv() (Provider, error) {
	return New(os.Getenv("EMBEDDINGS_PROVIDER"), "", "")
}

func f64to32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i := range v {
		out[i] = float32(v[i])
	}
	return out
}
