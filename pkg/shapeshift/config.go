package shapeshift

import (
	"github.com/HumanAssisted/shapeshift-go/internal/matcher"
)

// Config exposes a stable wrapper for engine configuration in package mode.
// Fields map directly to the internal matcher configuration.
type Config struct {
	// Provider names the embedding provider: "openai", "huggingface",
	// "ollama", "gemini", "vertex", "localai", "voyageai", or "static".
	Provider string
	// APIKey is the provider credential. May be empty when the provider reads
	// its credential from the environment.
	APIKey string
	// Model is the embedding model identifier. Empty selects the provider
	// default.
	Model string
	// Threshold is the minimum cosine similarity for a match, typically in
	// [0, 1].
	Threshold float64
	// EmbeddingDims, when positive, pads or truncates provider vectors to a
	// fixed size.
	EmbeddingDims int
	// CacheURL, when set, enables a libSQL-backed embedding cache at that
	// database URL (e.g. "file:./embeddings.db").
	CacheURL string
}

func (c *Config) toInternal() *matcher.Config {
	return &matcher.Config{
		Provider:      c.Provider,
		APIKey:        c.APIKey,
		Model:         c.Model,
		Threshold:     c.Threshold,
		EmbeddingDims: c.EmbeddingDims,
		CacheURL:      c.CacheURL,
	}
}
