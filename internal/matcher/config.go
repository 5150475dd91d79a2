package matcher

import (
	"os"
	"strconv"
)

// DefaultThreshold is the acceptance threshold used when none is configured.
const DefaultThreshold = 0.8

// Config holds the engine configuration. Provider, APIKey, and Model are
// passed through to the embeddings layer unexamined.
type Config struct {
	Provider  string
	APIKey    string
	Model     string
	Threshold float64

	// EmbeddingDims, when positive, pads or truncates provider output to a
	// fixed dimensionality.
	EmbeddingDims int
	// CacheURL, when set, enables the libSQL-backed embedding cache at that
	// database URL.
	CacheURL string
}

// NewConfigFromEnv builds a Config from environment variables.
func NewConfigFromEnv() *Config {
	cfg := &Config{
		Provider:  os.Getenv("EMBEDDINGS_PROVIDER"),
		APIKey:    os.Getenv("EMBEDDINGS_API_KEY"),
		Model:     os.Getenv("EMBEDDINGS_MODEL"),
		Threshold: DefaultThreshold,
		CacheURL:  os.Getenv("EMBEDDINGS_CACHE_URL"),
	}
	if v := os.Getenv("SHAPESHIFT_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Threshold = f
		}
	}
	if v := os.Getenv("EMBEDDING_DIMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.EmbeddingDims = n
		}
	}
	return cfg
}
