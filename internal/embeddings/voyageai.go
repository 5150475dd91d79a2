package embeddings

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	voyageai "github.com/austinfhunter/voyageai"
)

// Voyage AI embeddings via github.com/austinfhunter/voyageai.

type voyageProvider struct {
	client *voyageai.VoyageClient
	model  string
	dims   int
}

func newVoyage(apiKey, model string) (Provider, error) {
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("VOYAGEAI_API_KEY"))
	}
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("VOYAGE_API_KEY"))
	}
	if apiKey == "" {
		return nil, fmt.Errorf("voyageai provider requires an API key (flag/config or VOYAGEAI_API_KEY)")
	}
	if model == "" {
		model = strings.TrimSpace(os.Getenv("VOYAGEAI_EMBEDDINGS_MODEL"))
	}
	if model == "" {
		model = "voyage-3-lite"
	}
	dims := 512
	if v := strings.TrimSpace(os.Getenv("VOYAGEAI_EMBEDDINGS_DIMS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			dims = n
		}
	}
	client := voyageai.NewClient(&voyageai.VoyageClientOpts{Key: apiKey})
	return &voyageProvider{client: client, model: model, dims: dims}, nil
}

func (p *voyageProvider) Name() string    { return "voyageai" }
func (p *voyageProvider) Dimensions() int { return p.dims }

func (p *voyageProvider) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	if len(inputs) == 0 {
		return [][]float32{}, nil
	}
	resp, err := p.client.Embed(inputs, p.model, nil)
	if err != nil {
		return nil, fmt.Errorf("voyageai embeddings: %w", err)
	}
	if len(resp.Data) != len(inputs) {
		return nil, fmt.Errorf("voyageai returned %d vectors for %d inputs", len(resp.Data), len(inputs))
	}
	out := make([][]float32, 0, len(resp.Data))
	for _, item := range resp.Data {
		out = append(out, item.Embedding)
	}
	return out, nil
}
