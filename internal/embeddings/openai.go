package embeddings

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI embeddings via the go-openai SDK.

type openAIProvider struct {
	client *openai.Client
	model  openai.EmbeddingModel
	dims   int
}

func newOpenAI(apiKey, model string) (Provider, error) {
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}
	if apiKey == "" {
		return nil, fmt.Errorf("openai provider requires an API key (flag/config or OPENAI_API_KEY)")
	}
	if model == "" {
		model = os.Getenv("OPENAI_EMBEDDINGS_MODEL")
	}
	if model == "" {
		model = "text-embedding-3-small"
	}
	dims := 1536
	if strings.Contains(model, "large") {
		dims = 3072
	}
	return &openAIProvider{
		client: openai.NewClient(apiKey),
		model:  openai.EmbeddingModel(model),
		dims:   dims,
	}, nil
}

func (p *openAIProvider) Name() string    { return "openai" }
func (p *openAIProvider) Dimensions() int { return p.dims }

func (p *openAIProvider) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	if len(inputs) == 0 {
		return [][]float32{}, nil
	}
	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: inputs,
		Model: p.model,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) != len(inputs) {
		return nil, fmt.Errorf("openai embeddings: got %d vectors for %d inputs", len(resp.Data), len(inputs))
	}
	// The API annotates each vector with its input index; order by it rather
	// than trusting response order.
	sort.Slice(resp.Data, func(i, j int) bool { return resp.Data[i].Index < resp.Data[j].Index })
	out := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		out[i] = d.Embedding
	}
	return out, nil
}
