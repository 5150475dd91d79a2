package embeddings

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	huggingface "github.com/hupe1980/go-huggingface"
)

// HuggingFace Inference API feature extraction.
// Dimensions are model dependent and detected lazily on first use.

type huggingFaceProvider struct {
	client *huggingface.InferenceClient
	model  string

	once sync.Once
	dims int
}

func newHuggingFace(token, model string) (Provider, error) {
	if token == "" {
		token = strings.TrimSpace(os.Getenv("HUGGINGFACEHUB_API_TOKEN"))
	}
	if token == "" {
		token = strings.TrimSpace(os.Getenv("HF_TOKEN"))
	}
	if model == "" {
		model = os.Getenv("HUGGINGFACE_EMBEDDINGS_MODEL")
	}
	if model == "" {
		model = "sentence-transformers/all-MiniLM-L6-v2"
	}
	client := huggingface.NewInferenceClient(token)
	client.SetModel(model)
	return &huggingFaceProvider{client: client, model: model, dims: 384}, nil
}

func (p *huggingFaceProvider) Name() string    { return "huggingface" }
func (p *huggingFaceProvider) Dimensions() int { return p.dims }

func (p *huggingFaceProvider) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	if len(inputs) == 0 {
		return [][]float32{}, nil
	}
	req := &huggingface.FeatureExtractionRequest{
		Inputs: inputs,
		Options: huggingface.Options{
			WaitForModel: huggingface.PTR(true),
			UseCache:     huggingface.PTR(true),
		},
	}
	resp, err := p.client.FeatureExtractionWithAutomaticReduction(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("huggingface feature extraction (%s): %w", p.model, err)
	}
	if len(resp) != len(inputs) {
		return nil, fmt.Errorf("huggingface returned %d vectors for %d inputs", len(resp), len(inputs))
	}
	p.once.Do(func() {
		if len(resp) > 0 && len(resp[0]) > 0 {
			p.dims = len(resp[0])
		}
	})
	out := make([][]float32, len(resp))
	for i, v := range resp {
		out[i] = v
	}
	return out, nil
}
