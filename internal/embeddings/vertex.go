package embeddings

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Vertex AI Text Embeddings API (REST). Requires OAuth2; the endpoint and a
// bearer token are supplied directly via env, the token doubles as the
// engine credential.

type vertexProvider struct {
	endpoint string // full URL to :predict
	token    string // OAuth2 access token (bearer)
	dims     int
	http     *http.Client
}

func newVertex(token string) (Provider, error) {
	endpoint := strings.TrimSpace(os.Getenv("VERTEX_EMBEDDINGS_ENDPOINT"))
	if token == "" {
		token = strings.TrimSpace(os.Getenv("VERTEX_ACCESS_TOKEN"))
	}
	if endpoint == "" || token == "" {
		return nil, fmt.Errorf("vertex provider requires VERTEX_EMBEDDINGS_ENDPOINT and an access token")
	}
	return &vertexProvider{endpoint: endpoint, token: token, dims: 768, http: &http.Client{Timeout: 15 * time.Second}}, nil
}

func (p *vertexProvider) Name() string    { return "vertexai" }
func (p *vertexProvider) Dimensions() int { return p.dims }

func (p *vertexProvider) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	if len(inputs) == 0 {
		return [][]float32{}, nil
	}
	// Batch support varies by model; call per input to stay portable.
	res := make([][]float32, 0, len(inputs))
	for _, in := range inputs {
		payload := map[string]any{
			"instances": []any{map[string]any{"content": in}},
		}
		b, _ := json.Marshal(payload)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+p.token)
		resp, err := p.http.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			var er struct {
				Error struct {
					Message string `json:"message"`
				} `json:"error"`
			}
			_ = json.NewDecoder(resp.Body).Decode(&er)
			resp.Body.Close()
			if er.Error.Message != "" {
				return nil, fmt.Errorf("vertex error: %s", er.Error.Message)
			}
			return nil, fmt.Errorf("vertex http status: %s", resp.Status)
		}
		var out struct {
			Predictions []struct {
				Embeddings struct {
					Values []float64 `json:"values"`
				} `json:"embeddings"`
			} `json:"predictions"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			resp.Body.Close()
			return nil, err
		}
		resp.Body.Close()
		if len(out.Predictions) == 0 {
			return nil, fmt.Errorf("vertex returned no predictions")
		}
		res = append(res, f64to32(out.Predictions[0].Embeddings.Values))
	}
	return res, nil
}
