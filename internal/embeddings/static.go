package embeddings

import (
	"context"
	"hash/fnv"
	"math"
)

const defaultStaticDims = 5

// staticProvider is a deterministic, network-free provider. Known inputs come
// from an optional fixture table; anything else gets a unit vector derived
// from an FNV hash of the text, so distinct keys still embed differently.
type staticProvider struct {
	dims  int
	table map[string][]float32
}

// NewStatic returns a deterministic provider with the given dimensionality.
// Entries in table override the hash-derived fallback and may be nil.
func NewStatic(dims int, table map[string][]float32) Provider {
	if dims <= 0 {
		dims = defaultStaticDims
	}
	return &staticProvider{dims: dims, table: table}
}

func (p *staticProvider) Name() string    { return "static" }
func (p *staticProvider) Dimensions() int { return p.dims }

func (p *staticProvider) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	out := make([][]float32, len(inputs))
	for i, in := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if v, ok := p.table[in]; ok {
			out[i] = adaptVector(v, p.dims, "pad_or_truncate")
			continue
		}
		out[i] = hashVector(in, p.dims)
	}
	return out, nil
}

// hashVector derives a unit vector from the text via FNV-seeded xorshift.
func hashVector(text string, dims int) []float32 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	state := h.Sum64()
	if state == 0 {
		state = 1
	}
	v := make([]float32, dims)
	var norm float64
	for i := range v {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		// Map to [-1, 1).
		v[i] = float32(int64(state)) / float32(math.MaxInt64)
		norm += float64(v[i]) * float64(v[i])
	}
	if norm == 0 {
		v[0] = 1
		return v
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range v {
		v[i] *= scale
	}
	return v
}
