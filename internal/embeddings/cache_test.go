package embeddings

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider wraps the static provider and counts Embed calls.
type countingProvider struct {
	Provider
	calls  atomic.Int64
	inputs atomic.Int64
}

func (p *countingProvider) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	p.calls.Add(1)
	p.inputs.Add(int64(len(inputs)))
	return p.Provider.Embed(ctx, inputs)
}

func TestCachingProviderHitsAndMisses(t *testing.T) {
	base := &countingProvider{Provider: NewStatic(4, nil)}
	// The `cache=shared` in-memory URL keeps one database across connections
	// within the process.
	cache, err := WrapWithCache(base, "file:testcache?mode=memory&cache=shared")
	require.NoError(t, err)
	defer func() { assert.NoError(t, cache.Close()) }()

	ctx := context.Background()

	first, err := cache.Embed(ctx, []string{"name", "age"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), base.calls.Load())
	assert.Equal(t, int64(2), base.inputs.Load())

	// Full hit: the base provider is not consulted again.
	second, err := cache.Embed(ctx, []string{"name", "age"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), base.calls.Load())
	assert.Equal(t, first, second)

	// Partial hit: only the new key reaches the base provider.
	third, err := cache.Embed(ctx, []string{"name", "city"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), base.calls.Load())
	assert.Equal(t, int64(3), base.inputs.Load())
	assert.Equal(t, first[0], third[0])
}

func TestCachingProviderPreservesIdentity(t *testing.T) {
	base := NewStatic(4, nil)
	cache, err := WrapWithCache(base, "file:testcache-id?mode=memory&cache=shared")
	require.NoError(t, err)
	defer cache.Close()

	assert.Equal(t, base.Name(), cache.Name())
	assert.Equal(t, base.Dimensions(), cache.Dimensions())
}

func TestVectorBlobRoundTrip(t *testing.T) {
	vec := []float32{0.25, -1.5, 3.75, 0}
	got, err := decodeVector(encodeVector(vec))
	require.NoError(t, err)
	assert.Equal(t, vec, got)

	_, err = decodeVector([]byte{1, 2, 3})
	assert.Error(t, err)
}
