package embeddings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderDeterministic(t *testing.T) {
	p := NewStatic(8, nil)
	ctx := context.Background()

	first, err := p.Embed(ctx, []string{"full_name", "age"})
	require.NoError(t, err)
	second, err := p.Embed(ctx, []string{"full_name", "age"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
	assert.Len(t, first[0], 8)
	assert.NotEqual(t, first[0], first[1])
}

func TestStaticProviderTableOverride(t *testing.T) {
	p := NewStatic(3, map[string][]float32{"name": {1, 0, 0}})

	vecs, err := p.Embed(context.Background(), []string{"name", "other"})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0}, vecs[0])
	assert.Len(t, vecs[1], 3)
}

func TestStaticProviderPadsTableEntries(t *testing.T) {
	p := NewStatic(5, map[string][]float32{"short": {1, 0}})

	vecs, err := p.Embed(context.Background(), []string{"short"})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0, 0, 0}, vecs[0])
}

func TestWrapToDims(t *testing.T) {
	base := NewStatic(4, map[string][]float32{"k": {1, 2, 3, 4}})

	padded := WrapToDims(base, 6, "")
	assert.Equal(t, 6, padded.Dimensions())
	vecs, err := padded.Embed(context.Background(), []string{"k"})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4, 0, 0}, vecs[0])

	truncated := WrapToDims(base, 2, "")
	vecs, err = truncated.Embed(context.Background(), []string{"k"})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, vecs[0])

	same := WrapToDims(base, 4, "")
	assert.Same(t, base, same)
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New("carrier-pigeon", "", "")
	assert.Error(t, err)
}

func TestNewDefaultsToStatic(t *testing.T) {
	p, err := New("", "", "")
	require.NoError(t, err)
	assert.Equal(t, "static", p.Name())
}
