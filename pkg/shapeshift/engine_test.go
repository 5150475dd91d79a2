package shapeshift

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineShapeshift(t *testing.T) {
	engine, err := NewEngine(&Config{Provider: "static", Threshold: 0.99})
	require.NoError(t, err)
	defer engine.Close()

	// The static provider embeds identical keys identically, so exact key
	// matches always clear any threshold up to 1.
	source := map[string]any{"name": "John Doe", "age": 30.0}
	target := map[string]any{"name": ""}

	result, err := engine.Shapeshift(context.Background(), source, target)
	require.NoError(t, err)

	got := result.Result.(map[string]any)
	assert.Equal(t, "John Doe", got["name"])
	assert.Equal(t, []string{"age", "name"}, result.DebugInfo.SourceKeys)
	assert.Equal(t, []string{"name"}, result.DebugInfo.TargetKeys)
}
