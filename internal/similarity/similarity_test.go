package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"orthogonal unit vectors", []float32{1, 0, 0}, []float32{0, 1, 0}, 0},
		{"identical vectors", []float32{1, 0, 0}, []float32{1, 0, 0}, 1},
		{"opposite vectors", []float32{1, 0, 0}, []float32{-1, 0, 0}, -1},
		{"zero vector scores zero", []float32{0, 0, 0}, []float32{1, 2, 3}, 0},
		{"both zero score zero", []float32{0, 0}, []float32{0, 0}, 0},
		{"length mismatch scores zero", []float32{1, 0}, []float32{1, 0, 0}, 0},
		{"empty vectors score zero", []float32{}, []float32{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosineScaleInvariant(t *testing.T) {
	a := []float32{0.3, 0.4, 0.5}
	b := []float32{0.6, 0.8, 1.0}
	assert.InDelta(t, 1.0, Cosine(a, b), 1e-6)
}
