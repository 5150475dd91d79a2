// Package similarity provides the vector similarity scoring used to pair
// source and target keys.
package similarity

import "math"

// Cosine returns the cosine similarity between a and b, accumulating in
// float64 for stability. Vectors of different lengths and zero-norm vectors
// score 0 rather than producing NaN.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
