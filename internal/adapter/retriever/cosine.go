package retriever

import (
	"fmt"
	"math"
)

// CosineSimilarity computes the cosine of the angle between two
// embedding vectors. Reserved for semantic scoring over the chunk
// Embedding field; the live ranking path is lexical only.
//
// The vectors must have matching dimensionality; a mismatch is an
// error, not a zero score, so that inconsistent embedding sets are
// caught before any ranking over them.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
