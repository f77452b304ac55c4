package vector

import "math"

// Cosine returns the cosine similarity of a and b.
// Empty input, mismatched lengths and zero-magnitude vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		magA += x * x
		magB += y * y
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// Mean returns the per-dimension arithmetic mean. The dimension is taken from the
// first vector; shorter vectors contribute zero for the missing tail.
func Mean(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return []float32{}
	}

	dim := len(vectors[0])
	sum := make([]float64, dim)
	for _, vec := range vectors {
		for i := 0; i < dim && i < len(vec); i++ {
			sum[i] += float64(vec[i])
		}
	}

	n := float64(len(vectors))
	mean := make([]float32, dim)
	for i, v := range sum {
		mean[i] = float32(v / n)
	}
	return mean
}
