package similarity

import "math"

// Cosine returns the cosine of the angle between a and b, in [-1, 1].
// Missing, mismatched or zero-norm vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(sim) || math.IsInf(sim, 0) {
		return 0.0
	}
	// float rounding can land just outside the range
	return math.Max(-1, math.Min(1, sim))
}

// Score maps a cosine to the stored percentage scale, 2 decimals.
func Score(sim float64) float64 {
	return math.Round(sim*100*100) / 100
}
