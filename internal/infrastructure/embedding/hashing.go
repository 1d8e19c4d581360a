package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

const DefaultDim = 384

// labels and filler words carry no signal and would make every item look alike
var stopwords = map[string]struct{}{
	"name": {}, "description": {}, "location": {}, "date": {},
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "of": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "with": {}, "my": {}, "is": {}, "it": {},
	"was": {}, "near": {}, "for": {},
}

// HashingBackend is a deterministic local embedder: word and character
// trigram features hashed into Dim signed buckets, L2 normalised.
type HashingBackend struct {
	Dim int
}

func HashingLoader(dim int) Loader {
	return func(context.Context) (Backend, error) {
		if dim <= 0 {
			dim = DefaultDim
		}
		return HashingBackend{Dim: dim}, nil
	}
}

func (h HashingBackend) Embed(_ context.Context, text string) ([]float32, error) {
	dim := h.Dim
	if dim <= 0 {
		dim = DefaultDim
	}
	vec := make([]float64, dim)
	for _, tok := range tokenize(text) {
		addFeature(vec, "w:"+tok, 1.0)
		runes := []rune("#" + tok + "#")
		for i := 0; i+3 <= len(runes); i++ {
			addFeature(vec, "c:"+string(runes[i:i+3]), 0.5)
		}
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	out := make([]float32, dim)
	if norm == 0 {
		return out, nil
	}
	norm = math.Sqrt(norm)
	for i, v := range vec {
		out[i] = float32(v / norm)
	}
	return out, nil
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if _, skip := stopwords[f]; skip {
			continue
		}
		out = append(out, f)
	}
	return out
}

func addFeature(vec []float64, feature string, w float64) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(feature))
	sum := h.Sum64()
	idx := sum % uint64(len(vec))
	if sum>>63 == 1 {
		w = -w
	}
	vec[idx] += w
}
