package embedding

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var errEmptyVector = errors.New("empty vector")

// Encode serializes a vector as a JSON array of floats.
func Encode(vec []float32) (string, error) {
	if len(vec) == 0 {
		return "", errEmptyVector
	}
	for i, v := range vec {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return "", fmt.Errorf("non-finite value at %d", i)
		}
	}
	b, err := json.Marshal(vec)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses a stored embedding; malformed or empty input is an error.
func Decode(s string) ([]float32, error) {
	var vec []float32
	if err := json.Unmarshal([]byte(s), &vec); err != nil {
		return nil, fmt.Errorf("decode embedding: %w", err)
	}
	if len(vec) == 0 {
		return nil, errEmptyVector
	}
	return vec, nil
}
