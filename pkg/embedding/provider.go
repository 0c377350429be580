package embedding

import (
	"context"
	"math"
	"net/http"
	"time"
)

// Provider generates text embeddings for menu item descriptions and search
// queries. Calls honor the context, so callers can bound a slow backend with
// a deadline instead of wedging the request.
type Provider interface {
	Generate(ctx context.Context, text string, taskType string) (*Result, error)
}

type Result struct {
	Values []float32 `json:"values"`
}

// httpClient caps every provider call so a hung embedding backend fails the
// call even without a caller deadline.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// normalizeVector scales a vector to unit length. Cosine distance in pgvector
// assumes normalized vectors, so every provider passes its output through
// here before returning.
func normalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
