package embedding

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOllamaGenerateNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embeddings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"embedding": [3, 4]}`))
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "nomic-embed-text")
	res, err := p.Generate(context.Background(), "iced latte", "RETRIEVAL_QUERY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Values) != 2 {
		t.Fatalf("expected 2 components, got %d", len(res.Values))
	}
	if math.Abs(float64(res.Values[0])-0.6) > 1e-6 || math.Abs(float64(res.Values[1])-0.8) > 1e-6 {
		t.Fatalf("unexpected vector: %v", res.Values)
	}
}

func TestOllamaGenerateHonorsContextDeadline(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	p := NewOllamaProvider(srv.URL, "nomic-embed-text")
	_, err := p.Generate(ctx, "iced latte", "RETRIEVAL_QUERY")
	if err == nil {
		t.Fatal("expected error from expired context")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}
