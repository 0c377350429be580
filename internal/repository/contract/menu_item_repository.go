package contract

import (
	"context"

	"github.com/google/uuid"

	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/repository/specification"
)

// ScoredMenuItem pairs a menu item with its cosine similarity to a query
// vector.
type ScoredMenuItem struct {
	Item       *entity.MenuItem
	Similarity float64
}

type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MenuItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateEmbedding writes just the vector column for one SKU.
	UpdateEmbedding(ctx context.Context, sku string, embedding []float32) error

	// SearchSimilar returns the items nearest to the query vector by cosine
	// distance, skipping items without an embedding.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, excludeSKUs []string) ([]*ScoredMenuItem, error)
}
