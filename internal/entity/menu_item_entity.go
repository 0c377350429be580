package entity

import (
	"time"

	"github.com/google/uuid"

	"mobile-order-be/pkg/catalog"
)

type MenuItem struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU         string
	Name        string
	Category    catalog.Category
	BasePrice   float64
	Description string
	IsNew       bool
	IsSeasonal  bool
	Calories    int

	Temperatures []catalog.Temperature
	Sizes        []catalog.CupSize
	Tags         []string
	Constraints  *catalog.Constraints

	// Embedding is the normalized vector of the item's descriptive text, nil
	// until the embedding worker has processed the item.
	Embedding []float32

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// ToCatalogItem projects the entity onto the scoring pipeline's item shape.
func (m *MenuItem) ToCatalogItem() *catalog.Item {
	if m == nil {
		return nil
	}
	return &catalog.Item{
		SKU:          m.SKU,
		Name:         m.Name,
		Category:     m.Category,
		BasePrice:    m.BasePrice,
		Description:  m.Description,
		IsNew:        m.IsNew,
		IsSeasonal:   m.IsSeasonal,
		Calories:     m.Calories,
		Temperatures: m.Temperatures,
		Sizes:        m.Sizes,
		Tags:         m.Tags,
		Constraints:  m.Constraints,
	}
}
