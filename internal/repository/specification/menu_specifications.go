package specification

import "gorm.io/gorm"

// BySKU filters menu items by SKU
type BySKU struct {
	SKU string
}

func (s BySKU) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sku = ?", s.SKU)
}

// BySKUs filters menu items by a list of SKUs
type BySKUs struct {
	SKUs []string
}

func (s BySKUs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sku IN ?", s.SKUs)
}

// ExcludeSKUs drops menu items the caller has already seen or disliked
type ExcludeSKUs struct {
	SKUs []string
}

func (s ExcludeSKUs) Apply(db *gorm.DB) *gorm.DB {
	if len(s.SKUs) == 0 {
		return db
	}
	return db.Where("sku NOT IN ?", s.SKUs)
}

// ByCategory filters menu items by category
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// MissingEmbedding selects items the embedding worker has not processed yet
type MissingEmbedding struct{}

func (s MissingEmbedding) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("embedding IS NULL")
}

// MenuSearchQuery matches name or description, case-insensitive
type MenuSearchQuery struct {
	Query string
}

func (s MenuSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
}
