package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPlaced    = "placed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    string
	Status    string
	Total     float64
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

type OrderItem struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderId       uuid.UUID `gorm:"type:uuid;index"`
	SKU           string
	Category      string
	Tags          []string
	Quantity      int
	UnitPrice     float64
	Customization map[string]string
}
