package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Order struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    string         `gorm:"type:varchar(64);not null;index"`
	Status    string         `gorm:"type:varchar(16);not null"`
	Total     float64        `gorm:"not null"`
	Items     []OrderItem    `gorm:"foreignKey:OrderId"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	SKU           string         `gorm:"type:varchar(32);not null;index"`
	Category      string         `gorm:"type:varchar(32);not null"`
	Tags          datatypes.JSON `gorm:"type:jsonb"`
	Quantity      int            `gorm:"not null;default:1"`
	UnitPrice     float64        `gorm:"not null"`
	Customization datatypes.JSON `gorm:"type:jsonb"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
