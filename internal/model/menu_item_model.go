package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuItem struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SKU         string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(32);not null;index"`
	BasePrice   float64   `gorm:"not null"`
	Description string    `gorm:"type:text"`
	IsNew       bool      `gorm:"default:false"`
	IsSeasonal  bool      `gorm:"default:false"`
	Calories    int       `gorm:"default:0"`

	Temperatures datatypes.JSON `gorm:"type:jsonb"`
	Sizes        datatypes.JSON `gorm:"type:jsonb"`
	Tags         datatypes.JSON `gorm:"type:jsonb"`
	Constraints  datatypes.JSON `gorm:"type:jsonb"`

	// Embedding of "name. description. tags" text; 768 dimensions matches
	// nomic-embed-text and text-embedding-004 alike.
	Embedding *pgvector.Vector `gorm:"type:vector(768)"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
