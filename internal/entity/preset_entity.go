package entity

import (
	"time"

	"github.com/google/uuid"

	"mobile-order-be/pkg/catalog"
	"mobile-order-be/pkg/recommend/customization"
)

type Preset struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId       string
	Name         string
	Temperature  catalog.Temperature
	CupSize      catalog.CupSize
	SugarLevel   catalog.SugarLevel
	MilkType     catalog.MilkType
	ExtraShot    bool
	WhippedCream bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}

// ToCustomizationPreset projects the entity onto the pipeline's preset shape.
func (p *Preset) ToCustomizationPreset() *customization.Preset {
	if p == nil {
		return nil
	}
	return &customization.Preset{
		ID:           p.Id.String(),
		Name:         p.Name,
		Temperature:  p.Temperature,
		CupSize:      p.CupSize,
		SugarLevel:   p.SugarLevel,
		MilkType:     p.MilkType,
		ExtraShot:    p.ExtraShot,
		WhippedCream: p.WhippedCream,
	}
}
