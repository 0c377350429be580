package mapper

import (
	"time"

	"gorm.io/gorm"

	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/model"
	"mobile-order-be/pkg/catalog"
)

type PresetMapper struct{}

func NewPresetMapper() *PresetMapper {
	return &PresetMapper{}
}

func (m *PresetMapper) ToEntity(p *model.Preset) *entity.Preset {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Preset{
		Id:           p.Id,
		UserId:       p.UserId,
		Name:         p.Name,
		Temperature:  catalog.Temperature(p.Temperature),
		CupSize:      catalog.CupSize(p.CupSize),
		SugarLevel:   catalog.SugarLevel(p.SugarLevel),
		MilkType:     catalog.MilkType(p.MilkType),
		ExtraShot:    p.ExtraShot,
		WhippedCream: p.WhippedCream,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    p.DeletedAt.Valid,
	}
}

func (m *PresetMapper) ToModel(e *entity.Preset) *model.Preset {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Preset{
		Id:           e.Id,
		UserId:       e.UserId,
		Name:         e.Name,
		Temperature:  string(e.Temperature),
		CupSize:      string(e.CupSize),
		SugarLevel:   string(e.SugarLevel),
		MilkType:     string(e.MilkType),
		ExtraShot:    e.ExtraShot,
		WhippedCream: e.WhippedCream,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *PresetMapper) ToEntities(list []*model.Preset) []*entity.Preset {
	entities := make([]*entity.Preset, len(list))
	for i, p := range list {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
