package mapper

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/model"
	"mobile-order-be/pkg/catalog"
)

type MenuItemMapper struct{}

func NewMenuItemMapper() *MenuItemMapper {
	return &MenuItemMapper{}
}

func (m *MenuItemMapper) ToEntity(item *model.MenuItem) *entity.MenuItem {
	if item == nil {
		return nil
	}

	var deletedAt *time.Time
	if item.DeletedAt.Valid {
		t := item.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !item.UpdatedAt.IsZero() {
		t := item.UpdatedAt
		updatedAt = &t
	}

	e := &entity.MenuItem{
		Id:          item.Id,
		SKU:         item.SKU,
		Name:        item.Name,
		Category:    catalog.Category(item.Category),
		BasePrice:   item.BasePrice,
		Description: item.Description,
		IsNew:       item.IsNew,
		IsSeasonal:  item.IsSeasonal,
		Calories:    item.Calories,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   item.DeletedAt.Valid,
	}

	fromJSON(item.Temperatures, &e.Temperatures)
	fromJSON(item.Sizes, &e.Sizes)
	fromJSON(item.Tags, &e.Tags)
	fromJSON(item.Constraints, &e.Constraints)

	if item.Embedding != nil {
		e.Embedding = item.Embedding.Slice()
	}

	return e
}

func (m *MenuItemMapper) ToModel(e *entity.MenuItem) *model.MenuItem {
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

	item := &model.MenuItem{
		Id:           e.Id,
		SKU:          e.SKU,
		Name:         e.Name,
		Category:     string(e.Category),
		BasePrice:    e.BasePrice,
		Description:  e.Description,
		IsNew:        e.IsNew,
		IsSeasonal:   e.IsSeasonal,
		Calories:     e.Calories,
		Temperatures: toJSON(e.Temperatures),
		Sizes:        toJSON(e.Sizes),
		Tags:         toJSON(e.Tags),
		Constraints:  toJSON(e.Constraints),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}

	if e.Embedding != nil {
		vec := pgvector.NewVector(e.Embedding)
		item.Embedding = &vec
	}

	return item
}

func (m *MenuItemMapper) ToEntities(items []*model.MenuItem) []*entity.MenuItem {
	entities := make([]*entity.MenuItem, len(items))
	for i, item := range items {
		entities[i] = m.ToEntity(item)
	}
	return entities
}

func (m *MenuItemMapper) ToModels(items []*entity.MenuItem) []*model.MenuItem {
	models := make([]*model.MenuItem, len(items))
	for i, item := range items {
		models[i] = m.ToModel(item)
	}
	return models
}
