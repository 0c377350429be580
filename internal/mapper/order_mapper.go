package mapper

import (
	"time"

	"gorm.io/gorm"

	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}

	var deletedAt *time.Time
	if o.DeletedAt.Valid {
		t := o.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	items := make([]entity.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = m.itemToEntity(it)
	}

	return &entity.Order{
		Id:        o.Id,
		UserId:    o.UserId,
		Status:    o.Status,
		Total:     o.Total,
		Items:     items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: o.DeletedAt.Valid,
	}
}

func (m *OrderMapper) itemToEntity(it model.OrderItem) entity.OrderItem {
	e := entity.OrderItem{
		Id:        it.Id,
		OrderId:   it.OrderId,
		SKU:       it.SKU,
		Category:  it.Category,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
	}
	fromJSON(it.Tags, &e.Tags)
	fromJSON(it.Customization, &e.Customization)
	return e
}

func (m *OrderMapper) ToModel(e *entity.Order) *model.Order {
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

	items := make([]model.OrderItem, len(e.Items))
	for i, it := range e.Items {
		items[i] = model.OrderItem{
			Id:            it.Id,
			OrderId:       it.OrderId,
			SKU:           it.SKU,
			Category:      it.Category,
			Tags:          toJSON(it.Tags),
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			Customization: toJSON(it.Customization),
		}
	}

	return &model.Order{
		Id:        e.Id,
		UserId:    e.UserId,
		Status:    e.Status,
		Total:     e.Total,
		Items:     items,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *OrderMapper) ToEntities(orders []*model.Order) []*entity.Order {
	entities := make([]*entity.Order, len(orders))
	for i, o := range orders {
		entities[i] = m.ToEntity(o)
	}
	return entities
}

func (m *OrderMapper) ToModels(orders []*entity.Order) []*model.Order {
	models := make([]*model.Order, len(orders))
	for i, o := range orders {
		models[i] = m.ToModel(o)
	}
	return models
}
