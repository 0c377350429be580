package mapper

import (
	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/model"
)

type BehaviorEventMapper struct{}

func NewBehaviorEventMapper() *BehaviorEventMapper {
	return &BehaviorEventMapper{}
}

func (m *BehaviorEventMapper) ToEntity(ev *model.BehaviorEvent) *entity.BehaviorEvent {
	if ev == nil {
		return nil
	}

	e := &entity.BehaviorEvent{
		Id:        ev.Id,
		UserId:    ev.UserId,
		Action:    ev.Action,
		SKU:       ev.SKU,
		Category:  ev.Category,
		CreatedAt: ev.CreatedAt,
	}
	fromJSON(ev.Tags, &e.Tags)
	return e
}

func (m *BehaviorEventMapper) ToModel(e *entity.BehaviorEvent) *model.BehaviorEvent {
	if e == nil {
		return nil
	}

	return &model.BehaviorEvent{
		Id:        e.Id,
		UserId:    e.UserId,
		Action:    e.Action,
		SKU:       e.SKU,
		Category:  e.Category,
		Tags:      toJSON(e.Tags),
		CreatedAt: e.CreatedAt,
	}
}

func (m *BehaviorEventMapper) ToEntities(list []*model.BehaviorEvent) []*entity.BehaviorEvent {
	entities := make([]*entity.BehaviorEvent, len(list))
	for i, ev := range list {
		entities[i] = m.ToEntity(ev)
	}
	return entities
}
