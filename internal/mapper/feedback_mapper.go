package mapper

import (
	"time"

	"gorm.io/gorm"

	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}

	var deletedAt *time.Time
	if f.DeletedAt.Valid {
		t := f.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.Feedback{
		Id:        f.Id,
		UserId:    f.UserId,
		SKU:       f.SKU,
		Action:    f.Action,
		Reason:    f.Reason,
		CreatedAt: f.CreatedAt,
		DeletedAt: deletedAt,
		IsDeleted: f.DeletedAt.Valid,
	}
}

func (m *FeedbackMapper) ToModel(e *entity.Feedback) *model.Feedback {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	return &model.Feedback{
		Id:        e.Id,
		UserId:    e.UserId,
		SKU:       e.SKU,
		Action:    e.Action,
		Reason:    e.Reason,
		CreatedAt: e.CreatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *FeedbackMapper) ToEntities(list []*model.Feedback) []*entity.Feedback {
	entities := make([]*entity.Feedback, len(list))
	for i, f := range list {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
