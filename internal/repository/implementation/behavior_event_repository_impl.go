package implementation

import (
	"context"

	"gorm.io/gorm"

	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/mapper"
	"mobile-order-be/internal/model"
	"mobile-order-be/internal/repository/contract"
	"mobile-order-be/internal/repository/specification"
)

type BehaviorEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BehaviorEventMapper
}

func NewBehaviorEventRepository(db *gorm.DB) contract.BehaviorEventRepository {
	return &BehaviorEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewBehaviorEventMapper(),
	}
}

func (r *BehaviorEventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BehaviorEventRepositoryImpl) Create(ctx context.Context, event *entity.BehaviorEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *BehaviorEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BehaviorEvent, error) {
	var models []*model.BehaviorEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BehaviorEventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.BehaviorEvent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
