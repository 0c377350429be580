package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/mapper"
	"mobile-order-be/internal/model"
	"mobile-order-be/internal/repository/contract"
	"mobile-order-be/internal/repository/specification"
)

type PresetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PresetMapper
}

func NewPresetRepository(db *gorm.DB) contract.PresetRepository {
	return &PresetRepositoryImpl{
		db:     db,
		mapper: mapper.NewPresetMapper(),
	}
}

func (r *PresetRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PresetRepositoryImpl) Create(ctx context.Context, preset *entity.Preset) error {
	m := r.mapper.ToModel(preset)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*preset = *r.mapper.ToEntity(m)
	return nil
}

func (r *PresetRepositoryImpl) Update(ctx context.Context, preset *entity.Preset) error {
	m := r.mapper.ToModel(preset)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*preset = *r.mapper.ToEntity(m)
	return nil
}

func (r *PresetRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Preset{}, id).Error
}

func (r *PresetRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Preset, error) {
	var m model.Preset
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PresetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Preset, error) {
	var models []*model.Preset
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
