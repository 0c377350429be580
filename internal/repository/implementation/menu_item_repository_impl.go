package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/mapper"
	"mobile-order-be/internal/model"
	"mobile-order-be/internal/repository/contract"
	"mobile-order-be/internal/repository/specification"
)

type MenuItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MenuItemMapper
}

func NewMenuItemRepository(db *gorm.DB) contract.MenuItemRepository {
	return &MenuItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewMenuItemMapper(),
	}
}

func (r *MenuItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MenuItemRepositoryImpl) Create(ctx context.Context, item *entity.MenuItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *MenuItemRepositoryImpl) Update(ctx context.Context, item *entity.MenuItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *MenuItemRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MenuItem{}, id).Error
}

func (r *MenuItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MenuItem, error) {
	var m model.MenuItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MenuItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuItem, error) {
	var models []*model.MenuItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MenuItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MenuItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MenuItemRepositoryImpl) UpdateEmbedding(ctx context.Context, sku string, embedding []float32) error {
	vec := pgvector.NewVector(embedding)
	return r.db.WithContext(ctx).
		Model(&model.MenuItem{}).
		Where("sku = ?", sku).
		Update("embedding", vec).Error
}

func (r *MenuItemRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, excludeSKUs []string) ([]*contract.ScoredMenuItem, error) {
	if limit <= 0 {
		limit = 20
	}

	queryVector := pgvector.NewVector(embedding)

	type menuItemWithScore struct {
		model.MenuItem
		Similarity float64 `gorm:"column:similarity"`
	}

	// Cosine distance in pgvector is 1 - cosine_similarity, so the select
	// inverts it back into a similarity.
	query := r.db.WithContext(ctx).
		Table("menu_items").
		Select("menu_items.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("embedding IS NOT NULL").
		Where("deleted_at IS NULL")

	if len(excludeSKUs) > 0 {
		query = query.Where("sku NOT IN ?", excludeSKUs)
	}

	var results []menuItemWithScore
	err := query.
		Order(gorm.Expr("embedding <=> ?", queryVector)).
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredMenuItem, len(results))
	for i := range results {
		scored[i] = &contract.ScoredMenuItem{
			Item:       r.mapper.ToEntity(&results[i].MenuItem),
			Similarity: results[i].Similarity,
		}
	}
	return scored, nil
}
