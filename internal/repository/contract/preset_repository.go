package contract

import (
	"context"

	"github.com/google/uuid"

	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/repository/specification"
)

type PresetRepository interface {
	Create(ctx context.Context, preset *entity.Preset) error
	Update(ctx context.Context, preset *entity.Preset) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Preset, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Preset, error)
}
