package contract

import (
	"context"

	"github.com/google/uuid"

	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/repository/specification"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
