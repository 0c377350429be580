package contract

import (
	"context"

	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/repository/specification"
)

type BehaviorEventRepository interface {
	Create(ctx context.Context, event *entity.BehaviorEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BehaviorEvent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
