package unitofwork

import (
	"context"

	"mobile-order-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	MenuItemRepository() contract.MenuItemRepository
	OrderRepository() contract.OrderRepository
	FeedbackRepository() contract.FeedbackRepository
	BehaviorEventRepository() contract.BehaviorEventRepository
	PresetRepository() contract.PresetRepository
}
