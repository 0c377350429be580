package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mobile-order-be/internal/constant"
	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/pkg/logger"
	"mobile-order-be/internal/repository/rediscache"
	"mobile-order-be/internal/repository/specification"
	"mobile-order-be/internal/repository/unitofwork"
	"mobile-order-be/pkg/recommend/behavior"
)

// historyWindow bounds how far back a profile rebuild looks. Decay makes
// older events weigh under 4% anyway.
const historyWindow = 90 * 24 * time.Hour

type IBehaviorService interface {
	RecordEvent(ctx context.Context, req *dto.RecordEventRequest) (*dto.RecordEventResponse, error)
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	ItemBoost(ctx context.Context, userID, sku string) (*dto.ItemBoostResponse, error)
	Invalidate(ctx context.Context, userID string)
}

type behaviorService struct {
	uowFactory   unitofwork.RepositoryFactory
	analyzer     *behavior.Analyzer
	profileCache *rediscache.ProfileCache
	logger       logger.ILogger
}

func NewBehaviorService(
	uowFactory unitofwork.RepositoryFactory,
	analyzer *behavior.Analyzer,
	profileCache *rediscache.ProfileCache,
	log logger.ILogger,
) IBehaviorService {
	return &behaviorService{
		uowFactory:   uowFactory,
		analyzer:     analyzer,
		profileCache: profileCache,
		logger:       log,
	}
}

func (s *behaviorService) RecordEvent(ctx context.Context, req *dto.RecordEventRequest) (*dto.RecordEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	event := entity.BehaviorEvent{
		Id:        uuid.New(),
		UserId:    req.UserID,
		Action:    req.Action,
		SKU:       req.SKU,
		Category:  req.Category,
		Tags:      req.Tags,
		CreatedAt: time.Now(),
	}

	// Backfill category and tags from the catalog when the client sends only
	// the SKU.
	if event.Category == "" || len(event.Tags) == 0 {
		item, err := uow.MenuItemRepository().FindOne(ctx, specification.BySKU{SKU: req.SKU})
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("%w: menu item %s", constant.ErrNotFound, req.SKU)
		}
		if event.Category == "" {
			event.Category = string(item.Category)
		}
		if len(event.Tags) == 0 {
			event.Tags = item.Tags
		}
	}

	if err := uow.BehaviorEventRepository().Create(ctx, &event); err != nil {
		return nil, err
	}

	s.Invalidate(ctx, req.UserID)
	return &dto.RecordEventResponse{Recorded: true}, nil
}

// GetProfile reads through the cache. A cache outage degrades to a rebuild
// from the database rather than failing the request.
func (s *behaviorService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	if s.profileCache != nil {
		cached, err := s.profileCache.Get(ctx, userID)
		if err != nil && errors.Is(err, constant.ErrCollaboratorUnavailable) {
			s.logger.Warn("behavior", "profile cache unavailable, rebuilding", map[string]interface{}{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		if cached != nil {
			return &dto.ProfileResponse{Profile: cached, Cached: true}, nil
		}
	}

	profile, err := s.buildProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.profileCache != nil {
		if err := s.profileCache.Set(ctx, profile); err != nil {
			s.logger.Warn("behavior", "failed to cache profile", map[string]interface{}{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}

	return &dto.ProfileResponse{Profile: profile}, nil
}

func (s *behaviorService) buildProfile(ctx context.Context, userID string) (*behavior.Profile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()
	since := now.Add(-historyWindow)

	orders, err := uow.OrderRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.Since{Time: since},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	behaviorEvents, err := uow.BehaviorEventRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.Since{Time: since},
	)
	if err != nil {
		return nil, err
	}

	var orderEvents []behavior.OrderEvent
	for _, o := range orders {
		if o.Status == entity.OrderStatusCancelled {
			continue
		}
		for _, it := range o.Items {
			orderEvents = append(orderEvents, behavior.OrderEvent{
				SKU:           it.SKU,
				Category:      it.Category,
				Tags:          it.Tags,
				Price:         it.UnitPrice,
				Customization: it.Customization,
				Timestamp:     o.CreatedAt,
			})
		}
	}

	var clickEvents []behavior.ClickEvent
	for _, ev := range behaviorEvents {
		clickEvents = append(clickEvents, behavior.ClickEvent{
			Action:    ev.Action,
			Category:  ev.Category,
			Tags:      ev.Tags,
			Timestamp: ev.CreatedAt,
		})
	}

	return s.analyzer.BuildProfile(userID, orderEvents, clickEvents, now), nil
}

func (s *behaviorService) ItemBoost(ctx context.Context, userID, sku string) (*dto.ItemBoostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.MenuItemRepository().FindOne(ctx, specification.BySKU{SKU: sku})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %s", constant.ErrNotFound, sku)
	}

	profileResp, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	detail := s.analyzer.OrderBoost(profileResp.Profile, item.SKU, string(item.Category), item.Tags, item.BasePrice)
	return &dto.ItemBoostResponse{SKU: sku, Detail: detail}, nil
}

func (s *behaviorService) Invalidate(ctx context.Context, userID string) {
	if s.profileCache == nil {
		return
	}
	if err := s.profileCache.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("behavior", "failed to invalidate profile cache", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
