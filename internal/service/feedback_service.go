package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mobile-order-be/internal/constant"
	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/pkg/logger"
	"mobile-order-be/internal/repository/specification"
	"mobile-order-be/internal/repository/unitofwork"
	"mobile-order-be/pkg/events"
	pktNats "mobile-order-be/pkg/nats"
)

type IFeedbackService interface {
	Record(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
	List(ctx context.Context, userID string) (*dto.FeedbackListResponse, error)
	ItemStats(ctx context.Context, sku string) (*dto.FeedbackStatsResponse, error)
}

type feedbackService struct {
	uowFactory     unitofwork.RepositoryFactory
	behaviors      IBehaviorService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewFeedbackService(
	uowFactory unitofwork.RepositoryFactory,
	behaviors IBehaviorService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IFeedbackService {
	return &feedbackService{
		uowFactory:     uowFactory,
		behaviors:      behaviors,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *feedbackService) Record(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.MenuItemRepository().FindOne(ctx, specification.BySKU{SKU: req.SKU})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %s", constant.ErrNotFound, req.SKU)
	}

	feedback := entity.Feedback{
		Id:        uuid.New(),
		UserId:    req.UserID,
		SKU:       req.SKU,
		Action:    req.Action,
		Reason:    req.Reason,
		CreatedAt: time.Now(),
	}
	if err := uow.FeedbackRepository().Create(ctx, &feedback); err != nil {
		return nil, err
	}

	// Feedback changes the avoid list and the profile, so drop the cache.
	s.behaviors.Invalidate(ctx, req.UserID)

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewFeedbackRecorded(req.UserID, req.SKU, req.Action)); err != nil {
			s.logger.Warn("feedback", "failed to publish feedback event", map[string]interface{}{
				"user_id": req.UserID,
				"sku":     req.SKU,
				"error":   err.Error(),
			})
		}
	}

	return &dto.FeedbackResponse{Id: feedback.Id}, nil
}

func (s *feedbackService) List(ctx context.Context, userID string) (*dto.FeedbackListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	all, err := uow.FeedbackRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	// The most recent action per SKU wins; older entries for the same item
	// are superseded.
	seen := make(map[string]bool)
	resp := &dto.FeedbackListResponse{
		Likes:    []string{},
		Dislikes: []string{},
	}
	for _, f := range all {
		if seen[f.SKU] {
			continue
		}
		seen[f.SKU] = true
		switch f.Action {
		case entity.FeedbackLike:
			resp.Likes = append(resp.Likes, f.SKU)
		case entity.FeedbackDislike:
			resp.Dislikes = append(resp.Dislikes, f.SKU)
		}
	}
	return resp, nil
}

func (s *feedbackService) ItemStats(ctx context.Context, sku string) (*dto.FeedbackStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.MenuItemRepository().FindOne(ctx, specification.BySKU{SKU: sku})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %s not found", constant.ErrNotFound, sku)
	}

	likes, err := uow.FeedbackRepository().Count(ctx,
		specification.Filter("sku", sku),
		specification.Filter("action", entity.FeedbackLike),
	)
	if err != nil {
		return nil, err
	}
	dislikes, err := uow.FeedbackRepository().Count(ctx,
		specification.Filter("sku", sku),
		specification.Filter("action", entity.FeedbackDislike),
	)
	if err != nil {
		return nil, err
	}

	return &dto.FeedbackStatsResponse{
		SKU:      sku,
		Likes:    likes,
		Dislikes: dislikes,
	}, nil
}
