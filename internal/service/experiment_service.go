package service

import (
	"context"
	"fmt"

	"mobile-order-be/internal/constant"
	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/pkg/logger"
	"mobile-order-be/pkg/events"
	pktNats "mobile-order-be/pkg/nats"
	"mobile-order-be/pkg/recommend/experiment"
)

type IExperimentService interface {
	Assign(ctx context.Context, experimentID, userID string) (*dto.AssignVariantResponse, error)
	List(ctx context.Context) (*dto.ExperimentListResponse, error)
	Stats(ctx context.Context, experimentID string) (*dto.ExperimentStatsResponse, error)
	RecordExposure(ctx context.Context, experimentID, userID, variant string)
}

type experimentService struct {
	registry       *experiment.Registry
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewExperimentService(
	registry *experiment.Registry,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IExperimentService {
	return &experimentService{
		registry:       registry,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *experimentService) Assign(ctx context.Context, experimentID, userID string) (*dto.AssignVariantResponse, error) {
	if experimentID == "" || userID == "" {
		return nil, fmt.Errorf("%w: experiment id and user id are required", constant.ErrInvalidInput)
	}

	assignment := s.registry.AssignVariant(experimentID, userID)
	return &dto.AssignVariantResponse{Assignment: assignment}, nil
}

func (s *experimentService) List(ctx context.Context) (*dto.ExperimentListResponse, error) {
	return &dto.ExperimentListResponse{Experiments: s.registry.All()}, nil
}

func (s *experimentService) Stats(ctx context.Context, experimentID string) (*dto.ExperimentStatsResponse, error) {
	if _, ok := s.registry.Get(experimentID); !ok {
		return nil, fmt.Errorf("%w: experiment %s", constant.ErrNotFound, experimentID)
	}
	return &dto.ExperimentStatsResponse{Stats: s.registry.Stats(experimentID)}, nil
}

// RecordExposure counts the exposure locally and mirrors it onto the event
// bus. Bus failures are logged and swallowed; exposure accounting must never
// break a ranking request.
func (s *experimentService) RecordExposure(ctx context.Context, experimentID, userID, variant string) {
	s.registry.RecordExposure(experimentID, variant)

	if s.eventPublisher == nil {
		return
	}
	evt := events.NewExperimentExposure(experimentID, userID, variant)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("experiment", "failed to publish exposure event", map[string]interface{}{
			"experiment_id": experimentID,
			"variant":       variant,
			"error":         err.Error(),
		})
	}
}
