package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mobile-order-be/internal/constant"
	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/repository/memory"
	"mobile-order-be/internal/repository/specification"
	"mobile-order-be/internal/repository/unitofwork"
	"mobile-order-be/pkg/recommend/session"
)

type ISessionService interface {
	Start(ctx context.Context, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error)
	Record(ctx context.Context, sessionID string, req *dto.SessionInteractionRequest) (*dto.SessionStateResponse, error)
	Get(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	Boost(ctx context.Context, sessionID, sku string) (*dto.SessionBoostResponse, error)
	// State returns the raw session, or nil when the id is unknown or empty.
	State(sessionID string) *session.State
}

type sessionService struct {
	sessions   *memory.SessionRepository
	uowFactory unitofwork.RepositoryFactory
}

func NewSessionService(sessions *memory.SessionRepository, uowFactory unitofwork.RepositoryFactory) ISessionService {
	return &sessionService{
		sessions:   sessions,
		uowFactory: uowFactory,
	}
}

func (s *sessionService) Start(ctx context.Context, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	state := session.NewState(uuid.NewString(), req.UserID, time.Now())
	s.sessions.Save(state)
	return &dto.StartSessionResponse{SessionID: state.ID}, nil
}

func (s *sessionService) Record(ctx context.Context, sessionID string, req *dto.SessionInteractionRequest) (*dto.SessionStateResponse, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, fmt.Errorf("%w: session %s", constant.ErrNotFound, sessionID)
	}
	if state.UserID != req.UserID {
		return nil, fmt.Errorf("%w: session belongs to another user", constant.ErrInvalidInput)
	}

	in := session.Interaction{
		Kind:      req.Type,
		SKU:       req.SKU,
		Category:  req.Category,
		Tags:      req.Tags,
		Price:     req.Price,
		Timestamp: time.Now(),
	}

	// Fill in catalog attributes when the client sends a bare SKU.
	if in.SKU != "" && (in.Category == "" || len(in.Tags) == 0 || in.Price == 0) {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		item, err := uow.MenuItemRepository().FindOne(ctx, specification.BySKU{SKU: in.SKU})
		if err != nil {
			return nil, err
		}
		if item != nil {
			if in.Category == "" {
				in.Category = string(item.Category)
			}
			if len(in.Tags) == 0 {
				in.Tags = item.Tags
			}
			if in.Price == 0 {
				in.Price = item.BasePrice
			}
		}
	}

	updated, found := s.sessions.Update(sessionID, func(st *session.State) {
		st.Record(in)
	})
	if !found {
		return nil, fmt.Errorf("%w: session %s", constant.ErrNotFound, sessionID)
	}
	return &dto.SessionStateResponse{State: updated}, nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, fmt.Errorf("%w: session %s", constant.ErrNotFound, sessionID)
	}
	return &dto.SessionStateResponse{State: state}, nil
}

func (s *sessionService) Boost(ctx context.Context, sessionID, sku string) (*dto.SessionBoostResponse, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, fmt.Errorf("%w: session %s", constant.ErrNotFound, sessionID)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	item, err := uow.MenuItemRepository().FindOne(ctx, specification.BySKU{SKU: sku})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %s", constant.ErrNotFound, sku)
	}

	boost := state.Boost(item.Tags, string(item.Category), item.BasePrice)
	return &dto.SessionBoostResponse{
		SessionID: sessionID,
		SKU:       sku,
		Boost:     boost,
	}, nil
}

func (s *sessionService) State(sessionID string) *session.State {
	if sessionID == "" {
		return nil
	}
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil
	}
	return state
}
