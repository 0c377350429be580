package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mobile-order-be/internal/constant"
	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/repository/specification"
	"mobile-order-be/internal/repository/unitofwork"
	"mobile-order-be/pkg/catalog"
	"mobile-order-be/pkg/recommend/customization"
)

type IPresetService interface {
	Create(ctx context.Context, req *dto.CreatePresetRequest) (*dto.PresetResponse, error)
	List(ctx context.Context, userID string) (*dto.ListPresetsResponse, error)
	Delete(ctx context.Context, userID, presetID string) error
	Apply(ctx context.Context, req *dto.ApplyPresetRequest) (*dto.ApplyPresetResponse, error)
}

type presetService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPresetService(uowFactory unitofwork.RepositoryFactory) IPresetService {
	return &presetService{uowFactory: uowFactory}
}

func (s *presetService) Create(ctx context.Context, req *dto.CreatePresetRequest) (*dto.PresetResponse, error) {
	preset := entity.Preset{
		Id:           uuid.New(),
		UserId:       req.UserID,
		Name:         req.Name,
		Temperature:  catalog.Temperature(req.Temperature),
		CupSize:      catalog.CupSize(req.CupSize),
		SugarLevel:   catalog.SugarLevel(req.SugarLevel),
		MilkType:     catalog.MilkType(req.MilkType),
		ExtraShot:    req.ExtraShot,
		WhippedCream: req.WhippedCream,
		CreatedAt:    time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PresetRepository().Create(ctx, &preset); err != nil {
		return nil, err
	}

	resp := toPresetResponse(&preset)
	return &resp, nil
}

func (s *presetService) List(ctx context.Context, userID string) (*dto.ListPresetsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	presets, err := uow.PresetRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListPresetsResponse{Presets: []dto.PresetResponse{}}
	for _, p := range presets {
		resp.Presets = append(resp.Presets, toPresetResponse(p))
	}
	return resp, nil
}

func (s *presetService) Delete(ctx context.Context, userID, presetID string) error {
	preset, err := s.findOwned(ctx, presetID, userID)
	if err != nil {
		return err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PresetRepository().Delete(ctx, preset.Id)
}

// Apply projects a saved preset onto an item, falling back per dimension when
// the item cannot serve the preset value.
func (s *presetService) Apply(ctx context.Context, req *dto.ApplyPresetRequest) (*dto.ApplyPresetResponse, error) {
	preset, err := s.findOwned(ctx, req.PresetID, req.UserID)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	item, err := uow.MenuItemRepository().FindOne(ctx, specification.BySKU{SKU: req.SKU})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %s", constant.ErrNotFound, req.SKU)
	}

	result := customization.ApplyPreset(preset.ToCustomizationPreset(), item.ToCatalogItem())
	return &dto.ApplyPresetResponse{
		SKU:    req.SKU,
		Result: result,
	}, nil
}

func (s *presetService) findOwned(ctx context.Context, presetID, userID string) (*entity.Preset, error) {
	id, err := uuid.Parse(presetID)
	if err != nil {
		return nil, fmt.Errorf("%w: preset id %q is not a uuid", constant.ErrInvalidInput, presetID)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	preset, err := uow.PresetRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if preset == nil {
		return nil, fmt.Errorf("%w: preset %s", constant.ErrNotFound, presetID)
	}
	if preset.UserId != userID {
		return nil, fmt.Errorf("%w: preset belongs to another user", constant.ErrInvalidInput)
	}
	return preset, nil
}

func toPresetResponse(p *entity.Preset) dto.PresetResponse {
	return dto.PresetResponse{
		Id:           p.Id,
		Name:         p.Name,
		Temperature:  string(p.Temperature),
		CupSize:      string(p.CupSize),
		SugarLevel:   string(p.SugarLevel),
		MilkType:     string(p.MilkType),
		ExtraShot:    p.ExtraShot,
		WhippedCream: p.WhippedCream,
	}
}
