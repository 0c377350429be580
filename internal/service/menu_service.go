package service

import (
	"context"
	"fmt"
	"sort"

	"mobile-order-be/internal/constant"
	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/repository/specification"
	"mobile-order-be/internal/repository/unitofwork"
	"mobile-order-be/pkg/catalog"
)

type IMenuService interface {
	List(ctx context.Context, category, query string) (*dto.ListMenuResponse, error)
	Show(ctx context.Context, sku string) (*dto.MenuItemResponse, error)
	Similar(ctx context.Context, sku string, limit int) (*dto.SimilarItemsResponse, error)
	Quote(ctx context.Context, req *dto.PriceQuoteRequest) (*dto.PriceQuoteResponse, error)
	Options(ctx context.Context, sku string) (*dto.CustomizationOptionsResponse, error)
}

type menuService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMenuService(uowFactory unitofwork.RepositoryFactory) IMenuService {
	return &menuService{
		uowFactory: uowFactory,
	}
}

func (s *menuService) List(ctx context.Context, category, query string) (*dto.ListMenuResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}
	if query != "" {
		specs = append(specs, specification.MenuSearchQuery{Query: query})
	}
	specs = append(specs, specification.OrderBy{Field: "sku"})

	items, err := uow.MenuItemRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListMenuResponse{Total: len(items)}
	for _, item := range items {
		resp.Items = append(resp.Items, toMenuItemResponse(item))
	}
	return resp, nil
}

func (s *menuService) Show(ctx context.Context, sku string) (*dto.MenuItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.MenuItemRepository().FindOne(ctx, specification.BySKU{SKU: sku})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %s", constant.ErrNotFound, sku)
	}

	resp := toMenuItemResponse(item)
	return &resp, nil
}

// Similar ranks items by shared category and tags with the anchor item. This
// is the non-vector fallback; semantically similar items come from the
// recommendation path.
func (s *menuService) Similar(ctx context.Context, sku string, limit int) (*dto.SimilarItemsResponse, error) {
	if limit <= 0 {
		limit = 4
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	anchor, err := uow.MenuItemRepository().FindOne(ctx, specification.BySKU{SKU: sku})
	if err != nil {
		return nil, err
	}
	if anchor == nil {
		return nil, fmt.Errorf("%w: menu item %s", constant.ErrNotFound, sku)
	}

	all, err := uow.MenuItemRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	type scoredItem struct {
		item  *entity.MenuItem
		score int
	}
	anchorItem := anchor.ToCatalogItem()

	var candidates []scoredItem
	for _, it := range all {
		if it.SKU == sku {
			continue
		}
		score := 0
		if it.Category == anchor.Category {
			score += 2
		}
		for _, tag := range it.Tags {
			if anchorItem.HasTag(tag) {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scoredItem{item: it, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	resp := &dto.SimilarItemsResponse{SKU: sku}
	for _, c := range candidates {
		resp.Items = append(resp.Items, toMenuItemResponse(c.item))
	}
	return resp, nil
}

func (s *menuService) Quote(ctx context.Context, req *dto.PriceQuoteRequest) (*dto.PriceQuoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.MenuItemRepository().FindOne(ctx, specification.BySKU{SKU: req.SKU})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %s", constant.ErrNotFound, req.SKU)
	}

	adjustment := catalog.PriceAdjustment(req.Customization)
	return &dto.PriceQuoteResponse{
		SKU:             req.SKU,
		BasePrice:       item.BasePrice,
		PriceAdjustment: adjustment,
		FinalPrice:      item.BasePrice + adjustment,
	}, nil
}

// Options reports the customization dimensions an item accepts, so clients
// can render only the valid choices.
func (s *menuService) Options(ctx context.Context, sku string) (*dto.CustomizationOptionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.MenuItemRepository().FindOne(ctx, specification.BySKU{SKU: sku})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %s", constant.ErrNotFound, sku)
	}

	resp := &dto.CustomizationOptionsResponse{
		SKU:          item.SKU,
		Temperatures: item.Temperatures,
		Sizes:        item.Sizes,
	}
	if c := item.Constraints; c != nil {
		resp.MilkTypes = c.MilkTypes
		resp.SugarLevels = c.SugarLevels
		resp.SupportsExtraShot = c.SupportsExtraShot
		resp.SupportsWhippedCream = c.SupportsWhippedCream
		resp.DefaultTemperature = c.DefaultTemperature
		resp.DefaultSugarLevel = c.DefaultSugarLevel
		resp.DefaultMilkType = c.DefaultMilkType
	}
	return resp, nil
}

func toMenuItemResponse(item *entity.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		SKU:          item.SKU,
		Name:         item.Name,
		Category:     item.Category,
		BasePrice:    item.BasePrice,
		Description:  item.Description,
		IsNew:        item.IsNew,
		IsSeasonal:   item.IsSeasonal,
		Calories:     item.Calories,
		Temperatures: item.Temperatures,
		Sizes:        item.Sizes,
		Tags:         item.Tags,
		Constraints:  item.Constraints,
	}
}
