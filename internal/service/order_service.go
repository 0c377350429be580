package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mobile-order-be/internal/constant"
	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/pkg/logger"
	"mobile-order-be/internal/repository/specification"
	"mobile-order-be/internal/repository/unitofwork"
	"mobile-order-be/pkg/catalog"
	"mobile-order-be/pkg/events"
	pktNats "mobile-order-be/pkg/nats"
	"mobile-order-be/pkg/recommend/customization"
)

type IOrderService interface {
	Place(ctx context.Context, req *dto.PlaceOrderRequest) (*dto.PlaceOrderResponse, error)
	ListByUser(ctx context.Context, userID string) (*dto.ListOrdersResponse, error)
}

// orderPlacedPayload is the message body on the in-process order topic. The
// consumer only needs the user id to invalidate the profile cache.
type orderPlacedPayload struct {
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
}

type orderService struct {
	uowFactory     unitofwork.RepositoryFactory
	publisher      IPublisherService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewOrderService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IOrderService {
	return &orderService{
		uowFactory:     uowFactory,
		publisher:      publisher,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *orderService) Place(ctx context.Context, req *dto.PlaceOrderRequest) (*dto.PlaceOrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	skus := make([]string, 0, len(req.Items))
	for _, it := range req.Items {
		skus = append(skus, it.SKU)
	}

	menuItems, err := uow.MenuItemRepository().FindAll(ctx, specification.BySKUs{SKUs: skus})
	if err != nil {
		return nil, err
	}
	bySKU := make(map[string]*entity.MenuItem, len(menuItems))
	for _, mi := range menuItems {
		bySKU[mi.SKU] = mi
	}

	now := time.Now()
	order := entity.Order{
		Id:        uuid.New(),
		UserId:    req.UserID,
		Status:    entity.OrderStatusPlaced,
		CreatedAt: now,
	}

	for _, line := range req.Items {
		menuItem, ok := bySKU[line.SKU]
		if !ok {
			return nil, fmt.Errorf("%w: unknown menu item %s", constant.ErrInvalidInput, line.SKU)
		}
		if menuItem.BasePrice <= 0 {
			return nil, fmt.Errorf("%w: menu item %s has no price", constant.ErrDataInconsistency, line.SKU)
		}

		cust, err := buildCustomization(menuItem, line)
		if err != nil {
			return nil, err
		}

		qty := line.Quantity
		if qty == 0 {
			qty = 1
		}
		unitPrice := catalog.FinalPrice(menuItem.BasePrice, cust)

		order.Items = append(order.Items, entity.OrderItem{
			Id:            uuid.New(),
			OrderId:       order.Id,
			SKU:           menuItem.SKU,
			Category:      string(menuItem.Category),
			Tags:          menuItem.Tags,
			Quantity:      qty,
			UnitPrice:     unitPrice,
			Customization: customizationMap(cust),
		})
		order.Total += unitPrice * float64(qty)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	if err := uow.OrderRepository().Create(ctx, &order); err != nil {
		if rbErr := uow.Rollback(); rbErr != nil {
			s.logger.Error("order", "rollback failed", map[string]interface{}{"error": rbErr.Error()})
		}
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishOrderPlaced(ctx, &order, skus)

	return &dto.PlaceOrderResponse{
		OrderID: order.Id,
		Total:   order.Total,
		Status:  order.Status,
	}, nil
}

func (s *orderService) publishOrderPlaced(ctx context.Context, order *entity.Order, skus []string) {
	payload, err := json.Marshal(orderPlacedPayload{
		OrderID: order.Id.String(),
		UserID:  order.UserId,
	})
	if err == nil {
		if err := s.publisher.Publish(ctx, payload); err != nil {
			s.logger.Warn("order", "failed to publish order message", map[string]interface{}{
				"order_id": order.Id.String(),
				"error":    err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		event := events.NewOrderPlaced(order.Id.String(), order.UserId, skus, order.Total)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("order", "failed to publish order event", map[string]interface{}{
				"order_id": order.Id.String(),
				"error":    err.Error(),
			})
		}
	}
}

func (s *orderService) ListByUser(ctx context.Context, userID string) (*dto.ListOrdersResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	orders, err := uow.OrderRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListOrdersResponse{Orders: []dto.OrderSummaryResponse{}}
	for _, o := range orders {
		count := 0
		for _, it := range o.Items {
			count += it.Quantity
		}
		resp.Orders = append(resp.Orders, dto.OrderSummaryResponse{
			OrderID:   o.Id,
			Status:    o.Status,
			Total:     o.Total,
			ItemCount: count,
			CreatedAt: o.CreatedAt,
		})
	}
	return resp, nil
}

// buildCustomization resolves a raw customization map against the item's
// constraints. Synonyms are accepted; values the item cannot serve are not.
func buildCustomization(item *entity.MenuItem, line dto.OrderItemRequest) (catalog.Customization, error) {
	var cust catalog.Customization

	if raw, ok := line.Customization[customization.DimTemperature]; ok && raw != "" {
		temp := catalog.Temperature(customization.Canonical(customization.DimTemperature, raw))
		if !supportsTemperature(item.Temperatures, temp) {
			return cust, fmt.Errorf("%w: %s does not support temperature %s", constant.ErrInvalidInput, item.SKU, temp)
		}
		cust.Temperature = temp
	}

	if raw, ok := line.Customization[customization.DimCupSize]; ok && raw != "" {
		size := catalog.CupSize(customization.Canonical(customization.DimCupSize, raw))
		if !supportsSize(item.Sizes, size) {
			return cust, fmt.Errorf("%w: %s does not support size %s", constant.ErrInvalidInput, item.SKU, size)
		}
		cust.CupSize = size
	}

	if raw, ok := line.Customization[customization.DimMilkType]; ok && raw != "" {
		milk := catalog.MilkType(customization.Canonical(customization.DimMilkType, raw))
		if item.Constraints != nil && len(item.Constraints.MilkTypes) > 0 && !supportsMilk(item.Constraints.MilkTypes, milk) {
			return cust, fmt.Errorf("%w: %s does not support milk %s", constant.ErrInvalidInput, item.SKU, milk)
		}
		cust.MilkType = milk
	}

	if raw, ok := line.Customization[customization.DimSugarLevel]; ok && raw != "" {
		sugar := catalog.SugarLevel(customization.Canonical(customization.DimSugarLevel, raw))
		if item.Constraints != nil && len(item.Constraints.SugarLevels) > 0 && !supportsSugar(item.Constraints.SugarLevels, sugar) {
			return cust, fmt.Errorf("%w: %s does not support sugar level %s", constant.ErrInvalidInput, item.SKU, sugar)
		}
		cust.SugarLevel = sugar
	}

	if line.ExtraShot {
		if item.Constraints == nil || !item.Constraints.SupportsExtraShot {
			return cust, fmt.Errorf("%w: %s does not support an extra shot", constant.ErrInvalidInput, item.SKU)
		}
		cust.ExtraShot = true
	}
	if line.WhippedCream {
		if item.Constraints == nil || !item.Constraints.SupportsWhippedCream {
			return cust, fmt.Errorf("%w: %s does not support whipped cream", constant.ErrInvalidInput, item.SKU)
		}
		cust.WhippedCream = true
	}

	return cust, nil
}

func customizationMap(c catalog.Customization) map[string]string {
	m := make(map[string]string)
	if c.Temperature != "" {
		m[customization.DimTemperature] = string(c.Temperature)
	}
	if c.CupSize != "" {
		m[customization.DimCupSize] = string(c.CupSize)
	}
	if c.MilkType != "" {
		m[customization.DimMilkType] = string(c.MilkType)
	}
	if c.SugarLevel != "" {
		m[customization.DimSugarLevel] = string(c.SugarLevel)
	}
	if c.ExtraShot {
		m[customization.DimExtraShot] = "true"
	}
	if c.WhippedCream {
		m[customization.DimWhipped] = "true"
	}
	return m
}

func supportsTemperature(have []catalog.Temperature, t catalog.Temperature) bool {
	for _, v := range have {
		if v == t {
			return true
		}
	}
	return false
}

func supportsSize(have []catalog.CupSize, s catalog.CupSize) bool {
	for _, v := range have {
		if v == s {
			return true
		}
	}
	return false
}

func supportsMilk(have []catalog.MilkType, m catalog.MilkType) bool {
	for _, v := range have {
		if v == m {
			return true
		}
	}
	return false
}

func supportsSugar(have []catalog.SugarLevel, s catalog.SugarLevel) bool {
	for _, v := range have {
		if v == s {
			return true
		}
	}
	return false
}
