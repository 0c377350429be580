package dto

import (
	"time"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	SKU           string            `json:"sku" validate:"required"`
	Quantity      int               `json:"quantity" validate:"omitempty,min=1,max=20"`
	Customization map[string]string `json:"customization"`
	ExtraShot     bool              `json:"extra_shot"`
	WhippedCream  bool              `json:"whipped_cream"`
}

type PlaceOrderRequest struct {
	UserID string             `json:"user_id" validate:"required"`
	Items  []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type PlaceOrderResponse struct {
	OrderID uuid.UUID `json:"order_id"`
	Total   float64   `json:"total"`
	Status  string    `json:"status"`
}

type OrderSummaryResponse struct {
	OrderID   uuid.UUID `json:"order_id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}

type ListOrdersResponse struct {
	Orders []OrderSummaryResponse `json:"orders"`
}
