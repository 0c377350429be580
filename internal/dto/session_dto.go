package dto

import (
	"mobile-order-be/pkg/recommend/session"
)

type StartSessionRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type StartSessionResponse struct {
	SessionID string `json:"session_id"`
}

type SessionInteractionRequest struct {
	UserID   string   `json:"user_id" validate:"required"`
	Type     string   `json:"type" validate:"required,oneof=like dislike view click"`
	SKU      string   `json:"sku"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Price    float64  `json:"price" validate:"omitempty,min=0"`
}

type SessionStateResponse struct {
	State *session.State `json:"state"`
}

type SessionBoostResponse struct {
	SessionID string  `json:"session_id"`
	SKU       string  `json:"sku"`
	Boost     float64 `json:"boost"`
}
