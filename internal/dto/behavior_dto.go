package dto

import (
	"mobile-order-be/pkg/recommend/behavior"
)

type RecordEventRequest struct {
	UserID   string   `json:"user_id" validate:"required"`
	Action   string   `json:"action" validate:"required,oneof=view click"`
	SKU      string   `json:"sku" validate:"required"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

type RecordEventResponse struct {
	Recorded bool `json:"recorded"`
}

type ProfileResponse struct {
	Profile *behavior.Profile `json:"profile"`
	Cached  bool              `json:"cached"`
}

type ItemBoostResponse struct {
	SKU    string               `json:"sku"`
	Detail behavior.BoostDetail `json:"detail"`
}
