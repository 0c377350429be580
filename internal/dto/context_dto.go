package dto

import (
	"mobile-order-be/pkg/recommend/rules"
)

type ContextResponse struct {
	Context rules.Context `json:"context"`
}
