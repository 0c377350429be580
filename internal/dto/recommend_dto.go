package dto

import (
	"mobile-order-be/pkg/recommend/customization"
	"mobile-order-be/pkg/recommend/rules"
)

type RecommendRequest struct {
	UserID        string   `json:"user_id" validate:"required"`
	SessionID     string   `json:"session_id"`
	TopK          int      `json:"top_k" validate:"omitempty,min=1,max=50"`
	Query         string   `json:"query"`
	AvoidKeywords []string `json:"avoid_keywords"`
	PresetID      string   `json:"preset_id"`

	// Weather is optional; when absent the context carries only clock-derived
	// signals.
	Weather *rules.Weather `json:"weather,omitempty"`
}

type RecommendedItem struct {
	SKU         string                   `json:"sku"`
	Name        string                   `json:"name"`
	Category    string                   `json:"category"`
	BasePrice   float64                  `json:"base_price"`
	Score       float64                  `json:"score"`
	Explanation string                   `json:"explanation"`
	Factors     map[string]float64       `json:"factors"`
	Suggested   customization.Suggestion `json:"suggested_customization"`
}

type RecommendResponse struct {
	UserID       string            `json:"user_id"`
	ExperimentID string            `json:"experiment_id"`
	Variant      string            `json:"variant"`
	Context      rules.Context     `json:"context"`
	Items        []RecommendedItem `json:"items"`
	Fallback     bool              `json:"fallback"`
}
