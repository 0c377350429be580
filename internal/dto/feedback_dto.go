package dto

import "github.com/google/uuid"

type FeedbackRequest struct {
	UserID string `json:"user_id" validate:"required"`
	SKU    string `json:"sku" validate:"required"`
	Action string `json:"action" validate:"required,oneof=like dislike"`
	Reason string `json:"reason"`
}

type FeedbackResponse struct {
	Id uuid.UUID `json:"id"`
}

type FeedbackListResponse struct {
	Likes    []string `json:"likes"`
	Dislikes []string `json:"dislikes"`
}

type FeedbackStatsResponse struct {
	SKU      string `json:"sku"`
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
}
