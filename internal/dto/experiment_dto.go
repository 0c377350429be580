package dto

import (
	"mobile-order-be/pkg/recommend/experiment"
)

type AssignVariantRequest struct {
	ExperimentID string `json:"experiment_id" validate:"required"`
	UserID       string `json:"user_id" validate:"required"`
}

type AssignVariantResponse struct {
	Assignment experiment.Assignment `json:"assignment"`
}

type ExperimentListResponse struct {
	Experiments []experiment.Experiment `json:"experiments"`
}

type ExperimentStatsResponse struct {
	Stats experiment.Stats `json:"stats"`
}
