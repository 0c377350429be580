package dto

import (
	"github.com/google/uuid"

	"mobile-order-be/pkg/recommend/customization"
)

type CreatePresetRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	Name         string `json:"name" validate:"required,max=64"`
	Temperature  string `json:"temperature" validate:"omitempty,oneof=HOT ICED"`
	CupSize      string `json:"cup_size" validate:"omitempty,oneof=TALL GRANDE VENTI"`
	SugarLevel   string `json:"sugar_level" validate:"omitempty,oneof=NONE LIGHT HALF STANDARD EXTRA"`
	MilkType     string `json:"milk_type" validate:"omitempty,oneof=WHOLE SKIM OAT ALMOND SOY COCONUT NONE"`
	ExtraShot    bool   `json:"extra_shot"`
	WhippedCream bool   `json:"whipped_cream"`
}

type PresetResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Temperature  string    `json:"temperature,omitempty"`
	CupSize      string    `json:"cup_size,omitempty"`
	SugarLevel   string    `json:"sugar_level,omitempty"`
	MilkType     string    `json:"milk_type,omitempty"`
	ExtraShot    bool      `json:"extra_shot"`
	WhippedCream bool      `json:"whipped_cream"`
}

type ListPresetsResponse struct {
	Presets []PresetResponse `json:"presets"`
}

type ApplyPresetRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	PresetID string `json:"preset_id" validate:"required,uuid"`
	SKU      string `json:"sku" validate:"required"`
}

type ApplyPresetResponse struct {
	SKU    string                   `json:"sku"`
	Result customization.Suggestion `json:"result"`
}
