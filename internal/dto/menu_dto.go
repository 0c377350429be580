package dto

import (
	"mobile-order-be/pkg/catalog"
)

type MenuItemResponse struct {
	SKU          string                `json:"sku"`
	Name         string                `json:"name"`
	Category     catalog.Category      `json:"category"`
	BasePrice    float64               `json:"base_price"`
	Description  string                `json:"description"`
	IsNew        bool                  `json:"is_new"`
	IsSeasonal   bool                  `json:"is_seasonal"`
	Calories     int                   `json:"calories"`
	Temperatures []catalog.Temperature `json:"available_temperatures"`
	Sizes        []catalog.CupSize     `json:"available_sizes"`
	Tags         []string              `json:"tags"`
	Constraints  *catalog.Constraints  `json:"customization_constraints,omitempty"`
}

type ListMenuResponse struct {
	Items []MenuItemResponse `json:"items"`
	Total int                `json:"total"`
}

type SimilarItemsResponse struct {
	SKU   string             `json:"sku"`
	Items []MenuItemResponse `json:"items"`
}

type CustomizationOptionsResponse struct {
	SKU                  string                `json:"sku"`
	Temperatures         []catalog.Temperature `json:"temperatures"`
	Sizes                []catalog.CupSize     `json:"sizes"`
	MilkTypes            []catalog.MilkType    `json:"milk_types"`
	SugarLevels          []catalog.SugarLevel  `json:"sugar_levels"`
	SupportsExtraShot    bool                  `json:"supports_extra_shot"`
	SupportsWhippedCream bool                  `json:"supports_whipped_cream"`
	DefaultTemperature   catalog.Temperature   `json:"default_temperature,omitempty"`
	DefaultSugarLevel    catalog.SugarLevel    `json:"default_sugar_level,omitempty"`
	DefaultMilkType      catalog.MilkType      `json:"default_milk_type,omitempty"`
}

type PriceQuoteRequest struct {
	SKU           string                `json:"sku" validate:"required"`
	Customization catalog.Customization `json:"customization"`
}

type PriceQuoteResponse struct {
	SKU             string  `json:"sku"`
	BasePrice       float64 `json:"base_price"`
	PriceAdjustment float64 `json:"price_adjustment"`
	FinalPrice      float64 `json:"final_price"`
}
