package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-order-be/internal/constant"
	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/entity"
	"mobile-order-be/pkg/catalog"
	"mobile-order-be/pkg/recommend/customization"
)

func latteMenuItem() *entity.MenuItem {
	return &entity.MenuItem{
		SKU:          "COF002",
		Name:         "Caffe Latte",
		Category:     catalog.CategoryCoffee,
		BasePrice:    28,
		Temperatures: []catalog.Temperature{catalog.TemperatureHot, catalog.TemperatureIced},
		Sizes:        []catalog.CupSize{catalog.SizeTall, catalog.SizeGrande, catalog.SizeVenti},
		Constraints: &catalog.Constraints{
			SugarLevels:       []catalog.SugarLevel{catalog.SugarNone, catalog.SugarHalf, catalog.SugarStandard},
			MilkTypes:         []catalog.MilkType{catalog.MilkWhole, catalog.MilkOat, catalog.MilkSoy},
			Temperatures:      []catalog.Temperature{catalog.TemperatureHot, catalog.TemperatureIced},
			SupportsExtraShot: true,
		},
	}
}

func TestBuildCustomizationResolvesSynonyms(t *testing.T) {
	line := dto.OrderItemRequest{
		SKU: "COF002",
		Customization: map[string]string{
			customization.DimTemperature: "cold",
			customization.DimCupSize:     "large",
			customization.DimMilkType:    "oat_milk",
		},
		ExtraShot: true,
	}

	cust, err := buildCustomization(latteMenuItem(), line)
	require.NoError(t, err)

	assert.Equal(t, catalog.TemperatureIced, cust.Temperature)
	assert.Equal(t, catalog.SizeVenti, cust.CupSize)
	assert.Equal(t, catalog.MilkOat, cust.MilkType)
	assert.True(t, cust.ExtraShot)

	// VENTI +4, oat milk +3, extra shot +4 on a 28 base.
	assert.InDelta(t, 39.0, catalog.FinalPrice(28, cust), 1e-9)
}

func TestBuildCustomizationRejectsUnsupportedValue(t *testing.T) {
	item := latteMenuItem()
	item.Temperatures = []catalog.Temperature{catalog.TemperatureHot}

	_, err := buildCustomization(item, dto.OrderItemRequest{
		SKU:           "COF002",
		Customization: map[string]string{customization.DimTemperature: "ICED"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ErrInvalidInput))
}

func TestBuildCustomizationRejectsUnsupportedOptions(t *testing.T) {
	item := latteMenuItem()
	item.Constraints.SupportsExtraShot = false

	_, err := buildCustomization(item, dto.OrderItemRequest{
		SKU:       "COF002",
		ExtraShot: true,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ErrInvalidInput))

	_, err = buildCustomization(item, dto.OrderItemRequest{
		SKU:          "COF002",
		WhippedCream: true,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ErrInvalidInput))
}

func TestCustomizationMapRoundTrip(t *testing.T) {
	m := customizationMap(catalog.Customization{
		Temperature: catalog.TemperatureIced,
		CupSize:     catalog.SizeGrande,
		ExtraShot:   true,
	})

	assert.Equal(t, "ICED", m[customization.DimTemperature])
	assert.Equal(t, "GRANDE", m[customization.DimCupSize])
	assert.Equal(t, "true", m[customization.DimExtraShot])
	assert.NotContains(t, m, customization.DimMilkType)
	assert.NotContains(t, m, customization.DimSugarLevel)
}
