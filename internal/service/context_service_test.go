package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-order-be/pkg/catalog"
	"mobile-order-be/pkg/recommend/rules"
)

func TestContextAtWithoutWeather(t *testing.T) {
	svc := NewContextService()

	rc := svc.At(time.Date(2026, 7, 4, 9, 0, 0, 0, time.UTC), nil)

	assert.Equal(t, rules.TimeMorning, rc.TimeOfDay)
	assert.Equal(t, rules.SeasonSummer, rc.Season)
	assert.True(t, rc.IsWeekend)
	assert.Nil(t, rc.Weather)
}

func TestHotDayWeatherPreset(t *testing.T) {
	svc := NewContextService()

	rc := svc.At(time.Now(), &rules.Weather{Kind: "sunny", TemperatureC: 32})

	require.NotNil(t, rc.Weather)
	assert.Contains(t, rc.Weather.BoostTags, "refreshing")
	assert.Contains(t, rc.Weather.BoostTemperatures, catalog.TemperatureIced)
	assert.Empty(t, rc.Weather.DemoteTemperatures)
}

func TestColdDayWeatherPreset(t *testing.T) {
	svc := NewContextService()

	rc := svc.At(time.Now(), &rules.Weather{Kind: "snow", TemperatureC: -2})

	require.NotNil(t, rc.Weather)
	assert.Contains(t, rc.Weather.BoostTags, "warming")
	assert.Contains(t, rc.Weather.BoostTemperatures, catalog.TemperatureHot)
	assert.Contains(t, rc.Weather.DemoteTemperatures, catalog.TemperatureIced)
}

func TestRainAddsWarmingTag(t *testing.T) {
	svc := NewContextService()

	rc := svc.At(time.Now(), &rules.Weather{Kind: "rainy", TemperatureC: 15})

	require.NotNil(t, rc.Weather)
	assert.Equal(t, []string{"warming"}, rc.Weather.BoostTags)
}

func TestExplicitWeatherListsWinOverPresets(t *testing.T) {
	svc := NewContextService()

	rc := svc.At(time.Now(), &rules.Weather{
		Kind:         "sunny",
		TemperatureC: 35,
		BoostTags:    []string{"fruity"},
	})

	require.NotNil(t, rc.Weather)
	assert.Equal(t, []string{"fruity"}, rc.Weather.BoostTags)
	assert.Empty(t, rc.Weather.BoostTemperatures)
}
