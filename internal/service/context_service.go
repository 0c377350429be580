package service

import (
	"context"
	"time"

	"mobile-order-be/internal/dto"
	"mobile-order-be/pkg/catalog"
	"mobile-order-be/pkg/recommend/rules"
)

// Outdoor temperature thresholds for the weather presets, in Celsius.
const (
	hotDayThreshold  = 28.0
	coldDayThreshold = 5.0
)

type IContextService interface {
	Current(ctx context.Context, weather *rules.Weather) (*dto.ContextResponse, error)
	// At builds the rule context for an instant, merging in optional weather.
	At(t time.Time, weather *rules.Weather) rules.Context
}

type contextService struct {
	now func() time.Time
}

func NewContextService() IContextService {
	return &contextService{now: time.Now}
}

func (s *contextService) Current(ctx context.Context, weather *rules.Weather) (*dto.ContextResponse, error) {
	return &dto.ContextResponse{Context: s.At(s.now(), weather)}, nil
}

func (s *contextService) At(t time.Time, weather *rules.Weather) rules.Context {
	rc := rules.ContextAt(t)
	if weather != nil {
		rc.Weather = normalizeWeather(weather)
	}
	return rc
}

// normalizeWeather fills in tag and temperature nudges for clients that only
// report conditions. Explicit boost and demote lists win over the presets.
func normalizeWeather(w *rules.Weather) *rules.Weather {
	out := *w
	if len(out.BoostTags) > 0 || len(out.DemoteTags) > 0 ||
		len(out.BoostTemperatures) > 0 || len(out.DemoteTemperatures) > 0 {
		return &out
	}

	switch {
	case out.TemperatureC >= hotDayThreshold:
		out.BoostTags = []string{"refreshing", "icy"}
		out.BoostTemperatures = []catalog.Temperature{catalog.TemperatureIced}
	case out.TemperatureC <= coldDayThreshold:
		out.BoostTags = []string{"warming"}
		out.BoostTemperatures = []catalog.Temperature{catalog.TemperatureHot}
		out.DemoteTemperatures = []catalog.Temperature{catalog.TemperatureIced}
	}

	switch out.Kind {
	case "rain", "rainy", "snow", "snowy":
		out.BoostTags = appendMissing(out.BoostTags, "warming")
	}
	return &out
}

func appendMissing(list []string, v string) []string {
	for _, have := range list {
		if have == v {
			return list
		}
	}
	return append(list, v)
}
