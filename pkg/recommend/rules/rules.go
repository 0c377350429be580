package rules

import (
	"strings"
	"time"

	"mobile-order-be/pkg/catalog"
)

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeLunch     TimeOfDay = "lunch"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Weather nudges items whose tags or serving temperature fit the conditions
// outside. Kind is free-form ("sunny", "rainy", "snow") and only used for
// explanations.
type Weather struct {
	Kind               string                `json:"kind,omitempty"`
	TemperatureC       float64               `json:"temperature_c"`
	BoostTags          []string              `json:"boost_tags,omitempty"`
	DemoteTags         []string              `json:"demote_tags,omitempty"`
	BoostTemperatures  []catalog.Temperature `json:"boost_temperatures,omitempty"`
	DemoteTemperatures []catalog.Temperature `json:"demote_temperatures,omitempty"`
}

// Context is everything about the moment of the request that the rule layer
// scores against.
type Context struct {
	TimeOfDay TimeOfDay `json:"time_of_day"`
	Season    Season    `json:"season"`
	IsWeekend bool      `json:"is_weekend"`
	Weather   *Weather  `json:"weather,omitempty"`
}

// ContextAt derives the rule context from a wall-clock instant. Weather has no
// clock to read from, so it stays nil until the caller fills it in.
func ContextAt(t time.Time) Context {
	return Context{
		TimeOfDay: timeOfDay(t.Hour()),
		Season:    season(t.Month()),
		IsWeekend: t.Weekday() == time.Saturday || t.Weekday() == time.Sunday,
	}
}

func timeOfDay(hour int) TimeOfDay {
	switch {
	case hour >= 6 && hour < 11:
		return TimeMorning
	case hour >= 11 && hour < 14:
		return TimeLunch
	case hour >= 14 && hour < 17:
		return TimeAfternoon
	case hour >= 17 && hour < 21:
		return TimeEvening
	default:
		return TimeNight
	}
}

func season(m time.Month) Season {
	switch m {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

// Attribute and daypart multipliers.
const (
	newItemFactor      = 1.15
	seasonalFactor     = 1.1
	avoidKeywordFactor = 0.5

	morningCoffeeFactor    = 1.15
	morningBreakfastFactor = 1.2
	lunchFoodFactor        = 1.1
	afternoonTeaFactor     = 1.1
	afternoonFrappFactor   = 1.1
	eveningDecafFactor     = 1.15
	eveningCoffeeFactor    = 0.9
	nightCoffeeFactor      = 0.8

	summerIcedFactor = 1.1
	winterHotFactor  = 1.1
	weekendNewFactor = 1.1
)

// Weather factor deltas and its clamp range. Only the weather component is
// clamped; the overall rule product is left open so stacked dayparts can
// exceed it.
const (
	weatherTagBoost     = 0.08
	weatherTempBoost    = 0.1
	weatherMismatch     = 0.15
	weatherFactorFloor  = 0.6
	weatherFactorCeil   = 1.5
)

// Detail carries the combined rule multiplier and each contributing factor,
// keyed by rule name, for explanation building.
type Detail struct {
	Total   float64            `json:"total"`
	Factors map[string]float64 `json:"factors"`
}

// Multiplier scores one item against the request context. avoidKeywords are
// lowercase substrings the user asked to steer away from; a hit on the name,
// description, or a tag halves the score.
func Multiplier(item *catalog.Item, ctx Context, avoidKeywords []string) Detail {
	d := Detail{Total: 1.0, Factors: make(map[string]float64)}
	if item == nil {
		return d
	}

	if item.IsNew {
		d.Factors["new_item"] = newItemFactor
	}
	if item.IsSeasonal {
		d.Factors["seasonal"] = seasonalFactor
	}
	if matchesAvoid(item, avoidKeywords) {
		d.Factors["avoid_keyword"] = avoidKeywordFactor
	}

	switch ctx.TimeOfDay {
	case TimeMorning:
		if item.Category == catalog.CategoryCoffee {
			d.Factors["morning_coffee"] = morningCoffeeFactor
		}
		if item.HasTag("breakfast") {
			d.Factors["morning_breakfast"] = morningBreakfastFactor
		}
	case TimeLunch:
		if item.Category == catalog.CategoryFood {
			d.Factors["lunch_food"] = lunchFoodFactor
		}
	case TimeAfternoon:
		if item.Category == catalog.CategoryTea {
			d.Factors["afternoon_tea"] = afternoonTeaFactor
		}
		if item.Category == catalog.CategoryFrappuccino {
			d.Factors["afternoon_frappuccino"] = afternoonFrappFactor
		}
	case TimeEvening:
		if item.HasTag("decaf") {
			d.Factors["evening_decaf"] = eveningDecafFactor
		} else if item.Category == catalog.CategoryCoffee {
			d.Factors["evening_coffee"] = eveningCoffeeFactor
		}
	case TimeNight:
		if item.Category == catalog.CategoryCoffee && !item.HasTag("decaf") {
			d.Factors["night_coffee"] = nightCoffeeFactor
		}
	}

	if ctx.Season == SeasonSummer && item.SupportsTemperature(catalog.TemperatureIced) {
		d.Factors["summer_iced"] = summerIcedFactor
	}
	if ctx.Season == SeasonWinter && item.SupportsTemperature(catalog.TemperatureHot) {
		d.Factors["winter_hot"] = winterHotFactor
	}
	if ctx.IsWeekend && (item.IsNew || item.IsSeasonal) {
		d.Factors["weekend_discovery"] = weekendNewFactor
	}

	if ctx.Weather != nil {
		if f := weatherFactor(item, ctx.Weather); f != 1.0 {
			d.Factors["weather"] = f
		}
	}

	for _, f := range d.Factors {
		d.Total *= f
	}
	return d
}

func weatherFactor(item *catalog.Item, w *Weather) float64 {
	f := 1.0
	tagHit := false
	for _, tag := range w.BoostTags {
		if item.HasTag(tag) {
			f += weatherTagBoost
			tagHit = true
		}
	}
	for _, tag := range w.DemoteTags {
		if item.HasTag(tag) {
			f -= weatherTagBoost
			tagHit = true
		}
	}
	tempHit := false
	for _, temp := range w.BoostTemperatures {
		if item.SupportsTemperature(temp) {
			f += weatherTempBoost
			tempHit = true
		}
	}
	for _, temp := range w.DemoteTemperatures {
		if item.SupportsTemperature(temp) && !supportsAny(item, w.BoostTemperatures) {
			f -= weatherTempBoost
			tempHit = true
		}
	}
	// An item that only serves a demoted temperature and shares nothing else
	// with the conditions takes an extra penalty.
	if !tagHit && tempHit && f < 1.0 {
		f -= weatherMismatch
	}
	if f < weatherFactorFloor {
		f = weatherFactorFloor
	}
	if f > weatherFactorCeil {
		f = weatherFactorCeil
	}
	return f
}

func supportsAny(item *catalog.Item, temps []catalog.Temperature) bool {
	for _, t := range temps {
		if item.SupportsTemperature(t) {
			return true
		}
	}
	return false
}

func matchesAvoid(item *catalog.Item, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	haystack := strings.ToLower(item.Name + " " + item.Description)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, kw) {
			return true
		}
		for _, tag := range item.Tags {
			if strings.Contains(strings.ToLower(tag), kw) {
				return true
			}
		}
	}
	return false
}

// Cold-start multipliers favor discoverable, broadly liked items for users
// with no history.
const (
	coldStartNewFactor      = 1.2
	coldStartSeasonalFactor = 1.15
	coldStartPopularFactor  = 1.15
	coldStartClassicFactor  = 1.1
)

// ColdStartBoost is applied instead of behavior and session factors when the
// user has no history at all.
func ColdStartBoost(item *catalog.Item) float64 {
	if item == nil {
		return 1.0
	}
	f := 1.0
	if item.IsNew {
		f *= coldStartNewFactor
	}
	if item.IsSeasonal {
		f *= coldStartSeasonalFactor
	}
	if item.HasTag("popular") {
		f *= coldStartPopularFactor
	}
	if item.HasTag("classic") {
		f *= coldStartClassicFactor
	}
	return f
}
