package rules

import (
	"math"
	"testing"
	"time"

	"mobile-order-be/pkg/catalog"
)

func coffeeItem() *catalog.Item {
	return &catalog.Item{
		SKU:          "COF001",
		Name:         "Americano",
		Category:     catalog.CategoryCoffee,
		Description:  "Espresso and hot water",
		Tags:         []string{"classic", "popular"},
		Temperatures: []catalog.Temperature{catalog.TemperatureHot, catalog.TemperatureIced},
	}
}

func TestContextAt(t *testing.T) {
	cases := []struct {
		name    string
		at      time.Time
		tod     TimeOfDay
		season  Season
		weekend bool
	}{
		{"monday morning", time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC), TimeMorning, SeasonWinter, false},
		{"noon", time.Date(2026, 4, 8, 12, 30, 0, 0, time.UTC), TimeLunch, SeasonSpring, false},
		{"afternoon", time.Date(2026, 7, 15, 15, 0, 0, 0, time.UTC), TimeAfternoon, SeasonSummer, false},
		{"evening", time.Date(2026, 10, 2, 19, 0, 0, 0, time.UTC), TimeEvening, SeasonAutumn, false},
		{"late night", time.Date(2026, 12, 24, 23, 0, 0, 0, time.UTC), TimeNight, SeasonWinter, false},
		{"saturday", time.Date(2026, 6, 6, 10, 0, 0, 0, time.UTC), TimeMorning, SeasonSummer, true},
		{"before dawn", time.Date(2026, 3, 3, 4, 0, 0, 0, time.UTC), TimeNight, SeasonSpring, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := ContextAt(tc.at)
			if ctx.TimeOfDay != tc.tod {
				t.Errorf("time of day = %s, want %s", ctx.TimeOfDay, tc.tod)
			}
			if ctx.Season != tc.season {
				t.Errorf("season = %s, want %s", ctx.Season, tc.season)
			}
			if ctx.IsWeekend != tc.weekend {
				t.Errorf("weekend = %v, want %v", ctx.IsWeekend, tc.weekend)
			}
		})
	}
}

func TestMorningCoffeeAndBreakfast(t *testing.T) {
	ctx := Context{TimeOfDay: TimeMorning, Season: SeasonSpring}

	d := Multiplier(coffeeItem(), ctx, nil)
	if d.Factors["morning_coffee"] != morningCoffeeFactor {
		t.Errorf("morning coffee factor = %v, want %v", d.Factors["morning_coffee"], morningCoffeeFactor)
	}

	croissant := &catalog.Item{
		SKU:      "FOO001",
		Name:     "Butter Croissant",
		Category: catalog.CategoryFood,
		Tags:     []string{"breakfast"},
	}
	d = Multiplier(croissant, ctx, nil)
	if d.Factors["morning_breakfast"] != morningBreakfastFactor {
		t.Errorf("breakfast factor = %v, want %v", d.Factors["morning_breakfast"], morningBreakfastFactor)
	}
}

func TestEveningPrefersDecaf(t *testing.T) {
	ctx := Context{TimeOfDay: TimeEvening, Season: SeasonSpring}

	decaf := coffeeItem()
	decaf.Tags = append(decaf.Tags, "decaf")
	d := Multiplier(decaf, ctx, nil)
	if d.Factors["evening_decaf"] != eveningDecafFactor {
		t.Errorf("decaf factor = %v, want %v", d.Factors["evening_decaf"], eveningDecafFactor)
	}
	if _, ok := d.Factors["evening_coffee"]; ok {
		t.Error("decaf item should not take the evening coffee demotion")
	}

	d = Multiplier(coffeeItem(), ctx, nil)
	if d.Factors["evening_coffee"] != eveningCoffeeFactor {
		t.Errorf("evening coffee factor = %v, want %v", d.Factors["evening_coffee"], eveningCoffeeFactor)
	}
}

func TestNightDemotesCaffeine(t *testing.T) {
	ctx := Context{TimeOfDay: TimeNight, Season: SeasonSpring}
	d := Multiplier(coffeeItem(), ctx, nil)
	if d.Factors["night_coffee"] != nightCoffeeFactor {
		t.Errorf("night coffee factor = %v, want %v", d.Factors["night_coffee"], nightCoffeeFactor)
	}
}

func TestSeasonalTemperatureRules(t *testing.T) {
	summer := Context{TimeOfDay: TimeAfternoon, Season: SeasonSummer}
	d := Multiplier(coffeeItem(), summer, nil)
	if d.Factors["summer_iced"] != summerIcedFactor {
		t.Errorf("summer iced factor = %v, want %v", d.Factors["summer_iced"], summerIcedFactor)
	}

	winter := Context{TimeOfDay: TimeAfternoon, Season: SeasonWinter}
	d = Multiplier(coffeeItem(), winter, nil)
	if d.Factors["winter_hot"] != winterHotFactor {
		t.Errorf("winter hot factor = %v, want %v", d.Factors["winter_hot"], winterHotFactor)
	}
}

func TestWeekendDiscovery(t *testing.T) {
	ctx := Context{TimeOfDay: TimeAfternoon, Season: SeasonSpring, IsWeekend: true}

	item := coffeeItem()
	item.IsNew = true
	d := Multiplier(item, ctx, nil)
	if d.Factors["weekend_discovery"] != weekendNewFactor {
		t.Errorf("weekend factor = %v, want %v", d.Factors["weekend_discovery"], weekendNewFactor)
	}
	// new_item 1.15 * weekend 1.1
	want := newItemFactor * weekendNewFactor
	if math.Abs(d.Total-want) > 1e-9 {
		t.Errorf("total = %v, want %v", d.Total, want)
	}
}

func TestAvoidKeywordHalves(t *testing.T) {
	ctx := Context{TimeOfDay: TimeAfternoon, Season: SeasonSpring}
	item := coffeeItem()

	d := Multiplier(item, ctx, []string{"espresso"})
	if d.Factors["avoid_keyword"] != avoidKeywordFactor {
		t.Errorf("avoid factor = %v, want %v", d.Factors["avoid_keyword"], avoidKeywordFactor)
	}

	d = Multiplier(item, ctx, []string{"matcha"})
	if _, ok := d.Factors["avoid_keyword"]; ok {
		t.Error("non-matching keyword should not demote")
	}

	d = Multiplier(item, ctx, []string{"popular"})
	if d.Factors["avoid_keyword"] != avoidKeywordFactor {
		t.Error("keyword should match against tags too")
	}
}

func TestWeatherFactor(t *testing.T) {
	ctx := Context{
		TimeOfDay: TimeAfternoon,
		Season:    SeasonSpring,
		Weather: &Weather{
			Kind:              "heatwave",
			TemperatureC:      34,
			BoostTags:         []string{"refreshing", "icy"},
			BoostTemperatures: []catalog.Temperature{catalog.TemperatureIced},
		},
	}

	slush := &catalog.Item{
		SKU:          "FRA001",
		Name:         "Mocha Frappuccino",
		Category:     catalog.CategoryFrappuccino,
		Tags:         []string{"icy", "refreshing"},
		Temperatures: []catalog.Temperature{catalog.TemperatureIced},
	}
	d := Multiplier(slush, ctx, nil)
	// Two tag hits at +0.08 and one temperature hit at +0.1.
	want := 1.0 + 2*weatherTagBoost + weatherTempBoost
	if math.Abs(d.Factors["weather"]-want) > 1e-9 {
		t.Errorf("weather factor = %v, want %v", d.Factors["weather"], want)
	}
}

func TestWeatherMismatchPenalty(t *testing.T) {
	ctx := Context{
		TimeOfDay: TimeAfternoon,
		Season:    SeasonSpring,
		Weather: &Weather{
			Kind:               "cold snap",
			TemperatureC:       -3,
			BoostTemperatures:  []catalog.Temperature{catalog.TemperatureHot},
			DemoteTemperatures: []catalog.Temperature{catalog.TemperatureIced},
		},
	}

	icedOnly := &catalog.Item{
		SKU:          "REF001",
		Name:         "Strawberry Refresher",
		Category:     catalog.CategoryRefresher,
		Temperatures: []catalog.Temperature{catalog.TemperatureIced},
	}
	d := Multiplier(icedOnly, ctx, nil)
	// -0.1 for the demoted temperature, -0.15 pure-mismatch penalty.
	want := 1.0 - weatherTempBoost - weatherMismatch
	if math.Abs(d.Factors["weather"]-want) > 1e-9 {
		t.Errorf("weather factor = %v, want %v", d.Factors["weather"], want)
	}
}

func TestWeatherFactorClamped(t *testing.T) {
	ctx := Context{
		TimeOfDay: TimeAfternoon,
		Season:    SeasonSpring,
		Weather: &Weather{
			BoostTags:         []string{"a", "b", "c", "d", "e", "f", "g"},
			BoostTemperatures: []catalog.Temperature{catalog.TemperatureHot},
		},
	}
	item := &catalog.Item{
		SKU:          "X",
		Name:         "Everything",
		Category:     catalog.CategoryCoffee,
		Tags:         []string{"a", "b", "c", "d", "e", "f", "g"},
		Temperatures: []catalog.Temperature{catalog.TemperatureHot},
	}
	d := Multiplier(item, ctx, nil)
	if d.Factors["weather"] != weatherFactorCeil {
		t.Errorf("weather factor = %v, want clamp at %v", d.Factors["weather"], weatherFactorCeil)
	}
}

func TestColdStartBoost(t *testing.T) {
	item := coffeeItem() // popular + classic tags
	want := coldStartPopularFactor * coldStartClassicFactor
	if got := ColdStartBoost(item); math.Abs(got-want) > 1e-9 {
		t.Errorf("boost = %v, want %v", got, want)
	}

	item.IsNew = true
	item.IsSeasonal = true
	want *= coldStartNewFactor * coldStartSeasonalFactor
	if got := ColdStartBoost(item); math.Abs(got-want) > 1e-9 {
		t.Errorf("boost = %v, want %v", got, want)
	}

	if got := ColdStartBoost(nil); got != 1.0 {
		t.Errorf("nil item boost = %v, want 1.0", got)
	}
}
