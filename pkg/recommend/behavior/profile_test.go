package behavior

import (
	"math"
	"testing"
	"time"

	"mobile-order-be/pkg/recommend/decay"
)

var now = time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

func newAnalyzer() *Analyzer {
	return NewAnalyzer(decay.DefaultConfig())
}

func order(sku, category string, tags []string, price float64, daysAgo int) OrderEvent {
	return OrderEvent{
		SKU: sku, Category: category, Tags: tags, Price: price,
		Timestamp: now.AddDate(0, 0, -daysAgo),
	}
}

func TestBuildProfileNewUser(t *testing.T) {
	p := newAnalyzer().BuildProfile("u1", nil, nil, now)
	if !p.IsNewUser {
		t.Fatal("empty history should mark a new user")
	}
	if p.OrderCount != 0 || len(p.SKUScores) != 0 {
		t.Errorf("new user profile should be empty: %+v", p)
	}
}

func TestBuildProfileDecayedScores(t *testing.T) {
	a := newAnalyzer()
	orders := []OrderEvent{
		order("COF003", "coffee", []string{"creamy"}, 35, 0),
		order("COF003", "coffee", []string{"creamy"}, 35, 30),
	}
	p := a.BuildProfile("u1", orders, nil, now)

	// Today's order weighs 1.0, the 30-day-old one 0.5.
	if math.Abs(p.SKUScores["COF003"]-1.5) > 1e-9 {
		t.Errorf("SKU score = %v, want 1.5", p.SKUScores["COF003"])
	}
	if math.Abs(p.CategoryScores["coffee"]-1.5) > 1e-9 {
		t.Errorf("category score = %v, want 1.5", p.CategoryScores["coffee"])
	}
	if p.AvgOrderPrice != 35 {
		t.Errorf("avg order price = %v, want 35", p.AvgOrderPrice)
	}
	if p.IsNewUser {
		t.Error("user with orders must not be new")
	}
}

func TestBuildProfileClicksAtReducedWeight(t *testing.T) {
	a := newAnalyzer()
	clicks := []ClickEvent{
		{Action: "click", Category: "tea", Tags: []string{"refreshing"}, Timestamp: now},
	}
	p := a.BuildProfile("u1", nil, clicks, now)

	if math.Abs(p.CategoryScores["tea"]-0.3) > 1e-9 {
		t.Errorf("click category weight = %v, want 0.3", p.CategoryScores["tea"])
	}
	if math.Abs(p.TagScores["refreshing"]-0.3) > 1e-9 {
		t.Errorf("click tag weight = %v, want 0.3", p.TagScores["refreshing"])
	}
	if p.IsNewUser {
		t.Error("click-only history still leaves the new-user flag cleared")
	}
}

func TestCustomizationPreferencesNormalizedTopThree(t *testing.T) {
	a := newAnalyzer()
	var orders []OrderEvent
	values := []string{"ICED", "ICED", "ICED", "HOT", "WARM", "BLENDED"}
	for _, v := range values {
		o := order("COF005", "coffee", nil, 33, 1)
		o.Customization = map[string]string{"temperature": v}
		orders = append(orders, o)
	}
	p := a.BuildProfile("u1", orders, nil, now)

	prefs := p.CustomizationPrefs["temperature"]
	if len(prefs) != 3 {
		t.Fatalf("expected top 3 values, got %d: %v", len(prefs), prefs)
	}
	if math.Abs(prefs["ICED"]-0.5) > 1e-9 {
		t.Errorf("ICED proportion = %v, want 0.5", prefs["ICED"])
	}
	if _, ok := prefs["ICED"]; !ok {
		t.Error("dominant value missing from preferences")
	}

	val, ratio := p.PreferredValue("temperature")
	if val != "ICED" || math.Abs(ratio-0.5) > 1e-9 {
		t.Errorf("PreferredValue = %q/%v, want ICED/0.5", val, ratio)
	}
}

func TestOrderBoostNewUserNeutral(t *testing.T) {
	a := newAnalyzer()
	p := a.BuildProfile("u1", nil, nil, now)
	boost := a.OrderBoost(p, "COF001", "coffee", []string{"classic"}, 30)
	if boost.Total != 1.0 {
		t.Errorf("new user boost = %v, want 1.0", boost.Total)
	}
	for k, v := range boost.Factors {
		if v != 1.0 {
			t.Errorf("factor %s = %v, want 1.0", k, v)
		}
	}
}

func TestOrderBoostNilProfileNeutral(t *testing.T) {
	boost := newAnalyzer().OrderBoost(nil, "COF001", "coffee", nil, 30)
	if boost.Total != 1.0 {
		t.Errorf("nil profile boost = %v, want 1.0", boost.Total)
	}
}

func TestOrderBoostFactors(t *testing.T) {
	a := newAnalyzer()
	orders := []OrderEvent{
		order("COF003", "coffee", []string{"creamy", "classic"}, 35, 0),
		order("COF003", "coffee", []string{"creamy", "classic"}, 35, 0),
		order("TEA001", "tea", []string{"refreshing"}, 28, 0),
	}
	p := a.BuildProfile("u1", orders, nil, now)
	boost := a.OrderBoost(p, "COF003", "coffee", []string{"creamy"}, 35)

	// Two fresh orders of the SKU: repurchase = 1 + 2*0.25.
	if math.Abs(boost.Factors["repurchase"]-1.5) > 1e-9 {
		t.Errorf("repurchase = %v, want 1.5", boost.Factors["repurchase"])
	}
	// Coffee holds 2 of 3 decayed units: 1 + (2/3)*0.5.
	if math.Abs(boost.Factors["category"]-(1.0+2.0/3.0*0.5)) > 1e-9 {
		t.Errorf("category = %v", boost.Factors["category"])
	}
	// creamy holds 2 of 5 tag units: 1 + 0.4*0.4.
	if math.Abs(boost.Factors["tag"]-1.16) > 1e-9 {
		t.Errorf("tag = %v, want 1.16", boost.Factors["tag"])
	}
	// Price sits within [0.7, 1.5] of the average.
	if boost.Factors["price_match"] != 1.1 {
		t.Errorf("price_match = %v, want 1.1", boost.Factors["price_match"])
	}
}

func TestOrderBoostPriceBands(t *testing.T) {
	a := newAnalyzer()
	orders := []OrderEvent{order("COF003", "coffee", nil, 40, 0)}
	p := a.BuildProfile("u1", orders, nil, now)

	tests := []struct {
		name  string
		price float64
		want  float64
	}{
		{"within band", 40, 1.1},
		{"cheap", 20, 0.95},
		{"expensive", 80, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boost := a.OrderBoost(p, "OTHER", "coffee", nil, tt.price)
			if boost.Factors["price_match"] != tt.want {
				t.Errorf("price_match = %v, want %v", boost.Factors["price_match"], tt.want)
			}
		})
	}
}

func TestOrderBoostCapped(t *testing.T) {
	a := newAnalyzer()
	var orders []OrderEvent
	for i := 0; i < 20; i++ {
		orders = append(orders, order("COF003", "coffee", []string{"creamy"}, 35, 0))
	}
	p := a.BuildProfile("u1", orders, nil, now)
	boost := a.OrderBoost(p, "COF003", "coffee", []string{"creamy"}, 35)
	if boost.Total > BoostCap {
		t.Errorf("boost %v exceeds cap %v", boost.Total, BoostCap)
	}
	if boost.Total != BoostCap {
		t.Errorf("heavy repeat history should hit the cap, got %v", boost.Total)
	}
}
