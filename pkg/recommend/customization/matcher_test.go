package customization

import (
	"math"
	"testing"

	"mobile-order-be/pkg/catalog"
	"mobile-order-be/pkg/recommend/behavior"
)

func latteItem() *catalog.Item {
	return &catalog.Item{
		SKU:          "COF002",
		Name:         "Latte",
		Category:     catalog.CategoryCoffee,
		BasePrice:    28,
		Temperatures: []catalog.Temperature{catalog.TemperatureHot, catalog.TemperatureIced},
		Sizes:        []catalog.CupSize{catalog.SizeTall, catalog.SizeGrande, catalog.SizeVenti},
		Constraints: &catalog.Constraints{
			SugarLevels:        []catalog.SugarLevel{catalog.SugarNone, catalog.SugarHalf, catalog.SugarStandard},
			MilkTypes:          []catalog.MilkType{catalog.MilkWhole, catalog.MilkOat, catalog.MilkSoy},
			Temperatures:       []catalog.Temperature{catalog.TemperatureHot, catalog.TemperatureIced},
			SupportsExtraShot:  true,
			DefaultTemperature: catalog.TemperatureHot,
			DefaultSugarLevel:  catalog.SugarStandard,
			DefaultMilkType:    catalog.MilkWhole,
		},
	}
}

func regularProfile() *behavior.Profile {
	return &behavior.Profile{
		UserID:     "u1",
		OrderCount: 8,
		CustomizationPrefs: map[string]map[string]float64{
			DimTemperature: {"ICED": 0.75, "HOT": 0.25},
			DimCupSize:     {"GRANDE": 0.6, "VENTI": 0.4},
			DimMilkType:    {"OAT": 0.8, "WHOLE": 0.2},
			DimSugarLevel:  {"HALF": 0.7, "NONE": 0.3},
			DimExtraShot:   {"true": 0.5},
		},
	}
}

func TestCanonicalResolvesSynonyms(t *testing.T) {
	cases := []struct {
		dim, in, want string
	}{
		{DimTemperature, "cold", "ICED"},
		{DimTemperature, "warm", "HOT"},
		{DimCupSize, "large", "VENTI"},
		{DimMilkType, "oat_milk", "OAT"},
		{DimSugarLevel, "sugar_free", "NONE"},
		{DimSugarLevel, "STANDARD", "STANDARD"},
		{DimMilkType, "bespoke", "BESPOKE"},
	}
	for _, tc := range cases {
		if got := Canonical(tc.dim, tc.in); got != tc.want {
			t.Errorf("Canonical(%s, %s) = %s, want %s", tc.dim, tc.in, got, tc.want)
		}
	}
}

func TestMatchBoostAllDimensionsMatch(t *testing.T) {
	d := MatchBoost(regularProfile(), latteItem())

	if d.Factors["temperature_match"] != temperatureMatch {
		t.Errorf("temperature factor = %v, want %v", d.Factors["temperature_match"], temperatureMatch)
	}
	if d.Factors["size_match"] != sizeMatch {
		t.Errorf("size factor = %v, want %v", d.Factors["size_match"], sizeMatch)
	}
	if d.Factors["milk_match"] != milkMatch {
		t.Errorf("milk factor = %v, want %v", d.Factors["milk_match"], milkMatch)
	}
	if d.Factors["sugar_match"] != sugarMatch {
		t.Errorf("sugar factor = %v, want %v", d.Factors["sugar_match"], sugarMatch)
	}
	// 1.15*1.1*1.2*1.15 = 1.7457, clamped to the cap.
	if d.Total != BoostCap {
		t.Errorf("total = %v, want clamp at %v", d.Total, BoostCap)
	}
}

func TestMatchBoostMismatchFloors(t *testing.T) {
	p := &behavior.Profile{
		UserID:     "u2",
		OrderCount: 5,
		CustomizationPrefs: map[string]map[string]float64{
			DimTemperature: {"HOT": 1.0},
			DimCupSize:     {"TALL": 1.0},
			DimMilkType:    {"ALMOND": 1.0},
			DimSugarLevel:  {"EXTRA": 1.0},
		},
	}
	item := latteItem()
	item.Temperatures = []catalog.Temperature{catalog.TemperatureIced}
	item.Sizes = []catalog.CupSize{catalog.SizeGrande}

	d := MatchBoost(p, item)
	// 0.9*0.95*0.85*0.9 = 0.654, clamped to the floor.
	if d.Total != BoostFloor {
		t.Errorf("total = %v, want clamp at %v", d.Total, BoostFloor)
	}
}

func TestMatchBoostNoMilkItem(t *testing.T) {
	item := latteItem()
	item.Constraints.MilkTypes = nil

	d := MatchBoost(regularProfile(), item)
	if d.Factors["milk_match"] != 0.95 {
		t.Errorf("milk factor for milk-less item = %v, want 0.95", d.Factors["milk_match"])
	}

	noMilk := regularProfile()
	noMilk.CustomizationPrefs[DimMilkType] = map[string]float64{"NONE": 1.0}
	d = MatchBoost(noMilk, item)
	if d.Factors["milk_match"] != 1.05 {
		t.Errorf("milk factor for NONE preference = %v, want 1.05", d.Factors["milk_match"])
	}
}

func TestMatchBoostNewUserNeutral(t *testing.T) {
	p := &behavior.Profile{UserID: "u3", IsNewUser: true}
	if d := MatchBoost(p, latteItem()); d.Total != 1.0 {
		t.Errorf("new user total = %v, want 1.0", d.Total)
	}
	if d := MatchBoost(nil, latteItem()); d.Total != 1.0 {
		t.Errorf("nil profile total = %v, want 1.0", d.Total)
	}
}

func TestSuggestPicksStrongestSupportedPreference(t *testing.T) {
	s := Suggest(regularProfile(), nil, latteItem())

	if s.Customization.Temperature != catalog.TemperatureIced {
		t.Errorf("temperature = %s, want ICED", s.Customization.Temperature)
	}
	if s.Customization.CupSize != catalog.SizeGrande {
		t.Errorf("cup size = %s, want GRANDE", s.Customization.CupSize)
	}
	if s.Customization.MilkType != catalog.MilkOat {
		t.Errorf("milk = %s, want OAT", s.Customization.MilkType)
	}
	if s.Customization.SugarLevel != catalog.SugarHalf {
		t.Errorf("sugar = %s, want HALF", s.Customization.SugarLevel)
	}
	if !s.Customization.ExtraShot {
		t.Error("extra shot should be on at 0.5 historical ratio")
	}

	// Confidence is the mean of matched ratios: (0.75+0.6+0.7+0.8)/4.
	want := (0.75 + 0.6 + 0.7 + 0.8) / 4
	if math.Abs(s.Confidence-want) > 1e-9 {
		t.Errorf("confidence = %v, want %v", s.Confidence, want)
	}

	// GRANDE carries no surcharge, OAT adds 3, extra shot adds 4.
	if s.PriceAdjustment != 7 {
		t.Errorf("price adjustment = %v, want 7", s.PriceAdjustment)
	}
	if s.FinalPrice != 35 {
		t.Errorf("final price = %v, want 35", s.FinalPrice)
	}
}

func TestSuggestUnsupportedPreferenceFallsToDefault(t *testing.T) {
	p := regularProfile()
	p.CustomizationPrefs[DimMilkType] = map[string]float64{"ALMOND": 1.0}

	s := Suggest(p, nil, latteItem())
	if s.Customization.MilkType != catalog.MilkWhole {
		t.Errorf("milk = %s, want default WHOLE", s.Customization.MilkType)
	}
}

func TestSuggestNewUserCapsConfidence(t *testing.T) {
	p := &behavior.Profile{UserID: "u4", IsNewUser: true}
	s := Suggest(p, nil, latteItem())

	if s.Confidence > newUserConfidence {
		t.Errorf("confidence = %v, want <= %v", s.Confidence, newUserConfidence)
	}
	if s.Customization.Temperature != catalog.TemperatureHot {
		t.Errorf("temperature = %s, want default HOT", s.Customization.Temperature)
	}
	if s.Customization.CupSize != catalog.SizeGrande {
		t.Errorf("cup size = %s, want GRANDE fallback", s.Customization.CupSize)
	}
}

func TestSuggestPresetTakesPrecedence(t *testing.T) {
	preset := &Preset{
		ID:          "p1",
		Name:        "afternoon pick-me-up",
		Temperature: catalog.TemperatureHot,
		CupSize:     catalog.SizeVenti,
		MilkType:    catalog.MilkSoy,
		SugarLevel:  catalog.SugarNone,
		ExtraShot:   true,
	}
	s := Suggest(regularProfile(), preset, latteItem())

	if s.Customization.Temperature != catalog.TemperatureHot {
		t.Errorf("temperature = %s, want preset HOT over learned ICED", s.Customization.Temperature)
	}
	if s.Customization.CupSize != catalog.SizeVenti {
		t.Errorf("cup size = %s, want preset VENTI", s.Customization.CupSize)
	}
	if s.Customization.MilkType != catalog.MilkSoy {
		t.Errorf("milk = %s, want preset SOY", s.Customization.MilkType)
	}
	if s.Confidence != presetConfidence {
		t.Errorf("confidence = %v, want %v", s.Confidence, presetConfidence)
	}
	if len(s.Conflicts) != 0 {
		t.Errorf("unexpected conflicts: %v", s.Conflicts)
	}
}

func TestApplyPresetRecordsConflicts(t *testing.T) {
	preset := &Preset{
		ID:          "p2",
		Name:        "frozen treat",
		Temperature: catalog.TemperatureIced,
		CupSize:     catalog.SizeVenti,
		MilkType:    catalog.MilkCoconut,
	}
	item := latteItem()
	item.Temperatures = []catalog.Temperature{catalog.TemperatureHot}
	item.Constraints.MilkTypes = []catalog.MilkType{catalog.MilkWhole}

	s := ApplyPreset(preset, item)

	if len(s.Conflicts) != 2 {
		t.Fatalf("conflicts = %v, want temperature and milk conflicts", s.Conflicts)
	}
	if s.Customization.Temperature != catalog.TemperatureHot {
		t.Errorf("temperature = %s, want HOT fallback", s.Customization.Temperature)
	}
	if s.Customization.MilkType != catalog.MilkWhole {
		t.Errorf("milk = %s, want WHOLE fallback", s.Customization.MilkType)
	}
	if s.Customization.CupSize != catalog.SizeVenti {
		t.Errorf("cup size = %s, want VENTI applied cleanly", s.Customization.CupSize)
	}
	if s.Confidence >= presetConfidence {
		t.Errorf("confidence = %v, want reduced below %v", s.Confidence, presetConfidence)
	}
}
