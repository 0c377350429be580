package customization

import (
	"fmt"
	"sort"

	"mobile-order-be/pkg/catalog"
	"mobile-order-be/pkg/recommend/behavior"
)

// Clamp bounds for the combined customization boost.
const (
	BoostFloor = 0.8
	BoostCap   = 1.5
)

// Per-dimension match and mismatch factors.
const (
	temperatureMatch    = 1.15
	temperatureMismatch = 0.9
	sizeMatch           = 1.1
	sizeMismatch        = 0.95
	milkMatch           = 1.2
	milkMismatch        = 0.85
	sugarMatch          = 1.15
	sugarMismatch       = 0.9
)

// Confidence assigned per dimension depending on how the value was chosen.
const (
	fallbackConfidence = 0.3
	noPrefConfidence   = 0.5
	presetConfidence   = 0.9
	newUserConfidence  = 0.4
	optionThreshold    = 0.3
)

// Detail is the customization-fit boost for one item, with the per-dimension
// factors that produced it.
type Detail struct {
	Total   float64            `json:"total"`
	Factors map[string]float64 `json:"factors"`
}

func neutralDetail() Detail {
	return Detail{
		Total: 1.0,
		Factors: map[string]float64{
			"temperature_match": 1.0,
			"size_match":        1.0,
			"milk_match":        1.0,
			"sugar_match":       1.0,
		},
	}
}

// MatchBoost scores how well an item's customization surface fits a user's
// learned preferences. Users without history score neutral so the boost never
// penalizes cold starts.
func MatchBoost(profile *behavior.Profile, item *catalog.Item) Detail {
	if profile == nil || profile.IsNewUser || len(profile.CustomizationPrefs) == 0 || item == nil {
		return neutralDetail()
	}

	d := neutralDetail()

	if pref, _ := profile.PreferredValue(DimTemperature); pref != "" && len(item.Temperatures) > 0 {
		if containsEquivalent(DimTemperature, pref, temperatureStrings(item.Temperatures)) {
			d.Factors["temperature_match"] = temperatureMatch
		} else {
			d.Factors["temperature_match"] = temperatureMismatch
		}
	}

	if pref, _ := profile.PreferredValue(DimCupSize); pref != "" && len(item.Sizes) > 0 {
		if containsEquivalent(DimCupSize, pref, sizeStrings(item.Sizes)) {
			d.Factors["size_match"] = sizeMatch
		} else {
			d.Factors["size_match"] = sizeMismatch
		}
	}

	if pref, _ := profile.PreferredValue(DimMilkType); pref != "" && item.Constraints != nil {
		switch {
		case len(item.Constraints.MilkTypes) > 0:
			if containsEquivalent(DimMilkType, pref, milkStrings(item.Constraints.MilkTypes)) {
				d.Factors["milk_match"] = milkMatch
			} else {
				d.Factors["milk_match"] = milkMismatch
			}
		case Canonical(DimMilkType, pref) != string(catalog.MilkNone):
			// Item takes no milk at all but the user habitually adds some.
			d.Factors["milk_match"] = 0.95
		default:
			d.Factors["milk_match"] = 1.05
		}
	}

	if pref, _ := profile.PreferredValue(DimSugarLevel); pref != "" && item.Constraints != nil && len(item.Constraints.SugarLevels) > 0 {
		if containsEquivalent(DimSugarLevel, pref, sugarStrings(item.Constraints.SugarLevels)) {
			d.Factors["sugar_match"] = sugarMatch
		} else {
			d.Factors["sugar_match"] = sugarMismatch
		}
	}

	total := 1.0
	for _, f := range d.Factors {
		total *= f
	}
	if total < BoostFloor {
		total = BoostFloor
	}
	if total > BoostCap {
		total = BoostCap
	}
	d.Total = total
	return d
}

// Suggestion is a ready-to-order customization for one item, with the
// confidence the engine has in it and the resulting price.
type Suggestion struct {
	Customization   catalog.Customization `json:"customization"`
	Confidence      float64               `json:"confidence"`
	Reasons         []string              `json:"reasons,omitempty"`
	Conflicts       []string              `json:"conflicts,omitempty"`
	PriceAdjustment float64               `json:"price_adjustment"`
	FinalPrice      float64               `json:"final_price"`
}

// Preset is a user-saved customization combo. When present it takes precedence
// over learned preferences, falling back per dimension when the item does not
// support the preset value.
type Preset struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Temperature  catalog.Temperature `json:"temperature,omitempty"`
	CupSize      catalog.CupSize    `json:"cup_size,omitempty"`
	SugarLevel   catalog.SugarLevel `json:"sugar_level,omitempty"`
	MilkType     catalog.MilkType   `json:"milk_type,omitempty"`
	ExtraShot    bool               `json:"extra_shot"`
	WhippedCream bool               `json:"whipped_cream"`
}

// Suggest picks a customization value per dimension: preset first, then the
// strongest supported learned preference, then the item default, then the
// first available option. Confidence is the mean of the per-dimension
// confidences, capped for users with no history.
func Suggest(profile *behavior.Profile, preset *Preset, item *catalog.Item) Suggestion {
	s := Suggestion{Confidence: noPrefConfidence}
	if item == nil {
		return s
	}

	var prefs map[string]map[string]float64
	isNew := true
	if profile != nil {
		prefs = profile.CustomizationPrefs
		isNew = profile.IsNewUser
	}

	var confidences []float64

	if v, conf, ok := pickDimension(&s, DimTemperature, presetString(preset, DimTemperature),
		prefs[DimTemperature], temperatureStrings(item.Temperatures), string(defaultTemperature(item))); ok {
		s.Customization.Temperature = catalog.Temperature(v)
		confidences = append(confidences, conf)
	}

	if v, conf, ok := pickDimension(&s, DimCupSize, presetString(preset, DimCupSize),
		prefs[DimCupSize], sizeStrings(item.Sizes), string(catalog.SizeGrande)); ok {
		s.Customization.CupSize = catalog.CupSize(v)
		confidences = append(confidences, conf)
	}

	if item.Constraints != nil {
		if v, conf, ok := pickDimension(&s, DimSugarLevel, presetString(preset, DimSugarLevel),
			prefs[DimSugarLevel], sugarStrings(item.Constraints.SugarLevels), string(item.Constraints.DefaultSugarLevel)); ok {
			s.Customization.SugarLevel = catalog.SugarLevel(v)
			confidences = append(confidences, conf)
		}
		if v, conf, ok := pickDimension(&s, DimMilkType, presetString(preset, DimMilkType),
			prefs[DimMilkType], milkStrings(item.Constraints.MilkTypes), string(item.Constraints.DefaultMilkType)); ok {
			s.Customization.MilkType = catalog.MilkType(v)
			confidences = append(confidences, conf)
		}

		if item.Constraints.SupportsExtraShot {
			if preset != nil && preset.ExtraShot {
				s.Customization.ExtraShot = true
			} else if optionRatio(prefs[DimExtraShot]) > optionThreshold {
				s.Customization.ExtraShot = true
				s.Reasons = append(s.Reasons, "you usually add an extra shot")
			}
		}
		if item.Constraints.SupportsWhippedCream {
			if preset != nil && preset.WhippedCream {
				s.Customization.WhippedCream = true
			} else if optionRatio(prefs[DimWhipped]) > optionThreshold {
				s.Customization.WhippedCream = true
				s.Reasons = append(s.Reasons, "you usually add whipped cream")
			}
		}
	}

	if len(confidences) > 0 {
		sum := 0.0
		for _, c := range confidences {
			sum += c
		}
		s.Confidence = sum / float64(len(confidences))
	}
	if isNew && preset == nil {
		if s.Confidence > newUserConfidence {
			s.Confidence = newUserConfidence
		}
		s.Reasons = []string{"default configuration for new users"}
	}

	s.PriceAdjustment = catalog.PriceAdjustment(s.Customization)
	s.FinalPrice = item.BasePrice + s.PriceAdjustment
	return s
}

// ApplyPreset maps a saved preset onto one item, substituting a supported
// fallback and recording a conflict for every preset value the item rejects.
func ApplyPreset(preset *Preset, item *catalog.Item) Suggestion {
	s := Suggest(nil, preset, item)
	s.Confidence = presetConfidence
	if len(s.Conflicts) > 0 {
		// Partial application still ships, but with reduced confidence so the
		// caller can surface the substitutions.
		s.Confidence = presetConfidence - 0.1*float64(len(s.Conflicts))
		if s.Confidence < fallbackConfidence {
			s.Confidence = fallbackConfidence
		}
	}
	return s
}

// pickDimension resolves one dimension. Returns ok=false when the item does
// not expose the dimension at all.
func pickDimension(s *Suggestion, dim, presetValue string, prefs map[string]float64, available []string, def string) (string, float64, bool) {
	if len(available) == 0 {
		return "", 0, false
	}

	if presetValue != "" {
		if v, ok := matchAvailable(dim, presetValue, available); ok {
			return v, presetConfidence, true
		}
		s.Conflicts = append(s.Conflicts, fmt.Sprintf("%s %s not available for this item", dim, presetValue))
	}

	for _, pv := range sortedByRatio(prefs) {
		if v, ok := matchAvailable(dim, pv.value, available); ok {
			s.Reasons = append(s.Reasons, fmt.Sprintf("you usually pick %s", Canonical(dim, pv.value)))
			return v, pv.ratio, true
		}
	}

	conf := noPrefConfidence
	if len(prefs) > 0 {
		conf = fallbackConfidence
	}
	if def != "" {
		if v, ok := matchAvailable(dim, def, available); ok {
			return v, conf, true
		}
	}
	return available[0], conf, true
}

func matchAvailable(dim, value string, available []string) (string, bool) {
	for _, v := range available {
		if equivalent(dim, value, v) {
			return v, true
		}
	}
	return "", false
}

func presetString(p *Preset, dim string) string {
	if p == nil {
		return ""
	}
	switch dim {
	case DimTemperature:
		return string(p.Temperature)
	case DimCupSize:
		return string(p.CupSize)
	case DimSugarLevel:
		return string(p.SugarLevel)
	case DimMilkType:
		return string(p.MilkType)
	}
	return ""
}

func optionRatio(prefs map[string]float64) float64 {
	if prefs == nil {
		return 0
	}
	return prefs["true"]
}

type rankedValue struct {
	value string
	ratio float64
}

func sortedByRatio(prefs map[string]float64) []rankedValue {
	out := make([]rankedValue, 0, len(prefs))
	for v, r := range prefs {
		out = append(out, rankedValue{value: v, ratio: r})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ratio != out[j].ratio {
			return out[i].ratio > out[j].ratio
		}
		return out[i].value < out[j].value
	})
	return out
}

func defaultTemperature(item *catalog.Item) catalog.Temperature {
	if item.Constraints != nil && item.Constraints.DefaultTemperature != "" {
		return item.Constraints.DefaultTemperature
	}
	return ""
}

func temperatureStrings(in []catalog.Temperature) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func sizeStrings(in []catalog.CupSize) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func milkStrings(in []catalog.MilkType) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func sugarStrings(in []catalog.SugarLevel) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
