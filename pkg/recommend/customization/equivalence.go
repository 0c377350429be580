package customization

import "strings"

// Customization dimension keys, matching the keys recorded on orders.
const (
	DimTemperature = "temperature"
	DimCupSize     = "cup_size"
	DimMilkType    = "milk_type"
	DimSugarLevel  = "sugar_level"
	DimExtraShot   = "extra_shot"
	DimWhipped     = "whipped_cream"
)

// synonyms maps surface forms to the canonical token per dimension. Values
// already in canonical form pass through untouched.
var synonyms = map[string]map[string]string{
	DimTemperature: {
		"COLD":      "ICED",
		"ICE":       "ICED",
		"LESS_ICE":  "ICED",
		"NO_ICE":    "ICED",
		"WARM":      "HOT",
		"EXTRA_HOT": "HOT",
	},
	DimCupSize: {
		"SMALL":  "TALL",
		"MEDIUM": "GRANDE",
		"LARGE":  "VENTI",
	},
	DimMilkType: {
		"WHOLE_MILK":   "WHOLE",
		"SKIMMED":      "SKIM",
		"NONFAT":       "SKIM",
		"OATMILK":      "OAT",
		"OAT_MILK":     "OAT",
		"ALMOND_MILK":  "ALMOND",
		"SOY_MILK":     "SOY",
		"COCONUT_MILK": "COCONUT",
		"NO_MILK":      "NONE",
	},
	DimSugarLevel: {
		"SUGAR_FREE": "NONE",
		"ZERO":       "NONE",
		"LESS":       "LIGHT",
		"FULL":       "STANDARD",
		"REGULAR":    "STANDARD",
		"MORE":       "EXTRA",
	},
}

// Canonical resolves a surface form to the dimension's canonical token.
// Unknown values pass through uppercased so exotic catalog values still
// compare consistently.
func Canonical(dimension, value string) string {
	upper := strings.ToUpper(strings.TrimSpace(value))
	if table, ok := synonyms[dimension]; ok {
		if canonical, ok := table[upper]; ok {
			return canonical
		}
	}
	return upper
}

func equivalent(dimension, a, b string) bool {
	return Canonical(dimension, a) == Canonical(dimension, b)
}

func containsEquivalent(dimension, value string, available []string) bool {
	for _, v := range available {
		if equivalent(dimension, value, v) {
			return true
		}
	}
	return false
}
