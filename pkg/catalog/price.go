package catalog

// Price deltas for customization choices, applied on top of the base price.
const (
	VentiSurcharge    = 4.0
	TallDiscount      = 3.0
	PremiumMilkCharge = 3.0
	ExtraShotCharge   = 4.0
)

type Customization struct {
	Temperature  Temperature `json:"temperature,omitempty"`
	CupSize      CupSize     `json:"cup_size,omitempty"`
	SugarLevel   SugarLevel  `json:"sugar_level,omitempty"`
	MilkType     MilkType    `json:"milk_type,omitempty"`
	ExtraShot    bool        `json:"extra_shot"`
	WhippedCream bool        `json:"whipped_cream"`
}

// PriceAdjustment returns the signed delta a customization adds to an item's
// base price.
func PriceAdjustment(c Customization) float64 {
	var delta float64
	switch c.CupSize {
	case SizeVenti:
		delta += VentiSurcharge
	case SizeTall:
		delta -= TallDiscount
	}
	if c.MilkType == MilkOat || c.MilkType == MilkCoconut {
		delta += PremiumMilkCharge
	}
	if c.ExtraShot {
		delta += ExtraShotCharge
	}
	return delta
}

func FinalPrice(basePrice float64, c Customization) float64 {
	return basePrice + PriceAdjustment(c)
}
