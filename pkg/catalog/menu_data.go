package catalog

var (
	allSizes     = []CupSize{SizeTall, SizeGrande, SizeVenti}
	bothTemps    = []Temperature{TemperatureHot, TemperatureIced}
	icedOnly     = []Temperature{TemperatureIced}
	hotOnly      = []Temperature{TemperatureHot}
	coffeeMilks  = []MilkType{MilkWhole, MilkSkim, MilkOat, MilkAlmond}
	allMilks     = []MilkType{MilkWhole, MilkSkim, MilkOat, MilkAlmond, MilkSoy, MilkCoconut}
	basicSugars  = []SugarLevel{SugarNone, SugarLight, SugarStandard}
	allSugars    = []SugarLevel{SugarNone, SugarLight, SugarHalf, SugarStandard, SugarExtra}
)

// DefaultMenu returns the seed catalog. cmd/seed writes these rows to the
// database; the in-process catalog serves them directly.
func DefaultMenu() []Item {
	return []Item{
		{
			SKU: "COF001", Name: "Caffe Americano", Category: CategoryCoffee, BasePrice: 30,
			Description: "Espresso shots topped with hot water for a light layer of crema.",
			Calories:    15, Temperatures: bothTemps, Sizes: allSizes,
			Tags: []string{"classic", "low-cal", "energizing"},
			Constraints: &Constraints{
				SugarLevels: basicSugars, MilkTypes: coffeeMilks, Temperatures: bothTemps,
				SupportsExtraShot: true, SupportsWhippedCream: false,
				DefaultTemperature: TemperatureHot, DefaultSugarLevel: SugarNone, DefaultMilkType: MilkNone,
			},
		},
		{
			SKU: "COF002", Name: "Flat White", Category: CategoryCoffee, BasePrice: 38,
			Description: "Ristretto shots with steamed whole milk, smooth and velvety.",
			Calories:    170, Temperatures: bothTemps, Sizes: allSizes,
			Tags: []string{"classic", "creamy"},
			Constraints: &Constraints{
				SugarLevels: basicSugars, MilkTypes: coffeeMilks, Temperatures: bothTemps,
				SupportsExtraShot: true, SupportsWhippedCream: false,
				DefaultTemperature: TemperatureHot, DefaultSugarLevel: SugarNone, DefaultMilkType: MilkWhole,
			},
		},
		{
			SKU: "COF003", Name: "Caffe Latte", Category: CategoryCoffee, BasePrice: 35,
			Description: "Espresso with steamed milk and a light layer of foam.",
			Calories:    190, Temperatures: bothTemps, Sizes: allSizes,
			Tags: []string{"classic", "creamy", "popular"},
			Constraints: &Constraints{
				SugarLevels: allSugars, MilkTypes: allMilks, Temperatures: bothTemps,
				SupportsExtraShot: true, SupportsWhippedCream: true,
				DefaultTemperature: TemperatureHot, DefaultSugarLevel: SugarNone, DefaultMilkType: MilkWhole,
			},
		},
		{
			SKU: "COF004", Name: "Caramel Macchiato", Category: CategoryCoffee, BasePrice: 39,
			Description: "Vanilla-flavored milk marked with espresso and caramel drizzle.",
			Calories:    250, Temperatures: bothTemps, Sizes: allSizes,
			Tags: []string{"sweet", "popular", "creamy"},
			Constraints: &Constraints{
				SugarLevels: allSugars, MilkTypes: allMilks, Temperatures: bothTemps,
				SupportsExtraShot: true, SupportsWhippedCream: true,
				DefaultTemperature: TemperatureIced, DefaultSugarLevel: SugarStandard, DefaultMilkType: MilkWhole,
			},
		},
		{
			SKU: "COF005", Name: "Cold Brew", Category: CategoryCoffee, BasePrice: 33,
			Description: "Slow-steeped for 20 hours, naturally sweet and smooth.",
			Calories:    5, Temperatures: icedOnly, Sizes: allSizes,
			Tags: []string{"low-cal", "energizing", "icy"},
			Constraints: &Constraints{
				SugarLevels: basicSugars, MilkTypes: coffeeMilks, Temperatures: icedOnly,
				SupportsExtraShot: false, SupportsWhippedCream: false,
				DefaultTemperature: TemperatureIced, DefaultSugarLevel: SugarNone, DefaultMilkType: MilkNone,
			},
		},
		{
			SKU: "COF006", Name: "Decaf Caffe Latte", Category: CategoryCoffee, BasePrice: 35,
			Description: "The classic latte made with decaffeinated espresso.",
			Calories:    190, Temperatures: bothTemps, Sizes: allSizes,
			Tags: []string{"decaf", "creamy", "classic"},
			Constraints: &Constraints{
				SugarLevels: allSugars, MilkTypes: allMilks, Temperatures: bothTemps,
				SupportsExtraShot: false, SupportsWhippedCream: true,
				DefaultTemperature: TemperatureHot, DefaultSugarLevel: SugarNone, DefaultMilkType: MilkWhole,
			},
		},
		{
			SKU: "COF007", Name: "Oat Milk Honey Latte", Category: CategoryCoffee, BasePrice: 41,
			Description: "Blonde espresso with creamy oat milk and a touch of honey.",
			IsNew:       true, Calories: 270, Temperatures: bothTemps, Sizes: allSizes,
			Tags: []string{"sweet", "creamy", "plant-based"},
			Constraints: &Constraints{
				SugarLevels: allSugars, MilkTypes: []MilkType{MilkOat, MilkWhole, MilkAlmond}, Temperatures: bothTemps,
				SupportsExtraShot: true, SupportsWhippedCream: false,
				DefaultTemperature: TemperatureHot, DefaultSugarLevel: SugarLight, DefaultMilkType: MilkOat,
			},
		},
		{
			SKU: "COF008", Name: "Pumpkin Spice Latte", Category: CategoryCoffee, BasePrice: 42,
			Description: "Espresso, steamed milk and pumpkin spice sauce, an autumn favorite.",
			IsSeasonal:  true, Calories: 380, Temperatures: bothTemps, Sizes: allSizes,
			Tags: []string{"sweet", "warming", "seasonal"},
			Constraints: &Constraints{
				SugarLevels: allSugars, MilkTypes: allMilks, Temperatures: bothTemps,
				SupportsExtraShot: true, SupportsWhippedCream: true,
				DefaultTemperature: TemperatureHot, DefaultSugarLevel: SugarStandard, DefaultMilkType: MilkWhole,
			},
		},
		{
			SKU: "TEA001", Name: "Jasmine Green Tea", Category: CategoryTea, BasePrice: 28,
			Description: "Fragrant jasmine blossoms scenting delicate green tea.",
			Calories:    0, Temperatures: bothTemps, Sizes: allSizes,
			Tags: []string{"decaf", "refreshing", "low-cal", "classic"},
			Constraints: &Constraints{
				SugarLevels: basicSugars, Temperatures: bothTemps,
				DefaultTemperature: TemperatureHot, DefaultSugarLevel: SugarNone,
			},
		},
		{
			SKU: "TEA002", Name: "Iced Black Tea Latte", Category: CategoryTea, BasePrice: 32,
			Description: "Bold black tea shaken with milk over ice.",
			Calories:    150, Temperatures: icedOnly, Sizes: allSizes,
			Tags: []string{"creamy", "refreshing", "icy"},
			Constraints: &Constraints{
				SugarLevels: allSugars, MilkTypes: allMilks, Temperatures: icedOnly,
				DefaultTemperature: TemperatureIced, DefaultSugarLevel: SugarLight, DefaultMilkType: MilkWhole,
			},
		},
		{
			SKU: "TEA003", Name: "Chamomile Blend", Category: CategoryTea, BasePrice: 27,
			Description: "Soothing caffeine-free herbal infusion.",
			Calories:    0, Temperatures: hotOnly, Sizes: allSizes,
			Tags: []string{"decaf", "warming", "low-cal"},
			Constraints: &Constraints{
				SugarLevels: basicSugars, Temperatures: hotOnly,
				DefaultTemperature: TemperatureHot, DefaultSugarLevel: SugarNone,
			},
		},
		{
			SKU: "TEA004", Name: "Peach Oolong Tea", Category: CategoryTea, BasePrice: 30,
			Description: "Roasted oolong brightened with ripe peach.",
			IsNew:       true, Calories: 80, Temperatures: bothTemps, Sizes: allSizes,
			Tags: []string{"fruity", "refreshing", "popular"},
			Constraints: &Constraints{
				SugarLevels: allSugars, Temperatures: bothTemps,
				DefaultTemperature: TemperatureIced, DefaultSugarLevel: SugarLight,
			},
		},
		{
			SKU: "FRA001", Name: "Mocha Frappuccino", Category: CategoryFrappuccino, BasePrice: 36,
			Description: "Coffee, milk and mocha sauce blended with ice.",
			Calories:    370, Temperatures: icedOnly, Sizes: allSizes,
			Tags: []string{"sweet", "icy", "popular"},
			Constraints: &Constraints{
				SugarLevels: allSugars, MilkTypes: allMilks, Temperatures: icedOnly,
				SupportsExtraShot: true, SupportsWhippedCream: true,
				DefaultTemperature: TemperatureIced, DefaultSugarLevel: SugarStandard, DefaultMilkType: MilkWhole,
			},
		},
		{
			SKU: "FRA002", Name: "Strawberry Cream Frappuccino", Category: CategoryFrappuccino, BasePrice: 37,
			Description: "Strawberry puree blended with milk and ice, no coffee.",
			Calories:    340, Temperatures: icedOnly, Sizes: allSizes,
			Tags: []string{"sweet", "fruity", "decaf", "icy"},
			Constraints: &Constraints{
				SugarLevels: allSugars, MilkTypes: allMilks, Temperatures: icedOnly,
				SupportsWhippedCream: true,
				DefaultTemperature:   TemperatureIced, DefaultSugarLevel: SugarStandard, DefaultMilkType: MilkWhole,
			},
		},
		{
			SKU: "FRA003", Name: "Matcha Cream Frappuccino", Category: CategoryFrappuccino, BasePrice: 38,
			Description: "Earthy matcha blended with milk and ice.",
			IsSeasonal:  true, Calories: 320, Temperatures: icedOnly, Sizes: allSizes,
			Tags: []string{"sweet", "decaf", "icy", "seasonal"},
			Constraints: &Constraints{
				SugarLevels: allSugars, MilkTypes: allMilks, Temperatures: icedOnly,
				SupportsWhippedCream: true,
				DefaultTemperature:   TemperatureIced, DefaultSugarLevel: SugarHalf, DefaultMilkType: MilkWhole,
			},
		},
		{
			SKU: "REF001", Name: "Strawberry Acai Refresher", Category: CategoryRefresher, BasePrice: 31,
			Description: "Strawberry and acai notes shaken with ice and real fruit.",
			Calories:    90, Temperatures: icedOnly, Sizes: allSizes,
			Tags: []string{"fruity", "refreshing", "low-cal", "icy"},
			Constraints: &Constraints{
				SugarLevels: basicSugars, Temperatures: icedOnly,
				DefaultTemperature: TemperatureIced, DefaultSugarLevel: SugarLight,
			},
		},
		{
			SKU: "REF002", Name: "Mango Dragonfruit Refresher", Category: CategoryRefresher, BasePrice: 31,
			Description: "Tropical mango and dragonfruit over ice.",
			IsNew:       true, Calories: 100, Temperatures: icedOnly, Sizes: allSizes,
			Tags: []string{"fruity", "refreshing", "icy", "popular"},
			Constraints: &Constraints{
				SugarLevels: basicSugars, Temperatures: icedOnly,
				DefaultTemperature: TemperatureIced, DefaultSugarLevel: SugarLight,
			},
		},
		{
			SKU: "FOO001", Name: "Butter Croissant", Category: CategoryFood, BasePrice: 18,
			Description: "Flaky, golden-baked classic croissant.",
			Calories:    260, Sizes: nil, Temperatures: nil,
			Tags: []string{"breakfast", "classic"},
		},
		{
			SKU: "FOO002", Name: "Ham & Cheese Panini", Category: CategoryFood, BasePrice: 26,
			Description: "Smoked ham and melted cheese pressed in ciabatta.",
			Calories:    380, Sizes: nil, Temperatures: nil,
			Tags: []string{"breakfast", "savory", "warming"},
		},
		{
			SKU: "FOO003", Name: "Blueberry Muffin", Category: CategoryFood, BasePrice: 20,
			Description: "Moist muffin studded with wild blueberries.",
			Calories:    350, Sizes: nil, Temperatures: nil,
			Tags: []string{"breakfast", "sweet", "popular"},
		},
		{
			SKU: "FOO004", Name: "Chicken Caesar Wrap", Category: CategoryFood, BasePrice: 29,
			Description: "Grilled chicken, romaine and caesar dressing in a wrap.",
			Calories:    420, Sizes: nil, Temperatures: nil,
			Tags: []string{"savory", "lunch"},
		},
	}
}
