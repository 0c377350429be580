package catalog

// Canonical customization dimension values. Request payloads may carry
// surface-form synonyms; pkg/recommend/customization resolves those to these
// tokens before any comparison.

type Category string

const (
	CategoryCoffee      Category = "coffee"
	CategoryTea         Category = "tea"
	CategoryFrappuccino Category = "frappuccino"
	CategoryRefresher   Category = "refresher"
	CategoryFood        Category = "food"
)

type Temperature string

const (
	TemperatureHot  Temperature = "HOT"
	TemperatureIced Temperature = "ICED"
)

type CupSize string

const (
	SizeTall   CupSize = "TALL"
	SizeGrande CupSize = "GRANDE"
	SizeVenti  CupSize = "VENTI"
)

type MilkType string

const (
	MilkWhole   MilkType = "WHOLE"
	MilkSkim    MilkType = "SKIM"
	MilkOat     MilkType = "OAT"
	MilkAlmond  MilkType = "ALMOND"
	MilkSoy     MilkType = "SOY"
	MilkCoconut MilkType = "COCONUT"
	MilkNone    MilkType = "NONE"
)

type SugarLevel string

const (
	SugarNone     SugarLevel = "NONE"
	SugarLight    SugarLevel = "LIGHT"
	SugarHalf     SugarLevel = "HALF"
	SugarStandard SugarLevel = "STANDARD"
	SugarExtra    SugarLevel = "EXTRA"
)

// Constraints describes which customization values an item accepts and the
// recommended defaults. Nil slices mean the dimension does not apply.
type Constraints struct {
	SugarLevels  []SugarLevel `json:"sugar_levels,omitempty"`
	MilkTypes    []MilkType   `json:"milk_types,omitempty"`
	Temperatures []Temperature `json:"temperatures,omitempty"`

	SupportsExtraShot    bool `json:"supports_extra_shot"`
	SupportsWhippedCream bool `json:"supports_whipped_cream"`

	DefaultTemperature Temperature `json:"default_temperature,omitempty"`
	DefaultSugarLevel  SugarLevel  `json:"default_sugar_level,omitempty"`
	DefaultMilkType    MilkType    `json:"default_milk_type,omitempty"`
}

type Item struct {
	SKU         string        `json:"sku"`
	Name        string        `json:"name"`
	Category    Category      `json:"category"`
	BasePrice   float64       `json:"base_price"`
	Description string        `json:"description"`
	IsNew       bool          `json:"is_new"`
	IsSeasonal  bool          `json:"is_seasonal"`
	Calories    int           `json:"calories"`
	Temperatures []Temperature `json:"available_temperatures"`
	Sizes       []CupSize     `json:"available_sizes"`
	Tags        []string      `json:"tags"`
	Constraints *Constraints  `json:"customization_constraints,omitempty"`
}

func (i *Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (i *Item) SupportsTemperature(t Temperature) bool {
	for _, have := range i.Temperatures {
		if have == t {
			return true
		}
	}
	return false
}
