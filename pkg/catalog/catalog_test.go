package catalog

import "testing"

func TestPriceAdjustment(t *testing.T) {
	tests := []struct {
		name string
		c    Customization
		want float64
	}{
		{"grande no extras", Customization{CupSize: SizeGrande}, 0},
		{"venti surcharge", Customization{CupSize: SizeVenti}, 4},
		{"tall discount", Customization{CupSize: SizeTall}, -3},
		{"oat milk charge", Customization{CupSize: SizeGrande, MilkType: MilkOat}, 3},
		{"coconut milk charge", Customization{MilkType: MilkCoconut}, 3},
		{"extra shot", Customization{ExtraShot: true}, 4},
		{"venti oat extra shot", Customization{CupSize: SizeVenti, MilkType: MilkOat, ExtraShot: true}, 11},
		{"tall whole milk", Customization{CupSize: SizeTall, MilkType: MilkWhole}, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriceAdjustment(tt.c); got != tt.want {
				t.Errorf("PriceAdjustment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFinalPrice(t *testing.T) {
	got := FinalPrice(35, Customization{CupSize: SizeVenti, MilkType: MilkOat})
	if got != 42 {
		t.Errorf("FinalPrice() = %v, want 42", got)
	}
}

func TestCatalogLookups(t *testing.T) {
	c := New(DefaultMenu())

	item, ok := c.BySKU("COF003")
	if !ok {
		t.Fatal("expected COF003 in default menu")
	}
	if item.Name != "Caffe Latte" {
		t.Errorf("unexpected name %q", item.Name)
	}

	if _, ok := c.BySKU("NOPE"); ok {
		t.Error("unknown SKU should not resolve")
	}

	coffee := c.ByCategory(CategoryCoffee)
	if len(coffee) == 0 {
		t.Fatal("expected coffee items")
	}
	for _, it := range coffee {
		if it.Category != CategoryCoffee {
			t.Errorf("ByCategory returned %s item %s", it.Category, it.SKU)
		}
	}
}

func TestSimilarRanksSharedCategoryAndTags(t *testing.T) {
	c := New(DefaultMenu())

	similar := c.Similar("COF003", 4)
	if len(similar) != 4 {
		t.Fatalf("expected 4 similar items, got %d", len(similar))
	}
	for _, s := range similar {
		if s.SKU == "COF003" {
			t.Error("item should not be similar to itself")
		}
	}
	// Flat White shares category plus classic and creamy tags with the
	// latte, so it must beat any non-coffee candidate.
	if similar[0].Category != CategoryCoffee {
		t.Errorf("top similar item should be a coffee, got %s", similar[0].SKU)
	}

	if got := c.Similar("NOPE", 4); got != nil {
		t.Errorf("unknown SKU should yield nil, got %v", got)
	}
}
