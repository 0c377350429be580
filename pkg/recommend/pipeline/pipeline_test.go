package pipeline

import (
	"testing"
	"time"

	"mobile-order-be/pkg/catalog"
	"mobile-order-be/pkg/recommend/behavior"
	"mobile-order-be/pkg/recommend/decay"
	"mobile-order-be/pkg/recommend/experiment"
	"mobile-order-be/pkg/recommend/rules"
	"mobile-order-be/pkg/recommend/session"
)

func testEngine() *Engine {
	return NewEngine(behavior.NewAnalyzer(decay.DefaultConfig()))
}

func testItems() (*catalog.Item, *catalog.Item) {
	latte := &catalog.Item{
		SKU:          "COF002",
		Name:         "Latte",
		Category:     catalog.CategoryCoffee,
		BasePrice:    28,
		Tags:         []string{"classic", "creamy"},
		Temperatures: []catalog.Temperature{catalog.TemperatureHot, catalog.TemperatureIced},
		Sizes:        []catalog.CupSize{catalog.SizeTall, catalog.SizeGrande, catalog.SizeVenti},
	}
	matcha := &catalog.Item{
		SKU:          "TEA002",
		Name:         "Matcha Latte",
		Category:     catalog.CategoryTea,
		BasePrice:    30,
		Tags:         []string{"creamy", "low-cal"},
		Temperatures: []catalog.Temperature{catalog.TemperatureHot, catalog.TemperatureIced},
		Sizes:        []catalog.CupSize{catalog.SizeTall, catalog.SizeGrande},
	}
	return latte, matcha
}

func returningProfile(now time.Time) *behavior.Profile {
	a := behavior.NewAnalyzer(decay.DefaultConfig())
	orders := []behavior.OrderEvent{
		{SKU: "COF002", Category: "coffee", Tags: []string{"classic", "creamy"}, Price: 28, Timestamp: now},
		{SKU: "COF002", Category: "coffee", Tags: []string{"classic", "creamy"}, Price: 28, Timestamp: now},
		{SKU: "COF001", Category: "coffee", Tags: []string{"classic"}, Price: 22, Timestamp: now},
	}
	return a.BuildProfile("u1", orders, nil, now)
}

// neutralContext matches no daypart or season rule for the test items.
func neutralContext() rules.Context {
	return rules.Context{Season: rules.SeasonSpring}
}

func TestRankEmbeddingVariantIgnoresBehavior(t *testing.T) {
	latte, matcha := testItems()
	now := time.Now()

	req := Request{
		UserID:  "u1",
		Variant: experiment.VariantEmbedding,
		Context: neutralContext(),
		Profile: returningProfile(now),
	}
	out := testEngine().Rank(req, []Candidate{
		{Item: matcha, BaseScore: 0.9},
		{Item: latte, BaseScore: 0.8},
	})

	if len(out) != 2 {
		t.Fatalf("got %d results, want 2", len(out))
	}
	// Without behavior weighting the higher base score wins even though the
	// user always orders lattes.
	if out[0].Item.SKU != "TEA002" {
		t.Errorf("top item = %s, want TEA002", out[0].Item.SKU)
	}
	if out[0].Factors["behavior"] != 1.0 {
		t.Errorf("behavior factor = %v, want neutral in embedding variant", out[0].Factors["behavior"])
	}
}

func TestRankEmbeddingPlusAppliesBehavior(t *testing.T) {
	latte, matcha := testItems()
	now := time.Now()

	req := Request{
		UserID:  "u1",
		Variant: experiment.VariantEmbeddingPlus,
		Context: neutralContext(),
		Profile: returningProfile(now),
	}
	out := testEngine().Rank(req, []Candidate{
		{Item: matcha, BaseScore: 0.9},
		{Item: latte, BaseScore: 0.8},
	})

	// Repurchase and category affinity outweigh the base score gap.
	if out[0].Item.SKU != "COF002" {
		t.Errorf("top item = %s, want COF002", out[0].Item.SKU)
	}
	if out[0].Factors["behavior"] <= 1.0 {
		t.Errorf("behavior factor = %v, want > 1.0", out[0].Factors["behavior"])
	}
	// Session and customization stay neutral outside hybrid.
	if out[0].Factors["session"] != 1.0 || out[0].Factors["customization"] != 1.0 {
		t.Errorf("session/customization = %v/%v, want neutral",
			out[0].Factors["session"], out[0].Factors["customization"])
	}
}

func TestRankHybridAppliesSession(t *testing.T) {
	latte, matcha := testItems()
	now := time.Now()

	st := session.NewState("s1", "u1", now)
	st.Record(session.Interaction{Kind: session.KindLike, SKU: "TEA002", Tags: []string{"low-cal"}, Category: "tea", Timestamp: now})

	req := Request{
		UserID:  "u1",
		Variant: experiment.VariantHybrid,
		Context: neutralContext(),
		Profile: returningProfile(now),
		Session: st,
	}
	out := testEngine().Rank(req, []Candidate{
		{Item: matcha, BaseScore: 0.8},
		{Item: latte, BaseScore: 0.8},
	})

	var matchaScored ScoredItem
	for _, s := range out {
		if s.Item.SKU == "TEA002" {
			matchaScored = s
		}
	}
	if matchaScored.Factors["session"] <= 1.0 {
		t.Errorf("session factor = %v, want boost from liked tag", matchaScored.Factors["session"])
	}
}

func TestRankNewUserColdStart(t *testing.T) {
	latte, _ := testItems()
	latte.Tags = append(latte.Tags, "popular")

	req := Request{
		UserID:  "fresh",
		Variant: experiment.VariantHybrid,
		Context: neutralContext(),
	}
	out := testEngine().Rank(req, []Candidate{{Item: latte, BaseScore: 0.5}})

	want := 1.15 * 1.1 // popular and classic tags
	if got := out[0].Factors["cold_start"]; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("cold start factor = %v, want %v", got, want)
	}
	if out[0].Explanation == "" {
		t.Error("expected a non-empty explanation")
	}
}

func TestRankTopKAndStability(t *testing.T) {
	now := time.Now()
	candidates := make([]Candidate, 0, 12)
	for i := 0; i < 12; i++ {
		candidates = append(candidates, Candidate{
			Item: &catalog.Item{
				SKU:      string(rune('A' + i)),
				Name:     "Item",
				Category: catalog.CategoryFood,
			},
			BaseScore: 0.5,
		})
	}

	req := Request{
		UserID:  "u1",
		Variant: experiment.VariantEmbedding,
		TopK:    5,
		Context: neutralContext(),
		Profile: returningProfile(now),
	}
	out := testEngine().Rank(req, candidates)

	if len(out) != 5 {
		t.Fatalf("got %d results, want topK=5", len(out))
	}
	// All scores tie, so retrieval order must be preserved.
	for i, s := range out {
		if s.Item.SKU != string(rune('A'+i)) {
			t.Errorf("position %d = %s, want %s", i, s.Item.SKU, string(rune('A'+i)))
		}
	}
}

func TestRankAvoidKeywordDemotes(t *testing.T) {
	latte, matcha := testItems()
	now := time.Now()

	req := Request{
		UserID:        "u1",
		Variant:       experiment.VariantEmbedding,
		Context:       neutralContext(),
		Profile:       returningProfile(now),
		AvoidKeywords: []string{"matcha"},
	}
	out := testEngine().Rank(req, []Candidate{
		{Item: matcha, BaseScore: 0.9},
		{Item: latte, BaseScore: 0.8},
	})

	if out[0].Item.SKU != "COF002" {
		t.Errorf("top item = %s, want COF002 after matcha demotion", out[0].Item.SKU)
	}
	if out[1].Factors["rule"] >= 1.0 {
		t.Errorf("rule factor = %v, want < 1.0 for avoided item", out[1].Factors["rule"])
	}
}

func TestExplanationNamesDominantFactor(t *testing.T) {
	latte, _ := testItems()
	now := time.Now()

	req := Request{
		UserID:  "u1",
		Variant: experiment.VariantEmbeddingPlus,
		Context: neutralContext(),
		Profile: returningProfile(now),
	}
	out := testEngine().Rank(req, []Candidate{{Item: latte, BaseScore: 0.8}})

	if out[0].Explanation == "" || out[0].Explanation == "recommended for you" {
		t.Errorf("explanation = %q, want behavior-derived text", out[0].Explanation)
	}
}
