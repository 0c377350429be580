// Package pipeline composes the scoring stages into a single ranked result:
// base relevance from retrieval, contextual rules, learned behavior, session
// intent, and customization fit, gated by the ranking experiment variant.
package pipeline

import (
	"fmt"
	"sort"

	"mobile-order-be/pkg/catalog"
	"mobile-order-be/pkg/recommend/behavior"
	"mobile-order-be/pkg/recommend/customization"
	"mobile-order-be/pkg/recommend/experiment"
	"mobile-order-be/pkg/recommend/rules"
	"mobile-order-be/pkg/recommend/session"
)

const DefaultTopK = 10

// Candidate is one retrieval hit with its base relevance score, already in
// [0, 1] from vector similarity or popularity fallback.
type Candidate struct {
	Item      *catalog.Item
	BaseScore float64
}

// Request carries everything the ranking needs. Profile, Session, and Preset
// may be nil; missing inputs score neutral rather than failing, so a degraded
// collaborator never takes ranking down with it.
type Request struct {
	UserID        string
	Variant       string
	TopK          int
	Context       rules.Context
	AvoidKeywords []string
	Profile       *behavior.Profile
	Session       *session.State
	Preset        *customization.Preset
}

// ScoredItem is one ranked result with the full factor breakdown that
// produced its score.
type ScoredItem struct {
	Item        *catalog.Item            `json:"item"`
	Score       float64                  `json:"score"`
	BaseScore   float64                  `json:"base_score"`
	Factors     map[string]float64       `json:"factors"`
	RuleFactors map[string]float64       `json:"rule_factors,omitempty"`
	Suggested   customization.Suggestion `json:"suggested_customization"`
	Explanation string                   `json:"explanation"`
}

type Engine struct {
	analyzer *behavior.Analyzer
}

func NewEngine(analyzer *behavior.Analyzer) *Engine {
	return &Engine{analyzer: analyzer}
}

// Rank scores every candidate and returns the top K in descending score
// order. The sort is stable, so candidates that tie keep their retrieval
// order.
func (e *Engine) Rank(req Request, candidates []Candidate) []ScoredItem {
	topK := req.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	newUser := req.Profile == nil || req.Profile.IsNewUser

	scored := make([]ScoredItem, 0, len(candidates))
	for _, c := range candidates {
		if c.Item == nil {
			continue
		}
		s := e.score(req, c, newUser)
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

func (e *Engine) score(req Request, c Candidate, newUser bool) ScoredItem {
	item := c.Item
	factors := map[string]float64{
		"rule":          1.0,
		"behavior":      1.0,
		"session":       1.0,
		"customization": 1.0,
		"cold_start":    1.0,
	}

	rule := rules.Multiplier(item, req.Context, req.AvoidKeywords)
	factors["rule"] = rule.Total

	var behaviorExplanation string
	if useBehavior(req.Variant) {
		b := e.analyzer.OrderBoost(req.Profile, item.SKU, string(item.Category), item.Tags, item.BasePrice)
		factors["behavior"] = b.Total
		behaviorExplanation = b.Explanation
	}

	if useSession(req.Variant) {
		factors["session"] = req.Session.Boost(item.Tags, string(item.Category), item.BasePrice)
		factors["customization"] = customization.MatchBoost(req.Profile, item).Total
	}

	if newUser {
		factors["cold_start"] = rules.ColdStartBoost(item)
	}

	score := c.BaseScore
	for _, f := range factors {
		score *= f
	}

	return ScoredItem{
		Item:        item,
		Score:       score,
		BaseScore:   c.BaseScore,
		Factors:     factors,
		RuleFactors: rule.Factors,
		Suggested:   customization.Suggest(req.Profile, req.Preset, item),
		Explanation: explain(item, factors, rule.Factors, behaviorExplanation),
	}
}

// Behavior weighting runs for the behavior-aware variants; session and
// customization fit only for the full hybrid.
func useBehavior(variant string) bool {
	return variant == experiment.VariantEmbeddingPlus || variant == experiment.VariantHybrid
}

func useSession(variant string) bool {
	return variant == experiment.VariantHybrid
}

// explain names the factor that moved the score furthest from neutral.
func explain(item *catalog.Item, factors, ruleFactors map[string]float64, behaviorExplanation string) string {
	dominant := ""
	distance := 0.0
	for name, f := range factors {
		d := f - 1.0
		if d < 0 {
			d = -d
		}
		if d > distance {
			distance = d
			dominant = name
		}
	}

	switch dominant {
	case "behavior":
		if behaviorExplanation != "" {
			return behaviorExplanation
		}
		return "matches your usual orders"
	case "session":
		return "fits what you are browsing right now"
	case "customization":
		return "can be made just the way you like it"
	case "cold_start":
		if item.HasTag("popular") {
			return "a crowd favorite to start with"
		}
		return "a great pick to get you started"
	case "rule":
		return ruleExplanation(ruleFactors)
	}
	return "recommended for you"
}

func ruleExplanation(ruleFactors map[string]float64) string {
	dominant := ""
	distance := 0.0
	for name, f := range ruleFactors {
		d := f - 1.0
		if d < 0 {
			d = -d
		}
		if d > distance {
			distance = d
			dominant = name
		}
	}
	if text, ok := ruleTexts[dominant]; ok {
		return text
	}
	if dominant != "" {
		return fmt.Sprintf("picked for this moment (%s)", dominant)
	}
	return "recommended for you"
}

var ruleTexts = map[string]string{
	"new_item":              "fresh on the menu",
	"seasonal":              "a seasonal special",
	"morning_coffee":        "a solid way to start the day",
	"morning_breakfast":     "pairs well with breakfast",
	"lunch_food":            "good for a lunch break",
	"afternoon_tea":         "an easy afternoon sip",
	"afternoon_frappuccino": "an afternoon treat",
	"evening_decaf":         "won't keep you up tonight",
	"summer_iced":           "served cold for the season",
	"winter_hot":            "served hot for the season",
	"weekend_discovery":     "something new for the weekend",
	"weather":               "suits the weather today",
}
