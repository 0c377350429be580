// Package behavior builds decayed purchase profiles and turns them into
// ranking boosts.
package behavior

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"mobile-order-be/pkg/recommend/decay"
)

// TopPreferenceValues caps how many values a customization dimension keeps
// in the normalized distribution.
const TopPreferenceValues = 3

type OrderEvent struct {
	SKU           string            `json:"sku"`
	Category      string            `json:"category"`
	Tags          []string          `json:"tags"`
	Price         float64           `json:"price"`
	Customization map[string]string `json:"customization,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}

// ClickEvent covers click and view interactions outside a purchase.
type ClickEvent struct {
	Action    string    `json:"action"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type FavoriteItem struct {
	SKU   string  `json:"sku"`
	Score float64 `json:"score"`
}

// Profile is the decayed view of a user's history. CustomizationPrefs maps
// dimension -> value -> proportion, normalized and truncated to the top
// values per dimension.
type Profile struct {
	UserID             string                        `json:"user_id"`
	IsNewUser          bool                          `json:"is_new_user"`
	OrderCount         int                           `json:"order_count"`
	ClickCount         int                           `json:"click_count"`
	ViewCount          int                           `json:"view_count"`
	SKUScores          map[string]float64            `json:"sku_scores,omitempty"`
	CategoryScores     map[string]float64            `json:"category_scores,omitempty"`
	TagScores          map[string]float64            `json:"tag_scores,omitempty"`
	FavoriteItems      []FavoriteItem                `json:"favorite_items,omitempty"`
	TotalSpend         float64                       `json:"total_spend"`
	AvgOrderPrice      float64                       `json:"avg_order_price"`
	CustomizationPrefs map[string]map[string]float64 `json:"customization_preference,omitempty"`
	LastActive         time.Time                     `json:"last_active,omitzero"`
}

type Analyzer struct {
	decay decay.Config
}

func NewAnalyzer(cfg decay.Config) *Analyzer {
	return &Analyzer{decay: cfg}
}

// BuildProfile aggregates orders and click/view events into a profile as of
// now. Clicks and views carry decay.ClickWeight relative to purchases.
func (a *Analyzer) BuildProfile(userID string, orders []OrderEvent, clicks []ClickEvent, now time.Time) *Profile {
	p := &Profile{
		UserID:             userID,
		SKUScores:          make(map[string]float64),
		CategoryScores:     make(map[string]float64),
		TagScores:          make(map[string]float64),
		CustomizationPrefs: make(map[string]map[string]float64),
	}

	if len(orders) == 0 && len(clicks) == 0 {
		p.IsNewUser = true
		return p
	}

	customizationCounts := make(map[string]map[string]int)
	var priceSum float64
	var priceCount int

	for _, o := range orders {
		w := a.decay.Weight(o.Timestamp, now)
		p.SKUScores[o.SKU] += w
		if o.Category != "" {
			p.CategoryScores[o.Category] += w
		}
		for _, tag := range o.Tags {
			p.TagScores[tag] += w
		}
		for dim, value := range o.Customization {
			if customizationCounts[dim] == nil {
				customizationCounts[dim] = make(map[string]int)
			}
			customizationCounts[dim][value]++
		}
		if o.Price > 0 {
			priceSum += o.Price
			priceCount++
		}
		p.TotalSpend += o.Price
		if o.Timestamp.After(p.LastActive) {
			p.LastActive = o.Timestamp
		}
	}

	for _, c := range clicks {
		w := a.decay.Weight(c.Timestamp, now) * decay.ClickWeight
		if c.Category != "" {
			p.CategoryScores[c.Category] += w
		}
		for _, tag := range c.Tags {
			p.TagScores[tag] += w
		}
		switch c.Action {
		case "view":
			p.ViewCount++
		default:
			p.ClickCount++
		}
		if c.Timestamp.After(p.LastActive) {
			p.LastActive = c.Timestamp
		}
	}

	p.OrderCount = len(orders)
	if priceCount > 0 {
		p.AvgOrderPrice = priceSum / float64(priceCount)
	}
	p.FavoriteItems = topFavorites(p.SKUScores, 5)
	p.CustomizationPrefs = normalizePreferences(customizationCounts)
	return p
}

func topFavorites(scores map[string]float64, limit int) []FavoriteItem {
	out := make([]FavoriteItem, 0, len(scores))
	for sku, score := range scores {
		out = append(out, FavoriteItem{SKU: sku, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].SKU < out[j].SKU
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func normalizePreferences(counts map[string]map[string]int) map[string]map[string]float64 {
	prefs := make(map[string]map[string]float64, len(counts))
	for dim, valueCounts := range counts {
		total := 0
		for _, c := range valueCounts {
			total += c
		}
		if total == 0 {
			continue
		}

		type vc struct {
			value string
			count int
		}
		ordered := make([]vc, 0, len(valueCounts))
		for v, c := range valueCounts {
			ordered = append(ordered, vc{v, c})
		}
		sort.Slice(ordered, func(i, j int) bool {
			if ordered[i].count != ordered[j].count {
				return ordered[i].count > ordered[j].count
			}
			return ordered[i].value < ordered[j].value
		})
		if len(ordered) > TopPreferenceValues {
			ordered = ordered[:TopPreferenceValues]
		}

		prefs[dim] = make(map[string]float64, len(ordered))
		for _, e := range ordered {
			prefs[dim][e.value] = float64(e.count) / float64(total)
		}
	}
	return prefs
}

func (p *Profile) PreferredValue(dimension string) (string, float64) {
	best, bestRatio := "", 0.0
	for v, ratio := range p.CustomizationPrefs[dimension] {
		if ratio > bestRatio || (ratio == bestRatio && (best == "" || v < best)) {
			best, bestRatio = v, ratio
		}
	}
	return best, bestRatio
}

// BoostCap bounds the combined behavior multiplier.
const BoostCap = 2.5

type BoostDetail struct {
	Total       float64            `json:"total_boost"`
	Factors     map[string]float64 `json:"factors"`
	Explanation string             `json:"explanation"`
}

func neutralBoost(explanation string) BoostDetail {
	return BoostDetail{
		Total: 1.0,
		Factors: map[string]float64{
			"repurchase":  1.0,
			"category":    1.0,
			"tag":         1.0,
			"price_match": 1.0,
		},
		Explanation: explanation,
	}
}

// OrderBoost computes the behavior multiplier for a candidate item from the
// profile's decayed purchase history. New users get the neutral 1.0.
func (a *Analyzer) OrderBoost(p *Profile, sku, category string, tags []string, price float64) BoostDetail {
	if p == nil || p.IsNewUser || p.OrderCount == 0 {
		return neutralBoost("no purchase history yet")
	}

	factors := make(map[string]float64, 4)
	var explanations []string

	// Repurchase affinity. The decayed SKU score counts each past order of
	// this item at a quarter weight, capped at doubling.
	repurchase := p.SKUScores[sku] * 0.25
	if repurchase > 1.0 {
		repurchase = 1.0
	}
	factors["repurchase"] = 1.0 + repurchase
	if p.SKUScores[sku] > 0 {
		explanations = append(explanations, "ordered before")
	}

	var totalCat float64
	for _, s := range p.CategoryScores {
		totalCat += s
	}
	factors["category"] = 1.0
	if totalCat > 0 {
		if catScore, ok := p.CategoryScores[category]; ok {
			ratio := catScore / totalCat
			factors["category"] = 1.0 + ratio*0.5
			if ratio > 0.3 {
				explanations = append(explanations, fmt.Sprintf("prefers %s", category))
			}
		}
	}

	var totalTag float64
	for _, s := range p.TagScores {
		totalTag += s
	}
	factors["tag"] = 1.0
	var matched []string
	var matchedScore float64
	for _, tag := range tags {
		if s, ok := p.TagScores[tag]; ok {
			matched = append(matched, tag)
			matchedScore += s
		}
	}
	if totalTag > 0 && len(matched) > 0 {
		ratio := matchedScore / totalTag
		factors["tag"] = 1.0 + ratio*0.4
		if len(matched) > 2 {
			matched = matched[:2]
		}
		explanations = append(explanations, "likes "+strings.Join(matched, ", "))
	}

	factors["price_match"] = 1.0
	if price > 0 && p.AvgOrderPrice > 0 {
		ratio := price / p.AvgOrderPrice
		switch {
		case ratio >= 0.7 && ratio <= 1.5:
			factors["price_match"] = 1.1
		case ratio < 0.7:
			factors["price_match"] = 0.95
		default:
			factors["price_match"] = 0.9
		}
	}

	total := factors["repurchase"] * factors["category"] * factors["tag"] * factors["price_match"]
	if total > BoostCap {
		total = BoostCap
	}

	explanation := "matches purchase history"
	if len(explanations) > 0 {
		explanation = strings.Join(explanations, "; ")
	}
	return BoostDetail{Total: total, Factors: factors, Explanation: explanation}
}
