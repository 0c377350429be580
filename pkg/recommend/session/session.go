// Package session tracks in-session interactions and derives a real-time
// preference boost from them.
package session

import "time"

const (
	// InteractionLimit bounds the per-session interaction ring; the
	// oldest entries are evicted first.
	InteractionLimit = 50

	// BoostCap bounds the combined session multiplier.
	BoostCap = 2.5
)

const (
	KindLike    = "like"
	KindDislike = "dislike"
	KindView    = "view"
	KindClick   = "click"
)

type Interaction struct {
	Kind      string    `json:"type"`
	SKU       string    `json:"sku,omitempty"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Price     float64   `json:"price,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type PriceRange struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// State is one browsing session's realtime preference memory. It is not
// safe for concurrent use on its own; the session repository mutates it
// under a per-session lock and hands callers snapshot copies via Clone.
type State struct {
	ID               string        `json:"session_id"`
	UserID           string        `json:"user_id"`
	CreatedAt        time.Time     `json:"created_at"`
	LastActive       time.Time     `json:"last_active"`
	Interactions     []Interaction `json:"interactions"`
	LikedTags        []string      `json:"liked_tags"`
	DislikedTags     []string      `json:"disliked_tags"`
	ViewedCategories []string      `json:"viewed_categories"`
	PriceRange       *PriceRange   `json:"price_range,omitempty"`
}

func NewState(id, userID string, now time.Time) *State {
	return &State{
		ID:         id,
		UserID:     userID,
		CreatedAt:  now,
		LastActive: now,
	}
}

// Clone returns a deep copy that can be read without holding the lock that
// guards the original.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := *s
	out.Interactions = append([]Interaction(nil), s.Interactions...)
	out.LikedTags = append([]string(nil), s.LikedTags...)
	out.DislikedTags = append([]string(nil), s.DislikedTags...)
	out.ViewedCategories = append([]string(nil), s.ViewedCategories...)
	if s.PriceRange != nil {
		pr := *s.PriceRange
		out.PriceRange = &pr
	}
	return &out
}

// Record applies one interaction. Likes and dislikes move the item's tags
// between the preference sets so the most recent intent wins.
func (s *State) Record(in Interaction) {
	if in.Timestamp.IsZero() {
		in.Timestamp = time.Now()
	}
	s.LastActive = in.Timestamp

	s.Interactions = append(s.Interactions, in)
	if len(s.Interactions) > InteractionLimit {
		s.Interactions = s.Interactions[len(s.Interactions)-InteractionLimit:]
	}

	switch in.Kind {
	case KindLike:
		for _, tag := range in.Tags {
			s.LikedTags = appendUnique(s.LikedTags, tag)
			s.DislikedTags = remove(s.DislikedTags, tag)
		}
	case KindDislike:
		for _, tag := range in.Tags {
			s.DislikedTags = appendUnique(s.DislikedTags, tag)
			s.LikedTags = remove(s.LikedTags, tag)
		}
	case KindView, KindClick:
		if in.Category != "" {
			s.ViewedCategories = appendUnique(s.ViewedCategories, in.Category)
		}
		if in.Price > 0 {
			s.observePrice(in.Price)
		}
	}
}

func (s *State) observePrice(price float64) {
	if s.PriceRange == nil {
		s.PriceRange = &PriceRange{Min: price, Max: price, Avg: price, Count: 1}
		return
	}
	pr := s.PriceRange
	if price < pr.Min {
		pr.Min = price
	}
	if price > pr.Max {
		pr.Max = price
	}
	pr.Avg = (pr.Avg*float64(pr.Count) + price) / float64(pr.Count+1)
	pr.Count++
}

// Boost scores a candidate against the session's realtime preferences,
// clamped to [0, BoostCap].
func (s *State) Boost(tags []string, category string, price float64) float64 {
	if s == nil {
		return 1.0
	}

	boost := 1.0

	liked := 0
	for _, tag := range tags {
		if contains(s.LikedTags, tag) {
			liked++
		}
	}
	boost *= 1.0 + float64(liked)*0.15

	disliked := 0
	for _, tag := range tags {
		if contains(s.DislikedTags, tag) {
			disliked++
		}
	}
	penalty := 1.0 - float64(disliked)*0.3
	if penalty < 0.3 {
		penalty = 0.3
	}
	boost *= penalty

	if contains(s.ViewedCategories, category) {
		boost *= 1.1
	}

	if s.PriceRange != nil && s.PriceRange.Count >= 3 &&
		price >= s.PriceRange.Min && price <= s.PriceRange.Max {
		boost *= 1.05
	}

	if boost > BoostCap {
		boost = BoostCap
	}
	if boost < 0 {
		boost = 0
	}
	return boost
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func appendUnique(list []string, v string) []string {
	if contains(list, v) {
		return list
	}
	return append(list, v)
}

func remove(list []string, v string) []string {
	out := list[:0]
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
