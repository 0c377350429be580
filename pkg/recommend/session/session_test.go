package session

import (
	"fmt"
	"math"
	"testing"
	"time"
)

var now = time.Date(2026, 7, 1, 14, 0, 0, 0, time.UTC)

func TestInteractionRingCapped(t *testing.T) {
	s := NewState("sess-1", "u1", now)
	for i := 0; i < InteractionLimit+20; i++ {
		s.Record(Interaction{Kind: KindView, SKU: fmt.Sprintf("SKU%03d", i), Timestamp: now})
	}
	if len(s.Interactions) != InteractionLimit {
		t.Fatalf("ring length = %d, want %d", len(s.Interactions), InteractionLimit)
	}
	// Oldest entries must have been evicted.
	if s.Interactions[0].SKU != "SKU020" {
		t.Errorf("oldest retained = %s, want SKU020", s.Interactions[0].SKU)
	}
}

func TestLikeDislikeMostRecentIntentWins(t *testing.T) {
	s := NewState("sess-1", "u1", now)

	s.Record(Interaction{Kind: KindDislike, Tags: []string{"sweet"}, Timestamp: now})
	if !contains(s.DislikedTags, "sweet") {
		t.Fatal("dislike should add tag to disliked set")
	}

	s.Record(Interaction{Kind: KindLike, Tags: []string{"sweet"}, Timestamp: now})
	if contains(s.DislikedTags, "sweet") {
		t.Error("like should remove tag from disliked set")
	}
	if !contains(s.LikedTags, "sweet") {
		t.Error("like should add tag to liked set")
	}

	s.Record(Interaction{Kind: KindDislike, Tags: []string{"sweet"}, Timestamp: now})
	if contains(s.LikedTags, "sweet") {
		t.Error("dislike should remove tag from liked set")
	}
}

func TestViewTracksCategoryAndPrice(t *testing.T) {
	s := NewState("sess-1", "u1", now)
	s.Record(Interaction{Kind: KindView, Category: "coffee", Price: 30, Timestamp: now})
	s.Record(Interaction{Kind: KindClick, Category: "coffee", Price: 40, Timestamp: now})
	s.Record(Interaction{Kind: KindView, Category: "tea", Price: 35, Timestamp: now})

	if len(s.ViewedCategories) != 2 {
		t.Errorf("viewed categories = %v, want coffee and tea once each", s.ViewedCategories)
	}
	pr := s.PriceRange
	if pr == nil || pr.Min != 30 || pr.Max != 40 || pr.Count != 3 {
		t.Fatalf("price range = %+v", pr)
	}
	if math.Abs(pr.Avg-35) > 1e-9 {
		t.Errorf("avg = %v, want 35", pr.Avg)
	}
}

func TestBoostComposition(t *testing.T) {
	s := NewState("sess-1", "u1", now)
	s.Record(Interaction{Kind: KindLike, Tags: []string{"creamy", "sweet"}, Timestamp: now})
	s.Record(Interaction{Kind: KindView, Category: "coffee", Price: 30, Timestamp: now})
	s.Record(Interaction{Kind: KindView, Category: "coffee", Price: 35, Timestamp: now})
	s.Record(Interaction{Kind: KindView, Category: "coffee", Price: 40, Timestamp: now})

	// Two liked matches, viewed category, price inside observed range:
	// (1 + 2*0.15) * 1.1 * 1.05
	got := s.Boost([]string{"creamy", "sweet"}, "coffee", 35)
	want := 1.3 * 1.1 * 1.05
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("boost = %v, want %v", got, want)
	}
}

func TestBoostDislikedFloor(t *testing.T) {
	s := NewState("sess-1", "u1", now)
	s.Record(Interaction{Kind: KindDislike, Tags: []string{"a", "b", "c", "d"}, Timestamp: now})

	// Four disliked matches would give 1 - 1.2; the penalty floors at 0.3.
	got := s.Boost([]string{"a", "b", "c", "d"}, "tea", 30)
	if math.Abs(got-0.3) > 1e-9 {
		t.Errorf("boost = %v, want 0.3", got)
	}
}

func TestBoostCap(t *testing.T) {
	s := NewState("sess-1", "u1", now)
	var tags []string
	for i := 0; i < 20; i++ {
		tags = append(tags, fmt.Sprintf("tag%d", i))
	}
	s.Record(Interaction{Kind: KindLike, Tags: tags, Timestamp: now})

	got := s.Boost(tags, "coffee", 30)
	if got != BoostCap {
		t.Errorf("boost = %v, want cap %v", got, BoostCap)
	}
}

func TestBoostNilSessionNeutral(t *testing.T) {
	var s *State
	if got := s.Boost([]string{"sweet"}, "coffee", 30); got != 1.0 {
		t.Errorf("nil session boost = %v, want 1.0", got)
	}
}

func TestBoostPriceNeedsThreeObservations(t *testing.T) {
	s := NewState("sess-1", "u1", now)
	s.Record(Interaction{Kind: KindView, Category: "coffee", Price: 30, Timestamp: now})
	s.Record(Interaction{Kind: KindView, Category: "tea", Price: 40, Timestamp: now})

	// Only two price points: the in-range bonus must not apply.
	got := s.Boost(nil, "food", 35)
	if got != 1.0 {
		t.Errorf("boost = %v, want 1.0 with insufficient price samples", got)
	}
}
