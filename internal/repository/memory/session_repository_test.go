package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-order-be/pkg/recommend/session"
)

func TestConcurrentUpdatesKeepEveryInteraction(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	repo.Save(session.NewState("s1", "u1", time.Now()))

	const workers = 24
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, found := repo.Update("s1", func(st *session.State) {
				st.Record(session.Interaction{
					Kind:     session.KindView,
					Category: fmt.Sprintf("category-%d", i),
					Price:    10 + float64(i),
				})
			})
			assert.True(t, found)
		}(i)
	}
	wg.Wait()

	state, found := repo.Get("s1")
	require.True(t, found)
	assert.Len(t, state.Interactions, workers)
	assert.Len(t, state.ViewedCategories, workers)
	require.NotNil(t, state.PriceRange)
	assert.Equal(t, workers, state.PriceRange.Count)
}

func TestGetReturnsSnapshot(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	state := session.NewState("s1", "u1", time.Now())
	state.Record(session.Interaction{Kind: session.KindLike, Tags: []string{"sweet"}})
	repo.Save(state)

	snap, found := repo.Get("s1")
	require.True(t, found)
	snap.LikedTags = append(snap.LikedTags, "bitter")
	snap.Interactions = nil

	stored, found := repo.Get("s1")
	require.True(t, found)
	assert.Equal(t, []string{"sweet"}, stored.LikedTags)
	assert.Len(t, stored.Interactions, 1)
}

func TestUpdateUnknownSessionNotFound(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	updated, found := repo.Update("missing", func(st *session.State) {
		st.Record(session.Interaction{Kind: session.KindView})
	})
	assert.False(t, found)
	assert.Nil(t, updated)
}
