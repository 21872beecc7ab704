package feed

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

func suggestionUsers(ids ...int64) []models.User {
	out := make([]models.User, len(ids))
	for i, id := range ids {
		out[i] = fakeUser(id)
	}
	return out
}

// immediateScheduler runs refills synchronously so tests stay deterministic.
func immediateScheduler(d time.Duration, fn func()) {
	fn()
}

func TestSuggestionRefillFiresExactlyOnceAtThreshold(t *testing.T) {
	var sourceCalls atomic.Int64
	source := func(ctx context.Context) ([]models.User, error) {
		sourceCalls.Add(1)
		return suggestionUsers(11, 12, 13, 14, 15), nil
	}

	box := NewSuggestionBox(source, 5, 3, 500*time.Millisecond)
	box.SetScheduler(immediateScheduler)
	require.NoError(t, box.Fill(context.Background()))
	require.Equal(t, 5, box.Len())
	require.Equal(t, int64(1), sourceCalls.Load())

	// 5 -> 4: above threshold, no refill.
	box.Remove(11)
	assert.Equal(t, 4, box.Len())
	assert.Equal(t, int64(1), sourceCalls.Load())

	// 4 -> 3: hits the threshold, exactly one scheduled refill.
	box.Remove(12)
	assert.Equal(t, int64(2), sourceCalls.Load())
	assert.Equal(t, 5, box.Len(), "refill replaces the collection")
}

func TestSuggestionRefillDoesNotStackWhilePending(t *testing.T) {
	var sourceCalls atomic.Int64
	source := func(ctx context.Context) ([]models.User, error) {
		sourceCalls.Add(1)
		return suggestionUsers(21, 22, 23, 24, 25), nil
	}

	box := NewSuggestionBox(source, 5, 3, time.Millisecond)
	var pending []func()
	box.SetScheduler(func(d time.Duration, fn func()) {
		pending = append(pending, fn)
	})
	require.NoError(t, box.Fill(context.Background()))
	require.Equal(t, int64(1), sourceCalls.Load())

	box.Remove(21)
	box.Remove(22) // crosses the threshold, schedules one refill
	box.Remove(23) // still below threshold while a refill is pending
	require.Len(t, pending, 1, "pending refill must not stack")

	pending[0]()
	assert.Equal(t, int64(2), sourceCalls.Load())
	assert.Equal(t, 5, box.Len())
}

func TestSuggestionFillReplacesDeduplicatesAndCaps(t *testing.T) {
	source := func(ctx context.Context) ([]models.User, error) {
		users := suggestionUsers(1, 2, 3, 4, 5, 6, 7)
		users[1].UserID = 1 // duplicate id from the source
		return users, nil
	}

	box := NewSuggestionBox(source, 5, 3, time.Millisecond)
	box.SetScheduler(immediateScheduler)
	require.NoError(t, box.Fill(context.Background()))

	got := box.Users()
	require.Len(t, got, 5, "capped at the configured limit")
	seen := IDSet{}
	for _, u := range got {
		assert.False(t, seen.Contains(u.UserID), "no duplicate ids")
		seen.Add(u.UserID)
	}
}
