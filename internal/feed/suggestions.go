package feed

import (
	"context"
	"sync"
	"time"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
	"github.com/hoangNguyenDev3/WanderSphere/internal/observability"
)

// SuggestionSource produces a fresh, already-filtered suggestion list
// (viewer and followed users excluded).
type SuggestionSource func(ctx context.Context) ([]models.User, error)

// Scheduler defers fn by d. The default wraps time.AfterFunc; tests
// inject a synchronous one.
type Scheduler func(d time.Duration, fn func())

// SuggestionBox maintains the "suggested for you" list. Removing a
// suggestion (after following them) at or below the threshold schedules
// exactly one delayed refill that replaces the collection; the delay
// debounces against backend read-after-write lag.
type SuggestionBox struct {
	mu            sync.Mutex
	users         []models.User
	limit         int
	threshold     int
	delay         time.Duration
	source        SuggestionSource
	schedule      Scheduler
	refillPending bool

	log *observability.Logger
}

// NewSuggestionBox creates an empty box; call Fill to populate it.
func NewSuggestionBox(source SuggestionSource, limit, threshold int, delay time.Duration) *SuggestionBox {
	return &SuggestionBox{
		limit:     limit,
		threshold: threshold,
		delay:     delay,
		source:    source,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
		log: observability.Component("suggestions"),
	}
}

// SetScheduler replaces the refill scheduler. Intended for tests.
func (b *SuggestionBox) SetScheduler(s Scheduler) {
	b.schedule = s
}

// Fill replaces the collection from the source, de-duplicating by id and
// capping at the configured limit.
func (b *SuggestionBox) Fill(ctx context.Context) error {
	users, err := b.source(ctx)
	if err != nil {
		return err
	}

	seen := make(IDSet, len(users))
	fresh := make([]models.User, 0, b.limit)
	for _, u := range users {
		if seen.Contains(u.UserID) {
			continue
		}
		seen.Add(u.UserID)
		fresh = append(fresh, u)
		if len(fresh) == b.limit {
			break
		}
	}

	b.mu.Lock()
	b.users = fresh
	b.mu.Unlock()
	return nil
}

// Users returns a copy of the current suggestions.
func (b *SuggestionBox) Users() []models.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.User, len(b.users))
	copy(out, b.users)
	return out
}

// Len returns the current suggestion count.
func (b *SuggestionBox) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.users)
}

// Remove drops a suggestion, typically after the viewer followed them.
// When the remaining count is at or below the threshold it schedules
// exactly one refill; further removals while one is pending do not stack.
func (b *SuggestionBox) Remove(userID int64) {
	b.mu.Lock()
	kept := b.users[:0:0]
	for _, u := range b.users {
		if u.UserID != userID {
			kept = append(kept, u)
		}
	}
	b.users = kept

	needRefill := len(b.users) <= b.threshold && !b.refillPending
	if needRefill {
		b.refillPending = true
	}
	b.mu.Unlock()

	if !needRefill {
		return
	}

	b.schedule(b.delay, func() {
		defer func() {
			b.mu.Lock()
			b.refillPending = false
			b.mu.Unlock()
		}()
		if err := b.Fill(context.Background()); err != nil {
			b.log.Warn("suggestion refill failed", "error", err)
		}
	})
}
