package pages

import (
	"context"
	"math/rand"

	"github.com/hoangNguyenDev3/WanderSphere/internal/feed"
	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

// SuggestionSource builds the "suggested for you" source: it probes a
// bounded range of user ids in random order and keeps profiles that
// exist, are not the viewer and are not already followed. The probe is a
// stopgap for a backend without a suggestion endpoint.
func (s *Service) SuggestionSource() feed.SuggestionSource {
	return func(ctx context.Context) ([]models.User, error) {
		viewer, ok := s.session.Viewer()
		if !ok {
			return nil, models.NewUnauthorizedError("not logged in")
		}

		followingIDs, err := s.api.GetFollowing(ctx, viewer.UserID)
		if err != nil {
			return nil, err
		}
		followed := feed.NewIDSet(followingIDs)

		ids := make([]int64, s.cfg.SuggestionProbeMaxID)
		for i := range ids {
			ids[i] = int64(i + 1)
		}
		rand.Shuffle(len(ids), func(i, j int) {
			ids[i], ids[j] = ids[j], ids[i]
		})

		probed := feed.Assemble(ctx, ids,
			func(ctx context.Context, id int64) (*models.User, error) {
				return s.api.GetProfile(ctx, id)
			},
			func(id int64) *models.User { return nil })

		var out []models.User
		for _, u := range probed {
			if u == nil || u.UserID == viewer.UserID || followed.Contains(u.UserID) {
				continue
			}
			out = append(out, *u)
		}
		return out, nil
	}
}

// Suggestions builds and fills the suggestion box from configuration.
func (s *Service) Suggestions(ctx context.Context) (*feed.SuggestionBox, error) {
	box := feed.NewSuggestionBox(
		s.SuggestionSource(),
		s.cfg.SuggestionLimit,
		s.cfg.SuggestionRefillThreshold,
		s.cfg.SuggestionRefillDelay(),
	)
	if err := box.Fill(ctx); err != nil {
		return nil, err
	}
	return box, nil
}

// FollowSuggestion follows a suggested user and drops them from the box;
// the box schedules its own refill when it runs low.
func (s *Service) FollowSuggestion(ctx context.Context, box *feed.SuggestionBox, targetID int64) error {
	if _, err := s.api.FollowUser(ctx, targetID); err != nil {
		s.notifier.Error("Failed to follow user")
		return err
	}
	box.Remove(targetID)
	s.notifier.Success("User followed!")
	return nil
}
