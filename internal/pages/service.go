// Package pages contains the data loaders behind each screen of the
// client: home feed, profile, followers, following, search and post
// detail. Loaders return assembled view models; rendering is the caller's
// concern. Outer list-fetch failures surface as page-level errors (the
// user retries manually), per-item join failures degrade in place, and
// mutation failures revert their optimistic change and report through the
// notifier.
package pages

import (
	"context"

	"github.com/hoangNguyenDev3/WanderSphere/internal/api"
	"github.com/hoangNguyenDev3/WanderSphere/internal/config"
	"github.com/hoangNguyenDev3/WanderSphere/internal/feed"
	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
	"github.com/hoangNguyenDev3/WanderSphere/internal/notify"
	"github.com/hoangNguyenDev3/WanderSphere/internal/observability"
	"github.com/hoangNguyenDev3/WanderSphere/internal/session"
)

// Service wires the API client, viewer session and notifier together for
// all page loaders.
type Service struct {
	cfg      *config.Config
	api      *api.Client
	session  *session.Manager
	notifier notify.Notifier
	log      *observability.Logger
}

// NewService creates the page service.
func NewService(cfg *config.Config, client *api.Client, sess *session.Manager, notifier notify.Notifier) *Service {
	return &Service{
		cfg:      cfg,
		api:      client,
		session:  sess,
		notifier: notifier,
		log:      observability.Component("pages"),
	}
}

// Session exposes the viewer session to hosting code.
func (s *Service) Session() *session.Manager {
	return s.session
}

// viewerFollowingSet fetches the viewer's following ids. Failures degrade
// to an empty set: follow labels then default to "not following", which
// is recoverable by a follow click, rather than blocking the page.
func (s *Service) viewerFollowingSet(ctx context.Context) feed.IDSet {
	viewerID := s.session.ViewerID()
	if viewerID == 0 {
		return feed.IDSet{}
	}
	ids, err := s.api.GetFollowing(ctx, viewerID)
	if err != nil {
		s.log.Warn("failed to fetch viewer following list", "error", err)
		return feed.IDSet{}
	}
	return feed.NewIDSet(ids)
}

// assembleUsers joins each id to its profile, preserving input order and
// degrading failed lookups to the fallback identity.
func (s *Service) assembleUsers(ctx context.Context, ids []int64) []models.UserWithFollowStatus {
	return feed.Assemble(ctx, ids,
		func(ctx context.Context, id int64) (models.UserWithFollowStatus, error) {
			u, err := s.api.GetProfile(ctx, id)
			if err != nil {
				return models.UserWithFollowStatus{}, err
			}
			return models.UserWithFollowStatus{User: *u}, nil
		},
		func(id int64) models.UserWithFollowStatus {
			return models.UserWithFollowStatus{User: models.FallbackUser(id), Degraded: true}
		})
}
