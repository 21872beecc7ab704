package feed

import (
	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

// IDSet is a membership-tested set of entity ids.
type IDSet map[int64]struct{}

// NewIDSet builds a set from a slice of ids.
func NewIDSet(ids []int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports membership of id.
func (s IDSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id.
func (s IDSet) Add(id int64) {
	s[id] = struct{}{}
}

// Remove deletes id.
func (s IDSet) Remove(id int64) {
	delete(s, id)
}

// ReconcileFollowState annotates each candidate with whether the viewer
// follows them. Pure: inputs are not mutated and the result is freshly
// allocated.
func ReconcileFollowState(viewerFollowing IDSet, candidates []models.User) []models.UserWithFollowStatus {
	out := make([]models.UserWithFollowStatus, len(candidates))
	for i, u := range candidates {
		out[i] = models.UserWithFollowStatus{
			User:        u,
			IsFollowing: viewerFollowing.Contains(u.UserID),
		}
	}
	return out
}

// UnfollowPolicy selects what an unfollow does to the viewed list. When
// the viewer looks at their own following list, unfollowing removes the
// row; on a followers or search list it only flips the label. This is a
// deliberate UX policy, not an accident of implementation.
type UnfollowPolicy int

const (
	// LabelOnly flips IsFollowing and leaves the list length unchanged.
	LabelOnly UnfollowPolicy = iota
	// RemoveOnUnfollow drops unfollowed rows from the list.
	RemoveOnUnfollow
)

// FollowCollection is an ordered, locally-mutable list of users with
// follow state, discarded on navigation. It is page-local and unshared;
// no locking is needed.
type FollowCollection struct {
	Users  []models.UserWithFollowStatus
	policy UnfollowPolicy
}

// NewFollowCollection wraps users with the given unfollow policy.
func NewFollowCollection(users []models.UserWithFollowStatus, policy UnfollowPolicy) *FollowCollection {
	return &FollowCollection{Users: users, policy: policy}
}

// Len returns the current list length.
func (c *FollowCollection) Len() int {
	return len(c.Users)
}

// Find returns the first row with the given id, or nil.
func (c *FollowCollection) Find(targetID int64) *models.UserWithFollowStatus {
	for i := range c.Users {
		if c.Users[i].UserID == targetID {
			return &c.Users[i]
		}
	}
	return nil
}

// FollowChange records an applied optimistic follow mutation so a failed
// network call can invert it.
type FollowChange struct {
	Applied  bool
	TargetID int64
	Follow   bool
	removed  []removedRow
}

type removedRow struct {
	index int
	user  models.UserWithFollowStatus
}

// ApplyOptimisticFollow mutates the collection immediately, before the
// network call resolves. The toggle is by target state: applying the same
// action twice is a no-op (Applied reports false), so duplicate clicks
// and racing confirmations cannot double-flip.
func (c *FollowCollection) ApplyOptimisticFollow(targetID int64, follow bool) FollowChange {
	change := FollowChange{TargetID: targetID, Follow: follow}

	if c.policy == RemoveOnUnfollow && !follow {
		kept := c.Users[:0:0]
		for i, u := range c.Users {
			if u.UserID == targetID {
				change.removed = append(change.removed, removedRow{index: i, user: u})
				continue
			}
			kept = append(kept, u)
		}
		c.Users = kept
		change.Applied = len(change.removed) > 0
		return change
	}

	for i := range c.Users {
		if c.Users[i].UserID == targetID && c.Users[i].IsFollowing != follow {
			c.Users[i].IsFollowing = follow
			change.Applied = true
		}
	}
	return change
}

// Revert inverts a previously applied change after the network call
// failed, restoring removed rows at their original positions.
func (c *FollowCollection) Revert(change FollowChange) {
	if !change.Applied {
		return
	}

	if len(change.removed) > 0 {
		for _, r := range change.removed {
			idx := r.index
			if idx > len(c.Users) {
				idx = len(c.Users)
			}
			c.Users = append(c.Users, models.UserWithFollowStatus{})
			copy(c.Users[idx+1:], c.Users[idx:])
			c.Users[idx] = r.user
		}
		return
	}

	for i := range c.Users {
		if c.Users[i].UserID == change.TargetID {
			c.Users[i].IsFollowing = !change.Follow
		}
	}
}
