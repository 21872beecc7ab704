package feed

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

func fakeUser(id int64) models.User {
	return models.User{
		UserID:    id,
		UserName:  gofakeit.Username(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
	}
}

func statusList(policy UnfollowPolicy, ids ...int64) *FollowCollection {
	users := make([]models.UserWithFollowStatus, len(ids))
	for i, id := range ids {
		users[i] = models.UserWithFollowStatus{User: fakeUser(id), IsFollowing: true}
	}
	return NewFollowCollection(users, policy)
}

func TestReconcileFollowState(t *testing.T) {
	following := NewIDSet([]int64{2, 4})
	candidates := []models.User{fakeUser(1), fakeUser(2), fakeUser(3), fakeUser(4)}

	got := ReconcileFollowState(following, candidates)
	require.Len(t, got, 4)
	assert.False(t, got[0].IsFollowing)
	assert.True(t, got[1].IsFollowing)
	assert.False(t, got[2].IsFollowing)
	assert.True(t, got[3].IsFollowing)
}

func TestReconcileFollowStateIsPure(t *testing.T) {
	following := NewIDSet([]int64{2})
	candidates := []models.User{fakeUser(1), fakeUser(2)}

	first := ReconcileFollowState(following, candidates)
	second := ReconcileFollowState(following, candidates)

	assert.Equal(t, first, second, "same inputs must produce structurally identical output")

	// Mutating the output must not leak back into the inputs.
	first[0].IsFollowing = true
	assert.False(t, second[0].IsFollowing)
	assert.Equal(t, int64(1), candidates[0].UserID)
}

func TestOptimisticFollowIsIdempotent(t *testing.T) {
	col := statusList(LabelOnly, 1, 2, 3)
	col.Users[1].IsFollowing = false

	first := col.ApplyOptimisticFollow(2, true)
	assert.True(t, first.Applied)
	assert.True(t, col.Find(2).IsFollowing)

	// A duplicate click must not double-count: the state is a boolean.
	second := col.ApplyOptimisticFollow(2, true)
	assert.False(t, second.Applied)
	assert.True(t, col.Find(2).IsFollowing)
	assert.Equal(t, 3, col.Len())
}

func TestUnfollowOnOwnFollowingListRemovesRow(t *testing.T) {
	col := statusList(RemoveOnUnfollow, 10, 20, 30)

	change := col.ApplyOptimisticFollow(20, false)
	require.True(t, change.Applied)
	require.Equal(t, 2, col.Len())
	assert.Equal(t, int64(10), col.Users[0].UserID)
	assert.Equal(t, int64(30), col.Users[1].UserID)
}

func TestUnfollowOnThirdPartyListOnlyFlipsLabel(t *testing.T) {
	col := statusList(LabelOnly, 10, 20, 30)

	change := col.ApplyOptimisticFollow(20, false)
	require.True(t, change.Applied)
	assert.Equal(t, 3, col.Len(), "list length must not change")
	assert.False(t, col.Find(20).IsFollowing)
	assert.True(t, col.Find(10).IsFollowing)
}

func TestRevertRestoresRemovedRow(t *testing.T) {
	col := statusList(RemoveOnUnfollow, 10, 20, 30)
	removed := *col.Find(20)

	change := col.ApplyOptimisticFollow(20, false)
	require.Equal(t, 2, col.Len())

	col.Revert(change)
	require.Equal(t, 3, col.Len())
	assert.Equal(t, removed, col.Users[1], "row returns to its original position")
}

func TestRevertInvertsLabelFlip(t *testing.T) {
	col := statusList(LabelOnly, 10, 20)

	change := col.ApplyOptimisticFollow(20, false)
	col.Revert(change)
	assert.True(t, col.Find(20).IsFollowing)

	// Reverting a no-op change leaves the collection untouched.
	noop := col.ApplyOptimisticFollow(20, true)
	assert.False(t, noop.Applied)
	col.Revert(noop)
	assert.True(t, col.Find(20).IsFollowing)
}
