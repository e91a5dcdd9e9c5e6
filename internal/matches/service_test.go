package matches

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlyapp/emberly-backend/internal/blocks"
	"github.com/emberlyapp/emberly-backend/internal/common/apperrors"
	"github.com/emberlyapp/emberly-backend/internal/common/docstore"
)

func newTestService(t *testing.T, users ...string) (Service, docstore.Store) {
	t.Helper()
	store := docstore.NewMemoryStore()
	ctx := context.Background()
	for _, id := range users {
		err := store.Set(ctx, "users", id, map[string]interface{}{
			"username":  id,
			"createdAt": docstore.ServerTimestamp,
		})
		require.NoError(t, err)
	}
	return NewService(NewDocstoreRepository(store)), store
}

func TestLike_CreatesPendingMatch(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "alice", "bob")
	ctx := context.Background()

	match, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "alice", match.InitiatorID)
	assert.Equal(t, "bob", match.RecipientID)
	assert.Equal(t, StatusPending, match.Status)
	assert.False(t, match.CreatedAt.IsZero())
}

func TestLike_Self(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "alice")
	_, err := svc.Like(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, ErrCannotLikeSelf)
}

func TestLike_UnknownTarget(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "alice")
	_, err := svc.Like(context.Background(), "alice", "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLike_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "bob")
	_, err := svc.Like(context.Background(), "", "bob")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestLike_RepeatReturnsExisting(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t, "alice", "bob")
	ctx := context.Background()

	first, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	second, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	docs, err := store.Query(ctx, "matches", docstore.Query{})
	require.NoError(t, err)
	assert.Len(t, docs, 1, "re-like must not duplicate the record")
}

func TestLike_MutualCreatesSecondPending(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "alice", "bob")
	ctx := context.Background()

	fromAlice, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	fromBob, err := svc.Like(ctx, "bob", "alice")
	require.NoError(t, err)

	// crossing likes stay independent; neither side is auto-matched
	assert.NotEqual(t, fromAlice.ID, fromBob.ID)
	assert.Equal(t, StatusPending, fromBob.Status)

	got, err := svc.ListMatches(ctx, "alice", "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAcceptLike_RecipientAccepts(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "alice", "bob")
	ctx := context.Background()

	match, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)

	accepted, err := svc.AcceptLike(ctx, "bob", match.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusMatched, accepted.Status)
	assert.True(t, accepted.UpdatedAt.After(accepted.CreatedAt) || accepted.UpdatedAt.Equal(accepted.CreatedAt))

	matched, err := svc.ListMatches(ctx, "bob", StatusMatched)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, match.ID, matched[0].ID)
}

func TestAcceptLike_InitiatorCannotAccept(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "alice", "bob")
	ctx := context.Background()

	match, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)

	_, err = svc.AcceptLike(ctx, "alice", match.ID)
	assert.ErrorIs(t, err, ErrNotRecipient)
}

func TestAcceptLike_RejectedIsTerminal(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "alice", "bob")
	ctx := context.Background()

	match, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = svc.RejectLike(ctx, "bob", match.ID)
	require.NoError(t, err)

	_, err = svc.AcceptLike(ctx, "bob", match.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	// record untouched by the failed transition
	got, err := svc.ListMatches(ctx, "bob", StatusRejected)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, StatusRejected, got[0].Status)
}

func TestRejectLike_RecipientRejects(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "alice", "bob")
	ctx := context.Background()

	match, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)

	rejected, err := svc.RejectLike(ctx, "bob", match.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, rejected.Status)
}

func TestRespond_UnknownMatch(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "alice")
	_, err := svc.AcceptLike(context.Background(), "alice", "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteMatch_ParticipantDeletes(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "alice", "bob")
	ctx := context.Background()

	match, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = svc.AcceptLike(ctx, "bob", match.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMatch(ctx, "alice", match.ID))

	got, err := svc.ListMatches(ctx, "alice", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteMatch_Outsider(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "alice", "bob", "eve")
	ctx := context.Background()

	match, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)

	err = svc.DeleteMatch(ctx, "eve", match.ID)
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestDeleteMatch_Unknown(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "alice")
	err := svc.DeleteMatch(context.Background(), "alice", "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListMatches_FiltersByStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "alice", "bob", "carol")
	ctx := context.Background()

	m1, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = svc.AcceptLike(ctx, "bob", m1.ID)
	require.NoError(t, err)
	_, err = svc.Like(ctx, "carol", "alice")
	require.NoError(t, err)

	pending, err := svc.ListMatches(ctx, "alice", StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "carol", pending[0].InitiatorID)

	all, err := svc.ListMatches(ctx, "alice", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListMatches_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	_, err := svc.ListMatches(context.Background(), "", "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestBlock_LeavesMatchIntact(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t, "alice", "bob")
	ctx := context.Background()

	match, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = svc.AcceptLike(ctx, "bob", match.ID)
	require.NoError(t, err)

	blockSvc := blocks.NewService(blocks.NewDocstoreRepository(store), nil, 0)
	require.NoError(t, blockSvc.Block(ctx, "alice", "bob"))

	// blocking only affects the feed; the match record survives
	got, err := svc.ListMatches(ctx, "bob", StatusMatched)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, match.ID, got[0].ID)
}

type failingRepo struct{}

func (failingRepo) CreateMatch(ctx context.Context, initiatorID, recipientID string) (*Match, error) {
	return nil, errors.New("backend unavailable")
}

func (failingRepo) GetMatch(ctx context.Context, id string) (*Match, error) {
	return nil, errors.New("backend unavailable")
}

func (failingRepo) FindByPair(ctx context.Context, userA, userB string) ([]*Match, error) {
	return nil, errors.New("backend unavailable")
}

func (failingRepo) ListForUser(ctx context.Context, userID string) ([]*Match, error) {
	return nil, errors.New("backend unavailable")
}

func (failingRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	return errors.New("backend unavailable")
}

func (failingRepo) DeleteMatch(ctx context.Context, id string) error {
	return errors.New("backend unavailable")
}

func (failingRepo) UserExists(ctx context.Context, userID string) (bool, error) {
	return false, errors.New("backend unavailable")
}

func TestLike_PersistenceFailure(t *testing.T) {
	t.Parallel()

	svc := NewService(failingRepo{})
	_, err := svc.Like(context.Background(), "alice", "bob")
	require.Error(t, err)
	assert.True(t, apperrors.IsPersistence(err))
}
