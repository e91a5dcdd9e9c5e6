package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlyapp/emberly-backend/internal/blocks"
	"github.com/emberlyapp/emberly-backend/internal/common/docstore"
)

func TestSession_FetchAndContinue(t *testing.T) {
	t.Parallel()

	store := docstore.NewMemoryStore()
	seedProfiles(t, store, 5)
	svc := newFeedService(t, store)
	sess := NewSession(svc, "viewer", 2)
	ctx := context.Background()

	first, err := sess.FetchPage(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.True(t, sess.HasMore())

	next, err := sess.FetchNextPage(ctx)
	require.NoError(t, err)
	assert.Len(t, next, 2)
	assert.Len(t, sess.Profiles(), 4)

	// profiles accumulate without duplicates
	seen := map[string]int{}
	for _, u := range sess.Profiles() {
		seen[u.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "profile %s appeared %d times", id, n)
	}
}

func TestSession_NextPageNoopWithoutFetch(t *testing.T) {
	t.Parallel()

	store := docstore.NewMemoryStore()
	seedProfiles(t, store, 3)
	svc := newFeedService(t, store)
	sess := NewSession(svc, "viewer", 2)

	users, err := sess.FetchNextPage(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSession_NextPageNoopWhenExhausted(t *testing.T) {
	t.Parallel()

	store := docstore.NewMemoryStore()
	seedProfiles(t, store, 2)
	svc := newFeedService(t, store)
	sess := NewSession(svc, "viewer", 10)
	ctx := context.Background()

	_, err := sess.FetchPage(ctx)
	require.NoError(t, err)
	require.False(t, sess.HasMore())

	users, err := sess.FetchNextPage(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

type flakyService struct {
	inner Service
	fail  bool
}

func (f *flakyService) FetchPage(ctx context.Context, viewerID string, pageSize int, cursorToken string) (*FeedPage, error) {
	if f.fail {
		return nil, errors.New("backend unavailable")
	}
	return f.inner.FetchPage(ctx, viewerID, pageSize, cursorToken)
}

func TestSession_FailureResetsState(t *testing.T) {
	t.Parallel()

	store := docstore.NewMemoryStore()
	seedProfiles(t, store, 5)
	flaky := &flakyService{inner: newFeedService(t, store)}
	sess := NewSession(flaky, "viewer", 2)
	ctx := context.Background()

	_, err := sess.FetchPage(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sess.Profiles())
	require.True(t, sess.HasMore())

	flaky.fail = true
	_, err = sess.FetchNextPage(ctx)
	require.Error(t, err)

	// never a mix of old and new: failure leaves the session empty and
	// non-paginated
	assert.Empty(t, sess.Profiles())
	assert.False(t, sess.HasMore())

	users, err := sess.FetchNextPage(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSession_RemoveAfterBlock(t *testing.T) {
	t.Parallel()

	store := docstore.NewMemoryStore()
	seedProfiles(t, store, 3)
	blockSvc := blocks.NewService(blocks.NewDocstoreRepository(store), nil, 0)
	svc := NewService(NewDocstoreRepository(store), blockSvc, 10)
	sess := NewSession(svc, "viewer", 10)
	ctx := context.Background()

	_, err := sess.FetchPage(ctx)
	require.NoError(t, err)
	require.Contains(t, ids(sess.Profiles()), "u02")

	require.NoError(t, blockSvc.Block(ctx, "viewer", "u02"))
	sess.Remove("u02")

	assert.NotContains(t, ids(sess.Profiles()), "u02")
}
