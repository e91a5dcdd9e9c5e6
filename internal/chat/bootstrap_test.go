package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlyapp/emberly-backend/internal/common/apperrors"
	"github.com/emberlyapp/emberly-backend/internal/common/docstore"
	"github.com/emberlyapp/emberly-backend/internal/matches"
)

func newChatService(t *testing.T, users ...string) (Service, matches.Service) {
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
	matchSvc := matches.NewService(matches.NewDocstoreRepository(store))
	return NewService(matchSvc), matchSvc
}

func TestStartConversation_CreatesLike(t *testing.T) {
	t.Parallel()

	svc, matchSvc := newChatService(t, "alice", "bob")
	ctx := context.Background()

	convID, err := svc.StartConversation(ctx, "alice", "bob")
	require.NoError(t, err)
	require.NotEmpty(t, convID)

	got, err := matchSvc.ListMatches(ctx, "alice", matches.StatusPending)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, got[0].ID, convID, "conversation id must track the match id")
}

func TestStartConversation_ReusesExistingMatch(t *testing.T) {
	t.Parallel()

	svc, matchSvc := newChatService(t, "alice", "bob")
	ctx := context.Background()

	match, err := matchSvc.Like(ctx, "alice", "bob")
	require.NoError(t, err)

	convID, err := svc.StartConversation(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, ConversationID(match.ID), convID)
}

func TestStartConversation_UnknownTarget(t *testing.T) {
	t.Parallel()

	svc, _ := newChatService(t, "alice")
	_, err := svc.StartConversation(context.Background(), "alice", "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStartConversation_Self(t *testing.T) {
	t.Parallel()

	svc, _ := newChatService(t, "alice")
	_, err := svc.StartConversation(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, matches.ErrCannotLikeSelf)
}
