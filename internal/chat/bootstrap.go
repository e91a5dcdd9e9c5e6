// Package chat maps matches onto chat conversations. It carries no message
// transport itself; delivery lives in an external messaging system keyed by
// the conversation id handed out here.
package chat

import (
	"context"

	"github.com/emberlyapp/emberly-backend/internal/matches"
)

// ConversationID derives the conversation id for a match. Conversations are
// keyed one-to-one by match, so the id passes through unchanged; callers
// should still treat the returned value as opaque.
func ConversationID(matchID string) string {
	return matchID
}

type Service interface {
	// StartConversation records actorID's like toward targetID (a no-op if
	// one already exists) and returns the conversation id for the resulting
	// match.
	StartConversation(ctx context.Context, actorID, targetID string) (string, error)
}

type service struct {
	matchService matches.Service
}

func NewService(matchService matches.Service) Service {
	return &service{matchService: matchService}
}

func (s *service) StartConversation(ctx context.Context, actorID, targetID string) (string, error) {
	match, err := s.matchService.Like(ctx, actorID, targetID)
	if err != nil {
		return "", err
	}
	return ConversationID(match.ID), nil
}
