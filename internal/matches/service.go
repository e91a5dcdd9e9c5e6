// internal/matches/service.go

package matches

import (
	"context"
	"errors"
	"log"

	"github.com/emberlyapp/emberly-backend/internal/common/apperrors"
	"github.com/emberlyapp/emberly-backend/internal/common/docstore"
)

var (
	ErrCannotLikeSelf = errors.New("cannot like yourself")
	ErrNotRecipient   = errors.New("only the liked user can respond to a like")
	ErrNotParticipant = errors.New("not a participant in this match")
)

type Service interface {
	// Like records actorID's like toward targetID and returns the match
	// carrying it. A like the actor already sent is returned as-is instead
	// of duplicated. A reciprocal pending like from the target does NOT
	// auto-promote to matched; a fresh pending record is created alongside
	// and matching always requires an explicit accept.
	Like(ctx context.Context, actorID, targetID string) (*Match, error)

	// AcceptLike transitions pending -> matched.
	AcceptLike(ctx context.Context, actorID, matchID string) (*Match, error)

	// RejectLike transitions pending -> rejected. Rejected is terminal.
	RejectLike(ctx context.Context, actorID, matchID string) (*Match, error)

	// DeleteMatch removes the record permanently, regardless of status.
	DeleteMatch(ctx context.Context, actorID, matchID string) error

	// ListMatches returns the user's matches, newest first, optionally
	// filtered by status ("" means all).
	ListMatches(ctx context.Context, userID string, status Status) ([]*Match, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Like(ctx context.Context, actorID, targetID string) (*Match, error) {
	if actorID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	if actorID == targetID {
		return nil, ErrCannotLikeSelf
	}

	exists, err := s.repo.UserExists(ctx, targetID)
	if err != nil {
		return nil, apperrors.Persistence("look up liked user", err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound
	}

	existing, err := s.repo.FindByPair(ctx, actorID, targetID)
	if err != nil {
		return nil, apperrors.Persistence("look up existing match", err)
	}
	for _, m := range existing {
		if m.InitiatorID == actorID {
			return m, nil
		}
	}

	match, err := s.repo.CreateMatch(ctx, actorID, targetID)
	if err != nil {
		log.Printf("like failed for %s -> %s: %v", actorID, targetID, err)
		return nil, apperrors.Persistence("create match", err)
	}

	RecordLike()
	return match, nil
}

func (s *service) AcceptLike(ctx context.Context, actorID, matchID string) (*Match, error) {
	return s.respond(ctx, actorID, matchID, StatusMatched)
}

func (s *service) RejectLike(ctx context.Context, actorID, matchID string) (*Match, error) {
	return s.respond(ctx, actorID, matchID, StatusRejected)
}

// respond applies the recipient's decision on a pending like. The record is
// left untouched on every failure path.
func (s *service) respond(ctx context.Context, actorID, matchID string, to Status) (*Match, error) {
	if actorID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	match, err := s.getMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.RecipientID != actorID {
		return nil, ErrNotRecipient
	}
	if match.Status != StatusPending {
		return nil, apperrors.ErrInvalidState
	}

	if err := s.repo.UpdateStatus(ctx, matchID, to); err != nil {
		if err == docstore.ErrNotFound {
			return nil, apperrors.ErrNotFound
		}
		log.Printf("match %s transition to %s failed: %v", matchID, to, err)
		return nil, apperrors.Persistence("update match status", err)
	}

	RecordTransition(to)
	return s.getMatch(ctx, matchID)
}

func (s *service) DeleteMatch(ctx context.Context, actorID, matchID string) error {
	if actorID == "" {
		return apperrors.ErrUnauthenticated
	}

	match, err := s.getMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if !match.HasParticipant(actorID) {
		return ErrNotParticipant
	}

	if err := s.repo.DeleteMatch(ctx, matchID); err != nil {
		log.Printf("match %s deletion failed: %v", matchID, err)
		return apperrors.Persistence("delete match", err)
	}

	RecordDeletion()
	return nil
}

func (s *service) ListMatches(ctx context.Context, userID string, status Status) ([]*Match, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	all, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Persistence("list matches", err)
	}
	if status == "" {
		return all, nil
	}

	filtered := make([]*Match, 0, len(all))
	for _, m := range all {
		if m.Status == status {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func (s *service) getMatch(ctx context.Context, matchID string) (*Match, error) {
	match, err := s.repo.GetMatch(ctx, matchID)
	if err == docstore.ErrNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Persistence("get match", err)
	}
	return match, nil
}
