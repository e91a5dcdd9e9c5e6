// internal/blocks/service.go

package blocks

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/emberlyapp/emberly-backend/internal/common/apperrors"
)

var ErrCannotBlockSelf = errors.New("cannot block yourself")

type Service interface {
	// Block idempotently records that blockerID no longer wants to see
	// blockedID. Existing matches between the pair are left untouched.
	Block(ctx context.Context, blockerID, blockedID string) error

	// ListBlocked returns the set of ids blocked by userID. Blocking is
	// one-directional: B blocking A does not hide B from A.
	ListBlocked(ctx context.Context, userID string) (map[string]struct{}, error)

	// ListBlockedRelations returns the full relations, newest data included.
	ListBlockedRelations(ctx context.Context, userID string) ([]BlockRelation, error)
}

type service struct {
	repo     Repository
	redis    *redis.Client
	cacheTTL time.Duration
}

// NewService creates the block list manager. redisClient may be nil; the
// cache is then skipped entirely.
func NewService(repo Repository, redisClient *redis.Client, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		redis:    redisClient,
		cacheTTL: cacheTTL,
	}
}

func (s *service) Block(ctx context.Context, blockerID, blockedID string) error {
	if blockerID == "" {
		return apperrors.ErrUnauthenticated
	}
	if blockerID == blockedID {
		return ErrCannotBlockSelf
	}

	// Persist first; the cache is only touched once the store call succeeded
	// so a failed write never hides a profile that is still visible to the
	// backend.
	if err := s.repo.PutBlock(ctx, blockerID, blockedID); err != nil {
		log.Printf("block write failed for %s -> %s: %v", blockerID, blockedID, err)
		return apperrors.Persistence("block user", err)
	}

	s.invalidateCache(ctx, blockerID)
	RecordBlock()
	return nil
}

func (s *service) ListBlocked(ctx context.Context, userID string) (map[string]struct{}, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	if ids, ok := s.cachedBlockedIDs(ctx, userID); ok {
		return toSet(ids), nil
	}

	relations, err := s.repo.ListBlocked(ctx, userID)
	if err != nil {
		return nil, apperrors.Persistence("list blocked users", err)
	}

	ids := make([]string, 0, len(relations))
	for _, rel := range relations {
		ids = append(ids, rel.BlockedID)
	}
	s.storeCachedBlockedIDs(ctx, userID, ids)

	return toSet(ids), nil
}

func (s *service) ListBlockedRelations(ctx context.Context, userID string) ([]BlockRelation, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	relations, err := s.repo.ListBlocked(ctx, userID)
	if err != nil {
		return nil, apperrors.Persistence("list blocked users", err)
	}
	return relations, nil
}

// Cache helpers. All failures are soft: the store remains the source of
// truth and a cold or broken cache only costs an extra query.

func cacheKey(userID string) string {
	return "blocks:" + userID
}

func (s *service) cachedBlockedIDs(ctx context.Context, userID string) ([]string, bool) {
	if s.redis == nil {
		return nil, false
	}

	data, err := s.redis.Get(ctx, cacheKey(userID)).Result()
	if err != nil {
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, false
	}
	return ids, true
}

func (s *service) storeCachedBlockedIDs(ctx context.Context, userID string, ids []string) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, cacheKey(userID), data, s.cacheTTL).Err(); err != nil {
		log.Printf("block cache write failed for %s: %v", userID, err)
	}
}

func (s *service) invalidateCache(ctx context.Context, userID string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, cacheKey(userID)).Err(); err != nil {
		log.Printf("block cache invalidation failed for %s: %v", userID, err)
	}
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
