package blocks

import (
	"context"
	"fmt"
	"time"

	"github.com/emberlyapp/emberly-backend/internal/common/docstore"
)

type Repository interface {
	PutBlock(ctx context.Context, blockerID, blockedID string) error
	ListBlocked(ctx context.Context, userID string) ([]BlockRelation, error)
}

type docstoreRepository struct {
	store docstore.Store
}

// NewDocstoreRepository creates a repository over the document store. Block
// relations live in the blocker's "blocked" subcollection, keyed by the
// blocked user's id, so writing twice overwrites the same document.
func NewDocstoreRepository(store docstore.Store) Repository {
	return &docstoreRepository{store: store}
}

func blockedCollection(userID string) string {
	return fmt.Sprintf("users/%s/blocked", userID)
}

func (r *docstoreRepository) PutBlock(ctx context.Context, blockerID, blockedID string) error {
	return r.store.Set(ctx, blockedCollection(blockerID), blockedID, map[string]interface{}{
		"blockedAt": docstore.ServerTimestamp,
	})
}

func (r *docstoreRepository) ListBlocked(ctx context.Context, userID string) ([]BlockRelation, error) {
	docs, err := r.store.Query(ctx, blockedCollection(userID), docstore.Query{})
	if err != nil {
		return nil, err
	}

	relations := make([]BlockRelation, 0, len(docs))
	for _, doc := range docs {
		rel := BlockRelation{BlockerID: userID, BlockedID: doc.ID}
		if ts, ok := doc.Data["blockedAt"].(time.Time); ok {
			rel.BlockedAt = ts
		}
		relations = append(relations, rel)
	}
	return relations, nil
}
