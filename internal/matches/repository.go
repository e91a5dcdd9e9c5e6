package matches

import (
	"context"
	"sort"
	"time"

	"github.com/emberlyapp/emberly-backend/internal/common/docstore"
)

const (
	matchesCollection = "matches"
	usersCollection   = "users"
)

type Repository interface {
	CreateMatch(ctx context.Context, initiatorID, recipientID string) (*Match, error)
	GetMatch(ctx context.Context, id string) (*Match, error)
	// FindByPair returns every match between the two users, both role
	// orderings included, oldest first. The store has no unordered
	// composite key, so uniqueness checks go through this lookup.
	FindByPair(ctx context.Context, userA, userB string) ([]*Match, error)
	ListForUser(ctx context.Context, userID string) ([]*Match, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	DeleteMatch(ctx context.Context, id string) error
	UserExists(ctx context.Context, userID string) (bool, error)
}

type docstoreRepository struct {
	store docstore.Store
}

func NewDocstoreRepository(store docstore.Store) Repository {
	return &docstoreRepository{store: store}
}

func (r *docstoreRepository) CreateMatch(ctx context.Context, initiatorID, recipientID string) (*Match, error) {
	id, err := r.store.Create(ctx, matchesCollection, map[string]interface{}{
		"initiatorId": initiatorID,
		"recipientId": recipientID,
		"status":      string(StatusPending),
		"createdAt":   docstore.ServerTimestamp,
		"updatedAt":   docstore.ServerTimestamp,
	})
	if err != nil {
		return nil, err
	}

	// Read back so the caller sees the server-assigned timestamps.
	return r.GetMatch(ctx, id)
}

func (r *docstoreRepository) GetMatch(ctx context.Context, id string) (*Match, error) {
	doc, err := r.store.Get(ctx, matchesCollection, id)
	if err != nil {
		return nil, err
	}
	return matchFromDoc(doc), nil
}

func (r *docstoreRepository) FindByPair(ctx context.Context, userA, userB string) ([]*Match, error) {
	var found []*Match
	for _, pair := range [][2]string{{userA, userB}, {userB, userA}} {
		docs, err := r.store.Query(ctx, matchesCollection, docstore.Query{
			Filters: []docstore.Filter{
				{Field: "initiatorId", Op: "==", Value: pair[0]},
				{Field: "recipientId", Op: "==", Value: pair[1]},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			found = append(found, matchFromDoc(doc))
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].CreatedAt.Before(found[j].CreatedAt)
	})
	return found, nil
}

func (r *docstoreRepository) ListForUser(ctx context.Context, userID string) ([]*Match, error) {
	var all []*Match
	for _, field := range []string{"initiatorId", "recipientId"} {
		docs, err := r.store.Query(ctx, matchesCollection, docstore.Query{
			Filters: []docstore.Filter{{Field: field, Op: "==", Value: userID}},
		})
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			all = append(all, matchFromDoc(doc))
		}
	}

	// Two role-specific queries, merged newest first.
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (r *docstoreRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	return r.store.Update(ctx, matchesCollection, id, map[string]interface{}{
		"status":    string(status),
		"updatedAt": docstore.ServerTimestamp,
	})
}

func (r *docstoreRepository) DeleteMatch(ctx context.Context, id string) error {
	return r.store.Delete(ctx, matchesCollection, id)
}

func (r *docstoreRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	_, err := r.store.Get(ctx, usersCollection, userID)
	if err == docstore.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func matchFromDoc(doc docstore.Document) *Match {
	m := &Match{ID: doc.ID}
	if v, ok := doc.Data["initiatorId"].(string); ok {
		m.InitiatorID = v
	}
	if v, ok := doc.Data["recipientId"].(string); ok {
		m.RecipientID = v
	}
	if v, ok := doc.Data["status"].(string); ok {
		m.Status = Status(v)
	}
	if ts, ok := doc.Data["createdAt"].(time.Time); ok {
		m.CreatedAt = ts
	}
	if ts, ok := doc.Data["updatedAt"].(time.Time); ok {
		m.UpdatedAt = ts
	}
	return m
}
