package feed

import (
	"context"
	"time"

	"github.com/emberlyapp/emberly-backend/internal/common/docstore"
)

const usersCollection = "users"

type Repository interface {
	// ListCandidates returns up to limit profiles ordered by creation time
	// descending (id ascending on ties), excluding the viewer, continuing
	// after the given cursor when non-nil.
	ListCandidates(ctx context.Context, viewerID string, limit int, after *cursor) ([]User, error)
}

type docstoreRepository struct {
	store docstore.Store
}

func NewDocstoreRepository(store docstore.Store) Repository {
	return &docstoreRepository{store: store}
}

func (r *docstoreRepository) ListCandidates(ctx context.Context, viewerID string, limit int, after *cursor) ([]User, error) {
	q := docstore.Query{
		Filters: []docstore.Filter{
			{Field: docstore.DocumentID, Op: "!=", Value: viewerID},
		},
		OrderBy: []docstore.Order{
			{Field: "createdAt", Desc: true},
			{Field: docstore.DocumentID},
		},
		Limit: limit,
	}
	if after != nil {
		q.StartAfter = []interface{}{after.CreatedAt, after.ID}
	}

	docs, err := r.store.Query(ctx, usersCollection, q)
	if err != nil {
		return nil, err
	}

	users := make([]User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, userFromDoc(doc))
	}
	return users, nil
}

func userFromDoc(doc docstore.Document) User {
	u := User{ID: doc.ID}
	u.Username, _ = doc.Data["username"].(string)
	u.Bio, _ = doc.Data["bio"].(string)
	u.GenderIdentity, _ = doc.Data["genderIdentity"].(string)
	u.SexualOrientation, _ = doc.Data["sexualOrientation"].(string)
	u.ProfilePicture, _ = doc.Data["profilePicture"].(string)
	u.Age = intField(doc.Data, "age")
	if ts, ok := doc.Data["createdAt"].(time.Time); ok {
		u.CreatedAt = ts
	}
	return u
}

// intField tolerates the numeric types different store backends hand back.
func intField(data map[string]interface{}, key string) int {
	switch n := data[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}
