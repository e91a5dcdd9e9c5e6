// internal/common/docstore/firestore.go
// Firestore-backed Store implementation.

package docstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type firestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an initialized Firestore client.
func NewFirestoreStore(client *firestore.Client) Store {
	return &firestoreStore{client: client}
}

func (s *firestoreStore) Query(ctx context.Context, collection string, q Query) ([]Document, error) {
	fq := s.client.Collection(collection).Query
	for _, f := range q.Filters {
		field := f.Field
		if field == DocumentID {
			field = firestore.DocumentID
		}
		fq = fq.Where(field, f.Op, f.Value)
	}
	for _, o := range q.OrderBy {
		dir := firestore.Asc
		if o.Desc {
			dir = firestore.Desc
		}
		field := o.Field
		if field == DocumentID {
			field = firestore.DocumentID
		}
		fq = fq.OrderBy(field, dir)
	}
	if len(q.StartAfter) > 0 {
		fq = fq.StartAfter(q.StartAfter...)
	}
	if q.Limit > 0 {
		fq = fq.Limit(q.Limit)
	}

	iter := fq.Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query collection %q: %w", collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func (s *firestoreStore) Get(ctx context.Context, collection, id string) (Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}
	return Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *firestoreStore) Create(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, resolveFirestoreSentinels(fields))
	if err != nil {
		return "", fmt.Errorf("failed to create document in %q: %w", collection, err)
	}
	return ref.ID, nil
}

func (s *firestoreStore) Set(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, resolveFirestoreSentinels(fields))
	if err != nil {
		return fmt.Errorf("failed to set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *firestoreStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		if _, ok := v.(serverTimestamp); ok {
			v = firestore.ServerTimestamp
		}
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *firestoreStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func resolveFirestoreSentinels(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = firestore.ServerTimestamp
			continue
		}
		out[k] = v
	}
	return out
}
