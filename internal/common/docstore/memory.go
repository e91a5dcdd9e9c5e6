// internal/common/docstore/memory.go
// Map-backed Store used in development mode and in tests. Honors the same
// filter, ordering and cursor semantics as the Firestore implementation.

package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{
		collections: make(map[string]map[string]map[string]interface{}),
	}
}

func (s *memoryStore) Query(ctx context.Context, collection string, q Query) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for id, data := range s.collections[collection] {
		doc := Document{ID: id, Data: copyFields(data)}
		if matchesFilters(doc, q.Filters) {
			docs = append(docs, doc)
		}
	}

	sort.SliceStable(docs, func(i, j int) bool {
		for _, o := range q.OrderBy {
			c := compareValues(orderValue(docs[i], o.Field), orderValue(docs[j], o.Field))
			if o.Desc {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return docs[i].ID < docs[j].ID
	})

	if len(q.StartAfter) > 0 {
		if len(q.StartAfter) != len(q.OrderBy) {
			return nil, fmt.Errorf("cursor has %d values for %d order keys", len(q.StartAfter), len(q.OrderBy))
		}
		filtered := docs[:0]
		for _, doc := range docs {
			if afterCursor(doc, q.OrderBy, q.StartAfter) {
				filtered = append(filtered, doc)
			}
		}
		docs = filtered
	}

	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

func (s *memoryStore) Get(ctx context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Data: copyFields(data)}, nil
}

func (s *memoryStore) Create(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	id := uuid.NewString()
	return id, s.Set(ctx, collection, id, fields)
}

func (s *memoryStore) Set(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]interface{})
	}
	s.collections[collection][id] = resolveMemorySentinels(fields)
	return nil
}

func (s *memoryStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range resolveMemorySentinels(fields) {
		existing[k] = v
	}
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func resolveMemorySentinels(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	now := time.Now().UTC()
	for k, v := range fields {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = now
			continue
		}
		out[k] = v
	}
	return out
}

func copyFields(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

func orderValue(doc Document, field string) interface{} {
	if field == DocumentID {
		return doc.ID
	}
	return doc.Data[field]
}

func matchesFilters(doc Document, filters []Filter) bool {
	for _, f := range filters {
		c := compareValues(orderValue(doc, f.Field), f.Value)
		var ok bool
		switch f.Op {
		case "==":
			ok = c == 0
		case "!=":
			ok = c != 0
		case "<":
			ok = c < 0
		case "<=":
			ok = c <= 0
		case ">":
			ok = c > 0
		case ">=":
			ok = c >= 0
		}
		if !ok {
			return false
		}
	}
	return true
}

// afterCursor reports whether doc sorts strictly after the cursor position
// with respect to the query's order keys.
func afterCursor(doc Document, orderBy []Order, startAfter []interface{}) bool {
	for i, o := range orderBy {
		c := compareValues(orderValue(doc, o.Field), startAfter[i])
		if o.Desc {
			c = -c
		}
		if c != 0 {
			return c > 0
		}
	}
	return false
}

func compareValues(a, b interface{}) int {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return -1
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return -1
		}
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	case bool:
		bv, ok := b.(bool)
		if !ok || av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case nil:
		if b == nil {
			return 0
		}
		return -1
	default:
		af, aok := toFloat(a)
		bf, bok := toFloat(b)
		if !aok || !bok {
			return -1
		}
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
