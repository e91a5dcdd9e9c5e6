// internal/common/docstore/docstore.go
// Thin document-store abstraction over the managed backend. The rest of the
// application only sees collections, document ids and plain field maps.

package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get and Update when the document does not exist.
var ErrNotFound = errors.New("document not found")

// serverTimestamp is a private sentinel type so callers cannot forge it from
// another package by accident.
type serverTimestamp struct{}

// ServerTimestamp marks a field to be filled with a server-assigned time on
// write.
var ServerTimestamp = serverTimestamp{}

// DocumentID orders or cursors on the document id itself.
const DocumentID = "__name__"

// Filter is a single field comparison. Supported operators:
// "==", "!=", "<", "<=", ">", ">=".
type Filter struct {
	Field string
	Op    string
	Value interface{}
}

// Order is one sort key of a query.
type Order struct {
	Field string
	Desc  bool
}

// Query describes a listing over one collection. StartAfter holds one value
// per OrderBy entry and continues the listing strictly after that position.
type Query struct {
	Filters    []Filter
	OrderBy    []Order
	Limit      int
	StartAfter []interface{}
}

// Document is a stored document with its server-assigned id.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Store is the document-store collaborator. Collection names may be
// slash-separated paths ("users/u1/blocked").
type Store interface {
	Query(ctx context.Context, collection string, q Query) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	Create(ctx context.Context, collection string, fields map[string]interface{}) (string, error)
	Set(ctx context.Context, collection, id string, fields map[string]interface{}) error
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
}
