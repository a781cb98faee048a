package store

import (
	"context"
	"errors"
)

// Collection names used across the application.
const (
	AppointmentCollection = "appointments"
	PatientCollection     = "patients"
)

// ErrNotFound is returned when a document id does not exist in a collection.
var ErrNotFound = errors.New("record not found")

// ListQuery shapes a listing: filter, descending sort field and page size.
type ListQuery struct {
	Filter  map[string]any
	OrderBy string
	Limit   int64
}

// RecordStore is the persistence contract for appointment and patient
// documents. Implementations must provide atomic per-document create and
// update; the store is the sole arbiter of consistency.
type RecordStore interface {
	CreateDocument(ctx context.Context, collection, id string, doc any) error
	GetDocument(ctx context.Context, collection, id string, out any) error
	UpdateDocument(ctx context.Context, collection, id string, patch map[string]any, out any) error
	// ListDocuments decodes the matching page into out (a pointer to a slice)
	// and returns the collection total for the filter.
	ListDocuments(ctx context.Context, collection string, q ListQuery, out any) (int64, error)
}
