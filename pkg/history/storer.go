package history

import "context"

// Storer persists agent exchange records. Content-addressed IDs make Put
// idempotent: storing the same exchange twice keeps a single record.
type Storer interface {
	// Put stores a record. If a record with the same ID exists this is a no-op.
	Put(ctx context.Context, rec *Record) error

	// Get retrieves a record by ID. Returns ErrNotFound when it doesn't exist.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]*Record, error)

	// ListKind returns all records of one kind, newest first.
	ListKind(ctx context.Context, kind Kind) ([]*Record, error)

	// Close closes the store and releases any resources.
	Close() error
}

// ErrNotFound is returned when a record doesn't exist in the store.
type ErrNotFound struct {
	ID string
}

func (e ErrNotFound) Error() string {
	if e.ID == "" {
		return "record not found"
	}

	return "record not found: " + e.ID
}
