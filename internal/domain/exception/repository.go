package exception

import "context"

// ExceptionRepository defines data access methods for attendance
// exception records.
type ExceptionRepository interface {
	// BulkCreate inserts all records in one statement. Called inside the
	// same transaction that claims the punch's idempotency marker.
	BulkCreate(ctx context.Context, records []Record) error

	// ListByTimeEntry returns the exceptions raised for one punch,
	// newest run first
	ListByTimeEntry(ctx context.Context, timeEntryID string, companyID string) ([]Record, error)

	// List retrieves exceptions with filters and pagination
	List(ctx context.Context, filter Filter, companyID string) ([]Record, int64, error)
}
