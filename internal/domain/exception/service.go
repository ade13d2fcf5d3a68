package exception

import "context"

// ExceptionService defines read access to detected attendance
// exceptions. Records are only ever written by the reconciliation
// engine.
type ExceptionService interface {
	// ListExceptions retrieves exceptions with filters and pagination
	ListExceptions(ctx context.Context, filter Filter) (ListRecordResponse, error)

	// ListByTimeEntry retrieves the exceptions raised for one punch
	ListByTimeEntry(ctx context.Context, timeEntryID string) ([]RecordResponse, error)
}
