package punch

import (
	"context"
)

// ReconciliationService defines business logic for punch intake and the
// reconciliation batch run.
type ReconciliationService interface {
	// CreatePunch registers a raw punch pair
	CreatePunch(ctx context.Context, req CreatePunchRequest) (PunchResponse, error)

	// GetPunch retrieves a single punch by ID
	GetPunch(ctx context.Context, id string) (PunchResponse, error)

	// ListPunches retrieves punches with filters and pagination
	ListPunches(ctx context.Context, filter PunchFilter) (ListPunchResponse, error)

	// Reconcile runs the engine for the authenticated company
	Reconcile(ctx context.Context, req ReconcileRequest) (RunSummary, error)

	// ReconcileCompany runs the engine for an explicit company. Used by
	// the cron job, which has no request context to read claims from.
	ReconcileCompany(ctx context.Context, companyID string, req ReconcileRequest) (RunSummary, error)
}
