package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access methods for punch records.
// All methods include companyID to prevent cross-company data access.
type PunchRepository interface {
	// Create inserts a raw punch as delivered by the time-clock capture
	// subsystem
	Create(ctx context.Context, p Punch) (Punch, error)

	// GetByID retrieves a punch by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Punch, error)

	// GetByIDs retrieves the given punches, silently dropping unknown ids
	GetByIDs(ctx context.Context, ids []string, companyID string) ([]Punch, error)

	// ListUnreconciled retrieves up to limit punches whose matched_at
	// marker is unset, ordered by clock-in then id. A nil since lifts the
	// lookback window.
	ListUnreconciled(ctx context.Context, companyID string, since *time.Time, limit int) ([]Punch, error)

	// List retrieves punches with filters and pagination
	List(ctx context.Context, filter PunchFilter, companyID string) ([]Punch, int64, error)

	// UpdateReconciliation writes the engine's results for one punch.
	// The update is conditional on matched_at still being NULL; it
	// reports false when another run already claimed the record.
	UpdateReconciliation(ctx context.Context, p Punch) (bool, error)

	// ListCompaniesWithUnreconciled returns company ids that have at
	// least one pending punch. Used by the cron job.
	ListCompaniesWithUnreconciled(ctx context.Context) ([]string, error)
}
