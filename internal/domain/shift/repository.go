package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for shift definitions.
type ShiftRepository interface {
	Create(ctx context.Context, def Definition) (Definition, error)

	GetByID(ctx context.Context, id string, companyID string) (Definition, error)

	// ListByCompany returns every definition for a company, active or
	// not, ordered by id. The matcher filters on IsActive itself because
	// assignments may still reference deactivated shifts.
	ListByCompany(ctx context.Context, companyID string) ([]Definition, error)

	// Deactivate clears the active flag without deleting history
	Deactivate(ctx context.Context, id string, companyID string) error
}

// AssignmentRepository defines data access methods for date-specific
// schedule assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)

	// ListByEmployeeAndDate returns the employee's assignments dated to
	// the given calendar day, ordered by id
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) ([]Assignment, error)

	List(ctx context.Context, filter AssignmentFilter, companyID string) ([]Assignment, int64, error)

	Delete(ctx context.Context, id string, companyID string) error
}
