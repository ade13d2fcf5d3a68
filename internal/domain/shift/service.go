package shift

import (
	"context"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/rounding"
)

// CatalogService defines administration of the inputs the reconciliation
// engine consumes: shift definitions, schedule assignments and rounding
// rules. The engine itself only ever reads these.
type CatalogService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	ListShifts(ctx context.Context) ([]ShiftResponse, error)
	DeactivateShift(ctx context.Context, id string) error

	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	ListAssignments(ctx context.Context, filter AssignmentFilter) (ListAssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id string) error

	CreateRoundingRule(ctx context.Context, req rounding.CreateRuleRequest) (rounding.RuleResponse, error)
	ListRoundingRules(ctx context.Context) ([]rounding.RuleResponse, error)
	DeleteRoundingRule(ctx context.Context, id string) error
}
