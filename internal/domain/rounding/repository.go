package rounding

import "context"

// RuleRepository defines data access methods for rounding rules.
type RuleRepository interface {
	Create(ctx context.Context, rule Rule) (Rule, error)

	// ListByCompany returns every rule for a company, shift-scoped and
	// default alike, ordered by id. Tier resolution happens in the engine.
	ListByCompany(ctx context.Context, companyID string) ([]Rule, error)

	Delete(ctx context.Context, id string, companyID string) error
}
