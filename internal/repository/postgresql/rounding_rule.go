package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/rounding"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
)

type ruleRepositoryImpl struct {
	db *database.DB
}

func NewRuleRepository(db *database.DB) rounding.RuleRepository {
	return &ruleRepositoryImpl{db: db}
}

const ruleColumns = `
	id, company_id, shift_id, rule_type, interval_minutes, direction,
	grace_minutes, grace_direction, apply_to_overtime, created_at, updated_at`

func scanRule(row rowScanner) (rounding.Rule, error) {
	var rule rounding.Rule
	err := row.Scan(
		&rule.ID,
		&rule.CompanyID,
		&rule.ShiftID,
		&rule.RuleType,
		&rule.IntervalMinutes,
		&rule.Direction,
		&rule.GraceMinutes,
		&rule.GraceDirection,
		&rule.ApplyToOvertime,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	return rule, err
}

// Create implements rounding.RuleRepository.
func (r *ruleRepositoryImpl) Create(ctx context.Context, rule rounding.Rule) (rounding.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rounding_rules (
			id, company_id, shift_id, rule_type, interval_minutes, direction,
			grace_minutes, grace_direction, apply_to_overtime
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + ruleColumns

	result, err := scanRule(q.QueryRow(ctx, query,
		rule.CompanyID,
		rule.ShiftID,
		rule.RuleType,
		rule.IntervalMinutes,
		rule.Direction,
		rule.GraceMinutes,
		rule.GraceDirection,
		rule.ApplyToOvertime,
	))
	if err != nil {
		return rounding.Rule{}, fmt.Errorf("failed to create rounding rule: %w", err)
	}

	return result, nil
}

// ListByCompany implements rounding.RuleRepository.
func (r *ruleRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]rounding.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ruleColumns + `
		FROM rounding_rules
		WHERE company_id = $1
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounding rules: %w", err)
	}
	defer rows.Close()

	var rules []rounding.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rounding rule: %w", err)
		}
		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return rules, nil
}

// Delete implements rounding.RuleRepository.
func (r *ruleRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM rounding_rules WHERE id = $1 AND company_id = $2`

	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete rounding rule: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return rounding.ErrRuleNotFound
	}

	return nil
}
