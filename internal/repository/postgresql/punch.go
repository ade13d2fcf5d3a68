package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchColumns = `
	id, employee_id, company_id, clock_in, clock_out, break_duration_minutes,
	shift_id, matched_at, match_quality, scheduled_start, scheduled_end,
	rounded_clock_in, rounded_clock_out, rounding_rule_applied,
	break_minutes_expected, regular_hours, overtime_hours,
	exceptions_detected, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPunch(row rowScanner) (punch.Punch, error) {
	var p punch.Punch
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.CompanyID,
		&p.ClockIn,
		&p.ClockOut,
		&p.BreakDurationMinutes,
		&p.ShiftID,
		&p.MatchedAt,
		&p.MatchQuality,
		&p.ScheduledStart,
		&p.ScheduledEnd,
		&p.RoundedClockIn,
		&p.RoundedClockOut,
		&p.RoundingRuleApplied,
		&p.BreakMinutesExpected,
		&p.RegularHours,
		&p.OvertimeHours,
		&p.ExceptionsDetected,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (
			id, employee_id, company_id, clock_in, clock_out,
			break_duration_minutes, regular_hours, overtime_hours
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, 0, 0)
		RETURNING ` + punchColumns

	result, err := scanPunch(q.QueryRow(ctx, query,
		p.EmployeeID,
		p.CompanyID,
		p.ClockIn,
		p.ClockOut,
		p.BreakDurationMinutes,
	))
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return result, nil
}

// GetByID implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM time_entries
		WHERE id = $1 AND company_id = $2
	`

	result, err := scanPunch(q.QueryRow(ctx, query, id, companyID))
	if errors.Is(err, pgx.ErrNoRows) {
		return punch.Punch{}, punch.ErrPunchNotFound
	}
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return result, nil
}

// GetByIDs implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByIDs(ctx context.Context, ids []string, companyID string) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM time_entries
		WHERE id = ANY($1) AND company_id = $2
		ORDER BY clock_in ASC, id ASC
	`

	rows, err := q.Query(ctx, query, ids, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time entries: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}

// ListUnreconciled implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListUnreconciled(ctx context.Context, companyID string, since *time.Time, limit int) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM time_entries
		WHERE company_id = $1
		  AND matched_at IS NULL
		  AND ($2::timestamptz IS NULL OR clock_in >= $2)
		ORDER BY clock_in ASC, id ASC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, companyID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unreconciled time entries: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}

// List implements punch.PunchRepository.
func (r *punchRepositoryImpl) List(ctx context.Context, filter punch.PunchFilter, companyID string) ([]punch.Punch, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"company_id = $1"}
	args := []any{companyID}
	argPos := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("clock_in >= $%d::date", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("clock_in < $%d::date + interval '1 day'", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	if filter.MatchQuality != nil && *filter.MatchQuality != "" {
		conditions = append(conditions, fmt.Sprintf("match_quality = $%d", argPos))
		args = append(args, *filter.MatchQuality)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM time_entries WHERE ` + whereClause

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time entries: %w", err)
	}

	sortColumn := "clock_in"
	switch filter.SortBy {
	case "created_at", "employee_id", "clock_in":
		sortColumn = filter.SortBy
	}
	sortOrder := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM time_entries
		WHERE %s
		ORDER BY %s %s, id ASC
		LIMIT $%d OFFSET $%d
	`, punchColumns, whereClause, sortColumn, sortOrder, argPos, argPos+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	punches, err := collectPunches(rows)
	if err != nil {
		return nil, 0, err
	}

	return punches, total, nil
}

// UpdateReconciliation implements punch.PunchRepository.
func (r *punchRepositoryImpl) UpdateReconciliation(ctx context.Context, p punch.Punch) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET shift_id = $1,
		    matched_at = $2,
		    match_quality = $3,
		    scheduled_start = $4,
		    scheduled_end = $5,
		    rounded_clock_in = $6,
		    rounded_clock_out = $7,
		    rounding_rule_applied = $8,
		    break_minutes_expected = $9,
		    regular_hours = $10,
		    overtime_hours = $11,
		    exceptions_detected = $12,
		    updated_at = NOW()
		WHERE id = $13 AND company_id = $14 AND matched_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query,
		p.ShiftID,
		p.MatchedAt,
		p.MatchQuality,
		p.ScheduledStart,
		p.ScheduledEnd,
		p.RoundedClockIn,
		p.RoundedClockOut,
		p.RoundingRuleApplied,
		p.BreakMinutesExpected,
		p.RegularHours,
		p.OvertimeHours,
		p.ExceptionsDetected,
		p.ID,
		p.CompanyID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update time entry reconciliation: %w", err)
	}

	return commandTag.RowsAffected() > 0, nil
}

// ListCompaniesWithUnreconciled implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListCompaniesWithUnreconciled(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT company_id
		FROM time_entries
		WHERE matched_at IS NULL
		ORDER BY company_id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies with pending entries: %w", err)
	}
	defer rows.Close()

	var companyIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan company id: %w", err)
		}
		companyIDs = append(companyIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return companyIDs, nil
}

func collectPunches(rows pgx.Rows) ([]punch.Punch, error) {
	var punches []punch.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return punches, nil
}
