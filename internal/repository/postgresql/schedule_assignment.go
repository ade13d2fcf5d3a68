package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentColumns = `
	id, company_id, employee_id, shift_id, date, created_at, updated_at`

func scanAssignment(row rowScanner) (shift.Assignment, error) {
	var a shift.Assignment
	err := row.Scan(
		&a.ID,
		&a.CompanyID,
		&a.EmployeeID,
		&a.ShiftID,
		&a.Date,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// Create implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_assignments (id, company_id, employee_id, shift_id, date)
		VALUES (uuidv7(), $1, $2, $3, $4)
		RETURNING ` + assignmentColumns

	result, err := scanAssignment(q.QueryRow(ctx, query,
		a.CompanyID,
		a.EmployeeID,
		a.ShiftID,
		a.Date,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.Assignment{}, shift.ErrAssignmentExists
		}
		return shift.Assignment{}, fmt.Errorf("failed to create schedule assignment: %w", err)
	}

	return result, nil
}

// ListByEmployeeAndDate implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM schedule_assignments
		WHERE employee_id = $1 AND date = $2::date AND company_id = $3
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query, employeeID, date, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule assignments: %w", err)
	}
	defer rows.Close()

	return collectAssignments(rows)
}

// List implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) List(ctx context.Context, filter shift.AssignmentFilter, companyID string) ([]shift.Assignment, int64, error) {
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
		conditions = append(conditions, fmt.Sprintf("date >= $%d::date", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("date <= $%d::date", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM schedule_assignments WHERE ` + whereClause

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count schedule assignments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM schedule_assignments
		WHERE %s
		ORDER BY date ASC, id ASC
		LIMIT $%d OFFSET $%d
	`, assignmentColumns, whereClause, argPos, argPos+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list schedule assignments: %w", err)
	}
	defer rows.Close()

	assignments, err := collectAssignments(rows)
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

// Delete implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM schedule_assignments WHERE id = $1 AND company_id = $2`

	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule assignment: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}

	return nil
}

func collectAssignments(rows pgx.Rows) ([]shift.Assignment, error) {
	var assignments []shift.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assignments, nil
}
