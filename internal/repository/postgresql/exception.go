package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/exception"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type exceptionRepositoryImpl struct {
	db *database.DB
}

func NewExceptionRepository(db *database.DB) exception.ExceptionRepository {
	return &exceptionRepositoryImpl{db: db}
}

const exceptionColumns = `
	id, company_id, employee_id, time_entry_id, shift_id, exception_date,
	exception_type, severity, scheduled_time, actual_time, variance_minutes,
	created_at`

func scanException(row rowScanner) (exception.Record, error) {
	var rec exception.Record
	err := row.Scan(
		&rec.ID,
		&rec.CompanyID,
		&rec.EmployeeID,
		&rec.TimeEntryID,
		&rec.ShiftID,
		&rec.ExceptionDate,
		&rec.Type,
		&rec.Severity,
		&rec.ScheduledTime,
		&rec.ActualTime,
		&rec.VarianceMinutes,
		&rec.CreatedAt,
	)
	return rec, err
}

// BulkCreate implements exception.ExceptionRepository.
func (r *exceptionRepositoryImpl) BulkCreate(ctx context.Context, records []exception.Record) error {
	if len(records) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	valueClauses := make([]string, 0, len(records))
	args := make([]any, 0, len(records)*10)
	argPos := 1

	for _, rec := range records {
		valueClauses = append(valueClauses, fmt.Sprintf(
			"(uuidv7(), $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			argPos, argPos+1, argPos+2, argPos+3, argPos+4,
			argPos+5, argPos+6, argPos+7, argPos+8, argPos+9,
		))
		args = append(args,
			rec.CompanyID,
			rec.EmployeeID,
			rec.TimeEntryID,
			rec.ShiftID,
			rec.ExceptionDate,
			rec.Type,
			rec.Severity,
			rec.ScheduledTime,
			rec.ActualTime,
			rec.VarianceMinutes,
		)
		argPos += 10
	}

	query := `
		INSERT INTO attendance_exceptions (
			id, company_id, employee_id, time_entry_id, shift_id,
			exception_date, exception_type, severity, scheduled_time,
			actual_time, variance_minutes
		)
		VALUES ` + strings.Join(valueClauses, ", ")

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create exception records: %w", err)
	}

	return nil
}

// ListByTimeEntry implements exception.ExceptionRepository.
func (r *exceptionRepositoryImpl) ListByTimeEntry(ctx context.Context, timeEntryID string, companyID string) ([]exception.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + exceptionColumns + `
		FROM attendance_exceptions
		WHERE time_entry_id = $1 AND company_id = $2
		ORDER BY created_at DESC, id ASC
	`

	rows, err := q.Query(ctx, query, timeEntryID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exception records: %w", err)
	}
	defer rows.Close()

	return collectExceptions(rows)
}

// List implements exception.ExceptionRepository.
func (r *exceptionRepositoryImpl) List(ctx context.Context, filter exception.Filter, companyID string) ([]exception.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"company_id = $1"}
	args := []any{companyID}
	argPos := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}

	if filter.Type != nil && *filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("exception_type = $%d", argPos))
		args = append(args, *filter.Type)
		argPos++
	}

	if filter.Severity != nil && *filter.Severity != "" {
		conditions = append(conditions, fmt.Sprintf("severity = $%d", argPos))
		args = append(args, *filter.Severity)
		argPos++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("exception_date >= $%d::date", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("exception_date <= $%d::date", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM attendance_exceptions WHERE ` + whereClause

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count exception records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_exceptions
		WHERE %s
		ORDER BY exception_date DESC, id ASC
		LIMIT $%d OFFSET $%d
	`, exceptionColumns, whereClause, argPos, argPos+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list exception records: %w", err)
	}
	defer rows.Close()

	records, err := collectExceptions(rows)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func collectExceptions(rows pgx.Rows) ([]exception.Record, error) {
	var records []exception.Record
	for rows.Next() {
		rec, err := scanException(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exception record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
