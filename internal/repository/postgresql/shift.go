package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `
	id, company_id, name, start_time, end_time, applicable_days,
	standard_hours, break_duration_minutes, is_active, created_at, updated_at`

func scanShift(row rowScanner) (shift.Definition, error) {
	var def shift.Definition
	err := row.Scan(
		&def.ID,
		&def.CompanyID,
		&def.Name,
		&def.StartTime,
		&def.EndTime,
		&def.ApplicableDays,
		&def.StandardHours,
		&def.BreakDurationMinutes,
		&def.IsActive,
		&def.CreatedAt,
		&def.UpdatedAt,
	)
	return def, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, def shift.Definition) (shift.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_definitions (
			id, company_id, name, start_time, end_time, applicable_days,
			standard_hours, break_duration_minutes, is_active
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + shiftColumns

	result, err := scanShift(q.QueryRow(ctx, query,
		def.CompanyID,
		def.Name,
		def.StartTime,
		def.EndTime,
		def.ApplicableDays,
		def.StandardHours,
		def.BreakDurationMinutes,
		def.IsActive,
	))
	if err != nil {
		return shift.Definition{}, fmt.Errorf("failed to create shift definition: %w", err)
	}

	return result, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (shift.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_definitions
		WHERE id = $1 AND company_id = $2
	`

	result, err := scanShift(q.QueryRow(ctx, query, id, companyID))
	if errors.Is(err, pgx.ErrNoRows) {
		return shift.Definition{}, shift.ErrShiftNotFound
	}
	if err != nil {
		return shift.Definition{}, fmt.Errorf("failed to get shift definition: %w", err)
	}

	return result, nil
}

// ListByCompany implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]shift.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_definitions
		WHERE company_id = $1
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift definitions: %w", err)
	}
	defer rows.Close()

	var defs []shift.Definition
	for rows.Next() {
		def, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift definition: %w", err)
		}
		defs = append(defs, def)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return defs, nil
}

// Deactivate implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Deactivate(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_definitions
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to deactivate shift definition: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
