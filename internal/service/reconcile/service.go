package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/config"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/exception"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/rounding"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type ReconcileServiceImpl struct {
	db *database.DB
	punch.PunchRepository
	shift.ShiftRepository
	shift.AssignmentRepository
	rounding.RuleRepository
	exception.ExceptionRepository
	loc          *time.Location
	batchLimit   int
	lookbackDays int
}

func NewReconciliationService(
	db *database.DB,
	punchRepo punch.PunchRepository,
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.AssignmentRepository,
	ruleRepo rounding.RuleRepository,
	exceptionRepo exception.ExceptionRepository,
	loc *time.Location,
	cfg config.ReconcileConfig,
) punch.ReconciliationService {
	return &ReconcileServiceImpl{
		db:                   db,
		PunchRepository:      punchRepo,
		ShiftRepository:      shiftRepo,
		AssignmentRepository: assignmentRepo,
		RuleRepository:       ruleRepo,
		ExceptionRepository:  exceptionRepo,
		loc:                  loc,
		batchLimit:           cfg.BatchLimit,
		lookbackDays:         cfg.LookbackDays,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func companyIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// CreatePunch implements punch.ReconciliationService.
func (s *ReconcileServiceImpl) CreatePunch(ctx context.Context, req punch.CreatePunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	clockIn, _ := validator.IsValidDateTime(req.ClockIn)

	var clockOut *time.Time
	if req.ClockOut != nil {
		out, _ := validator.IsValidDateTime(*req.ClockOut)
		outUTC := out.UTC()
		clockOut = &outUTC
	}

	data := punch.Punch{
		EmployeeID:           req.EmployeeID,
		CompanyID:            companyID,
		ClockIn:              clockIn.UTC(),
		ClockOut:             clockOut,
		BreakDurationMinutes: req.BreakDurationMinutes,
		RegularHours:         decimal.Zero,
		OvertimeHours:        decimal.Zero,
	}

	created, err := s.PunchRepository.Create(ctx, data)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to create punch record: %w", err)
	}

	return mapPunchToResponse(created), nil
}

// GetPunch implements punch.ReconciliationService.
func (s *ReconcileServiceImpl) GetPunch(ctx context.Context, id string) (punch.PunchResponse, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	p, err := s.PunchRepository.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, punch.ErrPunchNotFound) {
			return punch.PunchResponse{}, punch.ErrPunchNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get punch: %w", err)
	}

	return mapPunchToResponse(p), nil
}

// ListPunches implements punch.ReconciliationService.
func (s *ReconcileServiceImpl) ListPunches(ctx context.Context, filter punch.PunchFilter) (punch.ListPunchResponse, error) {
	if err := filter.Validate(); err != nil {
		return punch.ListPunchResponse{}, err
	}

	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return punch.ListPunchResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	punches, total, err := s.PunchRepository.List(ctx, filter, companyID)
	if err != nil {
		return punch.ListPunchResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, mapPunchToResponse(p))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return punch.ListPunchResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Punches:    responses,
	}, nil
}

// Reconcile implements punch.ReconciliationService.
func (s *ReconcileServiceImpl) Reconcile(ctx context.Context, req punch.ReconcileRequest) (punch.RunSummary, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return punch.RunSummary{}, err
	}

	return s.ReconcileCompany(ctx, companyID, req)
}

// ReconcileCompany implements punch.ReconciliationService.
//
// Fetch failures abort the whole run with no partial results. Per-record
// persistence failures are logged, counted and skipped: a failed punch
// keeps its marker unset and is picked up by a later run.
func (s *ReconcileServiceImpl) ReconcileCompany(ctx context.Context, companyID string, req punch.ReconcileRequest) (punch.RunSummary, error) {
	if err := req.Validate(); err != nil {
		return punch.RunSummary{}, err
	}

	now := time.Now().UTC()
	summary := punch.RunSummary{
		RunID:            uuid.NewString(),
		CompanyID:        companyID,
		StartedAt:        now,
		ExceptionsByType: make(map[string]int),
	}

	var punches []punch.Punch
	var err error
	if len(req.EntryIDs) > 0 {
		punches, err = s.PunchRepository.GetByIDs(ctx, req.EntryIDs, companyID)
	} else {
		var since *time.Time
		if !req.ProcessAll {
			cutoff := now.AddDate(0, 0, -s.lookbackDays)
			since = &cutoff
		}
		punches, err = s.PunchRepository.ListUnreconciled(ctx, companyID, since, s.batchLimit)
	}
	if err != nil {
		return punch.RunSummary{}, fmt.Errorf("failed to fetch punch records: %w", err)
	}

	defs, err := s.ShiftRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return punch.RunSummary{}, fmt.Errorf("failed to fetch shift definitions: %w", err)
	}

	rules, err := s.RuleRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return punch.RunSummary{}, fmt.Errorf("failed to fetch rounding rules: %w", err)
	}

	for _, p := range punches {
		if p.MatchedAt != nil {
			summary.Skipped++
			continue
		}
		if p.ClockIn.IsZero() {
			// Attendance data quality issues are expected; they must
			// never halt payroll-adjacent processing.
			slog.Warn("skipping punch without clock-in", "time_entry_id", p.ID)
			summary.Unmatched++
			continue
		}

		records, err := s.reconcilePunch(ctx, &p, defs, rules, now)
		if err != nil {
			if errors.Is(err, punch.ErrAlreadyReconciled) {
				summary.Skipped++
				continue
			}
			slog.Error("failed to persist reconciliation result",
				"time_entry_id", p.ID,
				"employee_id", p.EmployeeID,
				"error", err)
			summary.Failed++
			continue
		}

		summary.Processed++
		switch p.MatchQuality {
		case punch.MatchExact:
			summary.Exact++
			summary.Matched++
		case punch.MatchClose:
			summary.Close++
			summary.Matched++
		default:
			summary.Unmatched++
		}
		for _, rec := range records {
			summary.ExceptionsByType[string(rec.Type)]++
		}
	}

	slog.Info("reconciliation run completed",
		"run_id", summary.RunID,
		"company_id", companyID,
		"processed", summary.Processed,
		"matched", summary.Matched,
		"unmatched", summary.Unmatched,
		"skipped", summary.Skipped,
		"failed", summary.Failed)

	return summary, nil
}

// reconcilePunch runs the full pipeline for one punch: match, resolve,
// round, derive hours, classify, persist. The punch result and its
// exception records are written in one transaction, conditional on the
// idempotency marker still being unset.
func (s *ReconcileServiceImpl) reconcilePunch(ctx context.Context, p *punch.Punch, defs []shift.Definition, rules []rounding.Rule, now time.Time) ([]exception.Record, error) {
	assignments, err := s.AssignmentRepository.ListByEmployeeAndDate(ctx, p.EmployeeID, dayOf(p.ClockIn, s.loc), p.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule assignments: %w", err)
	}

	match := matchShift(p.ClockIn, assignments, defs, s.loc)

	var shiftID *string
	if match != nil {
		id := match.ShiftID
		shiftID = &id
		p.ShiftID = &id
		p.MatchQuality = match.Quality
		start := match.ScheduledStart
		end := match.ScheduledEnd
		p.ScheduledStart = &start
		p.ScheduledEnd = &end
		expected := match.BreakMinutesExpected
		p.BreakMinutesExpected = &expected
	} else {
		p.MatchQuality = punch.MatchUnmatched
	}

	resolved := resolveRules(rules, shiftID)

	// Rounding needs a scheduled anchor, so unmatched punches keep their
	// raw timestamps.
	roundedIn := p.ClockIn
	var appliedRule *string
	if match != nil {
		if rule := clockInRule(resolved); rule != nil {
			roundedIn = roundTime(p.ClockIn, match.ScheduledStart, *rule)
			id := rule.ID
			appliedRule = &id
		}
	}
	p.RoundedClockIn = &roundedIn

	var roundedOut *time.Time
	if p.ClockOut != nil {
		out := *p.ClockOut
		if match != nil {
			if rule := clockOutRule(resolved); rule != nil {
				out = roundTime(*p.ClockOut, match.ScheduledEnd, *rule)
				if appliedRule == nil {
					id := rule.ID
					appliedRule = &id
				}
			}
		}
		roundedOut = &out
		p.RoundedClockOut = &out
	}
	p.RoundingRuleApplied = appliedRule

	standard := defaultStandardHours
	if match != nil {
		standard = match.StandardHours
	}
	hours := computeHours(roundedIn, roundedOut, p.BreakDurationMinutes, standard)
	p.RegularHours = hours.RegularHours
	p.OvertimeHours = hours.OvertimeHours

	records := detectExceptions(*p, match, hours, now, s.loc)

	types := make([]string, 0, len(records))
	for _, rec := range records {
		types = append(types, string(rec.Type))
	}
	p.ExceptionsDetected = types

	// The marker stays unset while the clock-out is missing, so the
	// record is reprocessed once a clock-out arrives.
	if p.ClockOut != nil {
		completedAt := now
		p.MatchedAt = &completedAt
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		claimed, err := s.PunchRepository.UpdateReconciliation(txCtx, *p)
		if err != nil {
			return err
		}
		if !claimed {
			return punch.ErrAlreadyReconciled
		}

		if len(records) > 0 {
			if err := s.ExceptionRepository.BulkCreate(txCtx, records); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// mapPunchToResponse converts a Punch entity to PunchResponse
func mapPunchToResponse(p punch.Punch) punch.PunchResponse {
	return punch.PunchResponse{
		ID:                   p.ID,
		EmployeeID:           p.EmployeeID,
		ClockIn:              p.ClockIn.Format("2006-01-02 15:04:05"),
		ClockOut:             timePtrToString(p.ClockOut),
		BreakDurationMinutes: p.BreakDurationMinutes,
		ShiftID:              p.ShiftID,
		MatchedAt:            timePtrToString(p.MatchedAt),
		MatchQuality:         string(p.MatchQuality),
		ScheduledStart:       timePtrToString(p.ScheduledStart),
		ScheduledEnd:         timePtrToString(p.ScheduledEnd),
		RoundedClockIn:       timePtrToString(p.RoundedClockIn),
		RoundedClockOut:      timePtrToString(p.RoundedClockOut),
		RoundingRuleApplied:  p.RoundingRuleApplied,
		BreakMinutesExpected: p.BreakMinutesExpected,
		RegularHours:         p.RegularHours.String(),
		OvertimeHours:        p.OvertimeHours.String(),
		ExceptionsDetected:   p.ExceptionsDetected,
		CreatedAt:            p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:            p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
