package shiftcatalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/rounding"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type CatalogServiceImpl struct {
	shift.ShiftRepository
	shift.AssignmentRepository
	rounding.RuleRepository
}

func NewCatalogService(
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.AssignmentRepository,
	ruleRepo rounding.RuleRepository,
) shift.CatalogService {
	return &CatalogServiceImpl{
		ShiftRepository:      shiftRepo,
		AssignmentRepository: assignmentRepo,
		RuleRepository:       ruleRepo,
	}
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

// CreateShift implements shift.CatalogService.
func (s *CatalogServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	data := shift.Definition{
		CompanyID:            companyID,
		Name:                 req.Name,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		ApplicableDays:       req.ApplicableDays,
		StandardHours:        decimal.NewFromFloat(req.StandardHours),
		BreakDurationMinutes: req.BreakDurationMinutes,
		IsActive:             true,
	}

	created, err := s.ShiftRepository.Create(ctx, data)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift definition: %w", err)
	}

	return mapShiftToResponse(created), nil
}

// GetShift implements shift.CatalogService.
func (s *CatalogServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	def, err := s.ShiftRepository.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift definition: %w", err)
	}

	return mapShiftToResponse(def), nil
}

// ListShifts implements shift.CatalogService.
func (s *CatalogServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	defs, err := s.ShiftRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift definitions: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(defs))
	for _, def := range defs {
		responses = append(responses, mapShiftToResponse(def))
	}

	return responses, nil
}

// DeactivateShift implements shift.CatalogService.
func (s *CatalogServiceImpl) DeactivateShift(ctx context.Context, id string) error {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return err
	}

	if err := s.ShiftRepository.Deactivate(ctx, id, companyID); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to deactivate shift definition: %w", err)
	}

	return nil
}

// CreateAssignment implements shift.CatalogService.
func (s *CatalogServiceImpl) CreateAssignment(ctx context.Context, req shift.CreateAssignmentRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	// The referenced shift must belong to the same company.
	if _, err := s.ShiftRepository.GetByID(ctx, req.ShiftID, companyID); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.AssignmentResponse{}, shift.ErrShiftNotFound
		}
		return shift.AssignmentResponse{}, fmt.Errorf("failed to verify shift definition: %w", err)
	}

	date, _ := validator.IsValidDate(req.Date)

	data := shift.Assignment{
		CompanyID:  companyID,
		EmployeeID: req.EmployeeID,
		ShiftID:    req.ShiftID,
		Date:       date,
	}

	created, err := s.AssignmentRepository.Create(ctx, data)
	if err != nil {
		if errors.Is(err, shift.ErrAssignmentExists) {
			return shift.AssignmentResponse{}, shift.ErrAssignmentExists
		}
		return shift.AssignmentResponse{}, fmt.Errorf("failed to create schedule assignment: %w", err)
	}

	return mapAssignmentToResponse(created), nil
}

// ListAssignments implements shift.CatalogService.
func (s *CatalogServiceImpl) ListAssignments(ctx context.Context, filter shift.AssignmentFilter) (shift.ListAssignmentResponse, error) {
	if err := filter.Validate(); err != nil {
		return shift.ListAssignmentResponse{}, err
	}

	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return shift.ListAssignmentResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	assignments, total, err := s.AssignmentRepository.List(ctx, filter, companyID)
	if err != nil {
		return shift.ListAssignmentResponse{}, fmt.Errorf("failed to list schedule assignments: %w", err)
	}

	responses := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, mapAssignmentToResponse(a))
	}

	return shift.ListAssignmentResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Assignments: responses,
	}, nil
}

// DeleteAssignment implements shift.CatalogService.
func (s *CatalogServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return err
	}

	if err := s.AssignmentRepository.Delete(ctx, id, companyID); err != nil {
		if errors.Is(err, shift.ErrAssignmentNotFound) {
			return shift.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete schedule assignment: %w", err)
	}

	return nil
}

// CreateRoundingRule implements shift.CatalogService.
func (s *CatalogServiceImpl) CreateRoundingRule(ctx context.Context, req rounding.CreateRuleRequest) (rounding.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return rounding.RuleResponse{}, err
	}

	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return rounding.RuleResponse{}, err
	}

	if req.ShiftID != nil {
		if _, err := s.ShiftRepository.GetByID(ctx, *req.ShiftID, companyID); err != nil {
			if errors.Is(err, shift.ErrShiftNotFound) {
				return rounding.RuleResponse{}, shift.ErrShiftNotFound
			}
			return rounding.RuleResponse{}, fmt.Errorf("failed to verify shift definition: %w", err)
		}
	}

	data := rounding.Rule{
		CompanyID:       companyID,
		ShiftID:         req.ShiftID,
		RuleType:        rounding.RuleType(req.RuleType),
		IntervalMinutes: req.IntervalMinutes,
		Direction:       rounding.Direction(req.Direction),
		GraceMinutes:    req.GraceMinutes,
		GraceDirection:  rounding.GraceDirection(req.GraceDirection),
		ApplyToOvertime: req.ApplyToOvertime,
	}

	created, err := s.RuleRepository.Create(ctx, data)
	if err != nil {
		return rounding.RuleResponse{}, fmt.Errorf("failed to create rounding rule: %w", err)
	}

	return mapRuleToResponse(created), nil
}

// ListRoundingRules implements shift.CatalogService.
func (s *CatalogServiceImpl) ListRoundingRules(ctx context.Context) ([]rounding.RuleResponse, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	rules, err := s.RuleRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounding rules: %w", err)
	}

	responses := make([]rounding.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, mapRuleToResponse(rule))
	}

	return responses, nil
}

// DeleteRoundingRule implements shift.CatalogService.
func (s *CatalogServiceImpl) DeleteRoundingRule(ctx context.Context, id string) error {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return err
	}

	if err := s.RuleRepository.Delete(ctx, id, companyID); err != nil {
		if errors.Is(err, rounding.ErrRuleNotFound) {
			return rounding.ErrRuleNotFound
		}
		return fmt.Errorf("failed to delete rounding rule: %w", err)
	}

	return nil
}

// mapShiftToResponse converts a Definition entity to ShiftResponse
func mapShiftToResponse(def shift.Definition) shift.ShiftResponse {
	standardHours, _ := def.StandardHours.Float64()
	return shift.ShiftResponse{
		ID:                   def.ID,
		Name:                 def.Name,
		StartTime:            def.StartTime,
		EndTime:              def.EndTime,
		ApplicableDays:       def.ApplicableDays,
		StandardHours:        standardHours,
		BreakDurationMinutes: def.BreakDurationMinutes,
		IsActive:             def.IsActive,
		CreatedAt:            def.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:            def.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// mapAssignmentToResponse converts an Assignment entity to AssignmentResponse
func mapAssignmentToResponse(a shift.Assignment) shift.AssignmentResponse {
	return shift.AssignmentResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		ShiftID:    a.ShiftID,
		Date:       a.Date.Format("2006-01-02"),
		CreatedAt:  a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// mapRuleToResponse converts a Rule entity to RuleResponse
func mapRuleToResponse(rule rounding.Rule) rounding.RuleResponse {
	return rounding.RuleResponse{
		ID:              rule.ID,
		ShiftID:         rule.ShiftID,
		RuleType:        string(rule.RuleType),
		IntervalMinutes: rule.IntervalMinutes,
		Direction:       string(rule.Direction),
		GraceMinutes:    rule.GraceMinutes,
		GraceDirection:  string(rule.GraceDirection),
		ApplyToOvertime: rule.ApplyToOvertime,
		CreatedAt:       rule.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
