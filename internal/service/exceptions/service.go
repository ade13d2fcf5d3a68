package exceptions

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/exception"
	"github.com/go-chi/jwtauth/v5"
)

type ExceptionServiceImpl struct {
	exception.ExceptionRepository
}

func NewExceptionService(repo exception.ExceptionRepository) exception.ExceptionService {
	return &ExceptionServiceImpl{ExceptionRepository: repo}
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

// ListExceptions implements exception.ExceptionService.
func (s *ExceptionServiceImpl) ListExceptions(ctx context.Context, filter exception.Filter) (exception.ListRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return exception.ListRecordResponse{}, err
	}

	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return exception.ListRecordResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := s.ExceptionRepository.List(ctx, filter, companyID)
	if err != nil {
		return exception.ListRecordResponse{}, fmt.Errorf("failed to list exception records: %w", err)
	}

	responses := make([]exception.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return exception.ListRecordResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

// ListByTimeEntry implements exception.ExceptionService.
func (s *ExceptionServiceImpl) ListByTimeEntry(ctx context.Context, timeEntryID string) ([]exception.RecordResponse, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.ExceptionRepository.ListByTimeEntry(ctx, timeEntryID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exception records: %w", err)
	}

	responses := make([]exception.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return responses, nil
}

// mapRecordToResponse converts a Record entity to RecordResponse
func mapRecordToResponse(rec exception.Record) exception.RecordResponse {
	resp := exception.RecordResponse{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		TimeEntryID:     rec.TimeEntryID,
		ShiftID:         rec.ShiftID,
		ExceptionDate:   rec.ExceptionDate.Format("2006-01-02"),
		Type:            string(rec.Type),
		Severity:        string(rec.Severity),
		VarianceMinutes: rec.VarianceMinutes,
		CreatedAt:       rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	if rec.ScheduledTime != nil {
		scheduled := rec.ScheduledTime.Format("2006-01-02 15:04:05")
		resp.ScheduledTime = &scheduled
	}
	if rec.ActualTime != nil {
		actual := rec.ActualTime.Format("2006-01-02 15:04:05")
		resp.ActualTime = &actual
	}

	return resp
}
