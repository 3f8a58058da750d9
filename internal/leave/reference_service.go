package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/reference_service_mock.go -package=mock . ReferenceService
type ReferenceService interface {
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	ListPayPeriods(ctx context.Context, year int) ([]PayPeriodResponse, error)
	ResolveLeaveType(ctx context.Context, nameOrID string) (*LeaveType, error)
	FindPayPeriod(ctx context.Context, id string) (*PayPeriod, error)
	PayPeriodsOverlapping(ctx context.Context, start, end time.Time) ([]PayPeriod, error)
}

type referenceService struct {
	repo   ReferenceRepository
	logger *zap.Logger
}

func NewReferenceService(repo ReferenceRepository, logger ...*zap.Logger) ReferenceService {
	l := zap.L().Named("leave.reference")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.reference")
	}
	return &referenceService{repo: repo, logger: l}
}

func (s *referenceService) ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.ListLeaveTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leave types: %w", err)
	}
	out := make([]LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		out = append(out, LeaveTypeResponse{
			ID:          lt.ID.String(),
			Name:        lt.Name,
			Color:       lt.Color,
			IsSingleDay: lt.IsSingleDay,
		})
	}
	return out, nil
}

func (s *referenceService) ListPayPeriods(ctx context.Context, year int) ([]PayPeriodResponse, error) {
	periods, err := s.repo.ListPayPeriods(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("list pay periods: %w", err)
	}
	out := make([]PayPeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, mapPayPeriod(p))
	}
	return out, nil
}

// ResolveLeaveType accepts either the catalog id or its name. Unknown values
// yield (nil, nil).
func (s *referenceService) ResolveLeaveType(ctx context.Context, nameOrID string) (*LeaveType, error) {
	if id, err := uuid.Parse(nameOrID); err == nil {
		return s.repo.FindLeaveTypeByID(ctx, id)
	}
	if nameOrID == "" {
		return nil, nil
	}
	return s.repo.FindLeaveTypeByName(ctx, nameOrID)
}

func (s *referenceService) FindPayPeriod(ctx context.Context, id string) (*PayPeriod, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return s.repo.FindPayPeriodByID(ctx, uid)
}

func (s *referenceService) PayPeriodsOverlapping(ctx context.Context, start, end time.Time) ([]PayPeriod, error) {
	periods, err := s.repo.PayPeriodsOverlapping(ctx, truncateDay(start), truncateDay(end))
	if err != nil {
		s.logger.Error("load overlapping pay periods failed", zap.Error(err))
		return nil, err
	}
	return periods, nil
}

func mapPayPeriod(p PayPeriod) PayPeriodResponse {
	return PayPeriodResponse{
		ID:           p.ID.String(),
		PeriodNumber: p.PeriodNumber,
		StartDate:    p.StartDate.Format(dateLayout),
		EndDate:      p.EndDate.Format(dateLayout),
		T4Year:       p.T4Year,
		Label:        p.Label(),
	}
}
