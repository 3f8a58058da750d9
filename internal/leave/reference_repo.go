package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/reference_repo_mock.go -package=mock . ReferenceRepository
type ReferenceRepository interface {
	ListLeaveTypes(ctx context.Context) ([]LeaveType, error)
	FindLeaveTypeByID(ctx context.Context, id uuid.UUID) (*LeaveType, error)
	FindLeaveTypeByName(ctx context.Context, name string) (*LeaveType, error)
	ListPayPeriods(ctx context.Context, year int) ([]PayPeriod, error)
	FindPayPeriodByID(ctx context.Context, id uuid.UUID) (*PayPeriod, error)
	PayPeriodsOverlapping(ctx context.Context, start, end time.Time) ([]PayPeriod, error)
}

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) ListLeaveTypes(ctx context.Context) ([]LeaveType, error) {
	var types []LeaveType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *referenceRepository) FindLeaveTypeByID(ctx context.Context, id uuid.UUID) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

// FindLeaveTypeByName matches case-insensitively.
func (r *referenceRepository) FindLeaveTypeByName(ctx context.Context, name string) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&lt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *referenceRepository) ListPayPeriods(ctx context.Context, year int) ([]PayPeriod, error) {
	var periods []PayPeriod
	q := r.db.WithContext(ctx)
	if year > 0 {
		q = q.Where("t4_year = ?", year)
	}
	if err := q.Order("start_date ASC").Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *referenceRepository) FindPayPeriodByID(ctx context.Context, id uuid.UUID) (*PayPeriod, error) {
	var p PayPeriod
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *referenceRepository) PayPeriodsOverlapping(ctx context.Context, start, end time.Time) ([]PayPeriod, error) {
	var periods []PayPeriod
	err := r.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date ASC").
		Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}
