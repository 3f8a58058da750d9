package leave

import (
	"context"
	"errors"
	"time"

	"go-timeoff/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFilter narrows List. A nil UserID lists the whole organization.
type ListFilter struct {
	Status string
	UserID *uuid.UUID
	Offset int
	Limit  int
}

// ReviewUpdate is applied only while the request is still pending.
type ReviewUpdate struct {
	Status     string
	ReviewedBy uuid.UUID
	ReviewedAt time.Time
	AdminNotes *string
}

// CalendarRow is one leave date joined with its request.
type CalendarRow struct {
	Date           time.Time
	LeaveRequestID uuid.UUID
	Status         string
	EmployeeName   string
	LeaveTypeName  string
	LeaveTypeColor string
}

//go:generate mockgen -destination=mock/leave_repo_mock.go -package=mock . Repository
type Repository interface {
	CreateWithDates(ctx context.Context, req *LeaveRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	FindByIDInOrganization(ctx context.Context, organizationID, id uuid.UUID) (*LeaveRequest, error)
	ConditionalReview(ctx context.Context, organizationID, id uuid.UUID, update ReviewUpdate) (bool, error)
	List(ctx context.Context, organizationID uuid.UUID, filter ListFilter) ([]LeaveRequest, int64, error)
	CalendarDates(ctx context.Context, organizationID uuid.UUID, from, to time.Time) ([]CalendarRow, error)
	CountPending(ctx context.Context, organizationID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithDates inserts the request and one date row per calendar day in a
// single transaction.
func (r *repository) CreateWithDates(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.ID == uuid.Nil {
			req.ID = uuid.New()
		}
		if err := tx.Omit("LeaveType", "PayPeriod", "Employee").Create(req).Error; err != nil {
			return err
		}

		days := DatesBetween(req.StartDate, req.EndDate)
		rows := make([]LeaveRequestDate, 0, len(days))
		for _, d := range days {
			rows = append(rows, LeaveRequestDate{
				ID:             uuid.New(),
				LeaveRequestID: req.ID,
				OrganizationID: req.OrganizationID,
				Date:           d,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// FindByID is unscoped. Review uses it to tell a foreign request (forbidden)
// from an unknown one.
func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Preload("PayPeriod").
		Preload("Employee").
		Where("id = ?", id).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) FindByIDInOrganization(ctx context.Context, organizationID, id uuid.UUID) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID.String())).
		Preload("LeaveType").
		Preload("PayPeriod").
		Preload("Employee").
		Where("id = ?", id).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) ConditionalReview(ctx context.Context, organizationID, id uuid.UUID, update ReviewUpdate) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Scopes(tenant.Scope(organizationID.String())).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]any{
			"status":      update.Status,
			"reviewed_by": update.ReviewedBy,
			"reviewed_at": update.ReviewedAt,
			"admin_notes": update.AdminNotes,
			"updated_at":  update.ReviewedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) List(ctx context.Context, organizationID uuid.UUID, filter ListFilter) ([]LeaveRequest, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Scopes(tenant.Scope(organizationID.String()))
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []LeaveRequest
	q = q.Preload("LeaveType").Preload("PayPeriod").Preload("Employee").
		Order("created_at DESC")
	if filter.Limit > 0 {
		q = q.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// CalendarDates returns pending and approved leave dates in [from, to].
func (r *repository) CalendarDates(ctx context.Context, organizationID uuid.UUID, from, to time.Time) ([]CalendarRow, error) {
	var rows []CalendarRow
	err := r.db.WithContext(ctx).
		Table("leave_request_dates AS d").
		Select("d.date, d.leave_request_id, lr.status, p.full_name AS employee_name, lt.name AS leave_type_name, lt.color AS leave_type_color").
		Joins("JOIN leave_requests lr ON lr.id = d.leave_request_id").
		Joins("JOIN leave_types lt ON lt.id = lr.leave_type_id").
		Joins("LEFT JOIN profiles p ON p.id = lr.user_id").
		Where("d.organization_id = ?", organizationID).
		Where("d.date BETWEEN ? AND ?", from, to).
		Where("lr.status IN ?", []string{StatusPending, StatusApproved}).
		Order("d.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CountPending(ctx context.Context, organizationID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Scopes(tenant.Scope(organizationID.String())).
		Where("status = ?", StatusPending).
		Count(&n).Error
	return n, err
}
