package leave

import (
	"fmt"
	"time"

	"go-timeoff/internal/organization"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

const VacationLeaveType = "Vacation"

const dateLayout = "2006-01-02"

type LeaveRequest struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_leave_requests_user"`
	LeaveTypeID    uuid.UUID  `gorm:"type:uuid;not null"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index:idx_leave_requests_org_status"`
	PayPeriodID    *uuid.UUID `gorm:"type:uuid"`

	SubmissionDate time.Time `gorm:"type:date;not null"`
	StartDate      time.Time `gorm:"type:date;not null"`
	EndDate        time.Time `gorm:"type:date;not null"`
	Reason         string    `gorm:"type:text;not null"`
	CoverageName   *string   `gorm:"type:varchar(150)"`
	CoverageEmail  *string   `gorm:"type:varchar(255)"`

	Status     string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_leave_requests_org_status"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt *time.Time
	AdminNotes *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	LeaveType *LeaveType            `gorm:"foreignKey:LeaveTypeID"`
	PayPeriod *PayPeriod            `gorm:"foreignKey:PayPeriodID"`
	Employee  *organization.Profile `gorm:"foreignKey:UserID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// TotalDays counts calendar days in [StartDate, EndDate].
func (l LeaveRequest) TotalDays() int {
	return len(DatesBetween(l.StartDate, l.EndDate))
}

func (l LeaveRequest) IsVacation() bool {
	return l.LeaveType != nil && l.LeaveType.Name == VacationLeaveType
}

// LeaveRequestDate is written once alongside its request.
type LeaveRequestDate struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveRequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_request_dates_org_date"`
	Date           time.Time `gorm:"type:date;not null;index:idx_leave_request_dates_org_date"`
}

func (LeaveRequestDate) TableName() string {
	return "leave_request_dates"
}

type LeaveType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Color       string    `gorm:"type:varchar(20);not null;default:'#3b82f6'"`
	IsSingleDay bool      `gorm:"not null;default:true"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

type PayPeriod struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PeriodNumber int       `gorm:"not null"`
	StartDate    time.Time `gorm:"type:date;not null"`
	EndDate      time.Time `gorm:"type:date;not null"`
	T4Year       int       `gorm:"column:t4_year;not null;index"`
}

func (PayPeriod) TableName() string {
	return "pay_periods"
}

func (p PayPeriod) Label() string {
	return fmt.Sprintf("PP%d (%s - %s)", p.PeriodNumber, p.StartDate.Format(dateLayout), p.EndDate.Format(dateLayout))
}

// DatesBetween lists each calendar day from start to end inclusive; an
// inverted range yields nothing.
func DatesBetween(start, end time.Time) []time.Time {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return nil
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MaxRequestDays bounds the inclusive length of one request or calendar query.
const MaxRequestDays = 366

// DaySpan counts calendar days in [start, end], or 0 when end is before start.
func DaySpan(start, end time.Time) int {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(v string) (time.Time, error) {
	return time.Parse(dateLayout, v)
}
