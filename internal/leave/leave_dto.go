package leave

import "time"

type ReviewLeaveRequest struct {
	Decision   string `json:"decision" binding:"required,oneof=approved denied"`
	AdminNotes string `json:"admin_notes" binding:"max=2000"`
}

type ListLeaveRequestsQuery struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type CalendarQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// CreateLeaveRequestInput is the persistence half of an authenticated
// day_off or vacation submission.
type CreateLeaveRequestInput struct {
	UserID         string
	OrganizationID string
	LeaveTypeID    string
	PayPeriodID    *string
	StartDate      time.Time
	EndDate        time.Time
	Reason         string
	CoverageName   string
	CoverageEmail  string
}

type LeaveRequestResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	EmployeeName   string     `json:"employee_name,omitempty"`
	EmployeeEmail  string     `json:"employee_email,omitempty"`
	OrganizationID string     `json:"organization_id"`
	LeaveTypeID    string     `json:"leave_type_id"`
	LeaveType      string     `json:"leave_type,omitempty"`
	PayPeriodID    *string    `json:"pay_period_id,omitempty"`
	PayPeriod      string     `json:"pay_period,omitempty"`
	SubmissionDate string     `json:"submission_date"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	TotalDays      int        `json:"total_days"`
	Reason         string     `json:"reason"`
	CoverageName   *string    `json:"coverage_name,omitempty"`
	CoverageEmail  *string    `json:"coverage_email,omitempty"`
	Status         string     `json:"status"`
	ReviewedBy     *string    `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	AdminNotes     *string    `json:"admin_notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type CalendarEntry struct {
	Date         string `json:"date"`
	RequestID    string `json:"request_id"`
	EmployeeName string `json:"employee_name"`
	LeaveType    string `json:"leave_type"`
	Color        string `json:"color"`
	Status       string `json:"status"`
}

type LeaveTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	IsSingleDay bool   `json:"is_single_day"`
}

type PayPeriodResponse struct {
	ID           string `json:"id"`
	PeriodNumber int    `json:"period_number"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	T4Year       int    `json:"t4_year"`
	Label        string `json:"label"`
}
