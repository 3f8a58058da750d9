package events

import (
	"context"
	"time"
)

const NotificationTopic = "timeoff.notification.v1"

const (
	TypeNewRequest       = "new_request"
	TypeVacationRequest  = "vacation_request"
	TypeTimeClockRequest = "time_clock_request"
	TypeOvertimeRequest  = "overtime_request"
	TypeApproved         = "approved"
	TypeDenied           = "denied"
)

const (
	FormDayOff    = "day_off"
	FormVacation  = "vacation"
	FormSickDay   = "sick_day"
	FormTimeClock = "time_clock"
	FormOvertime  = "overtime"
)

const (
	SubmittedViaPortal     = "Portal"
	SubmittedViaPublicForm = "Public Form"
)

// Notification is the payload carried from the submission and review paths
// to the fan-out consumer. Optional fields are omitted when empty.
type Notification struct {
	Type             string    `json:"type"`
	FormType         string    `json:"formType,omitempty"`
	OrganizationID   string    `json:"organizationId,omitempty"`
	OrganizationName string    `json:"organizationName,omitempty"`
	EmployeeName     string    `json:"employeeName"`
	EmployeeEmail    string    `json:"employeeEmail"`
	OccurredAt       time.Time `json:"occurredAt"`
	SubmittedVia     string    `json:"submittedVia,omitempty"`

	LeaveType      string `json:"leaveType,omitempty"`
	StartDate      string `json:"startDate,omitempty"`
	EndDate        string `json:"endDate,omitempty"`
	TotalDays      int    `json:"totalDays,omitempty"`
	Reason         string `json:"reason,omitempty"`
	PayPeriodLabel string `json:"payPeriodLabel,omitempty"`
	CoverageName   string `json:"coverageName,omitempty"`
	CoverageEmail  string `json:"coverageEmail,omitempty"`
	RequestID      string `json:"requestId,omitempty"`

	ClockInDate    string `json:"clockInDate,omitempty"`
	ClockInTime    string `json:"clockInTime,omitempty"`
	ClockInReason  string `json:"clockInReason,omitempty"`
	ClockOutDate   string `json:"clockOutDate,omitempty"`
	ClockOutTime   string `json:"clockOutTime,omitempty"`
	ClockOutReason string `json:"clockOutReason,omitempty"`

	OvertimeDate    string `json:"overtimeDate,omitempty"`
	StartTime       string `json:"startTime,omitempty"`
	EndTime         string `json:"endTime,omitempty"`
	AskedDoctor     *bool  `json:"askedDoctor,omitempty"`
	SeniorStaffName string `json:"seniorStaffName,omitempty"`

	HasDoctorNote *bool  `json:"hasDoctorNote,omitempty"`
	DoctorNoteURL string `json:"doctorNoteUrl,omitempty"`

	AdminNotes string `json:"adminNotes,omitempty"`
}

// IsNewRequest reports whether the event belongs to the submission family.
func (n Notification) IsNewRequest() bool {
	switch n.Type {
	case TypeNewRequest, TypeVacationRequest, TypeTimeClockRequest, TypeOvertimeRequest:
		return true
	default:
		return false
	}
}

func (n Notification) IsStatusChange() bool {
	return n.Type == TypeApproved || n.Type == TypeDenied
}

// TypeForForm maps a submitted form to its event type.
func TypeForForm(formType string) string {
	switch formType {
	case FormVacation:
		return TypeVacationRequest
	case FormTimeClock:
		return TypeTimeClockRequest
	case FormOvertime:
		return TypeOvertimeRequest
	default:
		return TypeNewRequest
	}
}

// Publisher hands a notification to the asynchronous fan-out boundary.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}
