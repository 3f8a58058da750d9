package submission

import (
	"encoding/json"
	"strings"
	"time"

	"go-timeoff/internal/events"
	"go-timeoff/internal/leave"
	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/shared/validation"
	submissionerrors "go-timeoff/internal/submission/errors"
)

// Form is one of the five request forms after decoding.
type Form interface {
	FormType() string
	Normalize()
	Validate() error
	Notification() events.Notification
}

type CommonFields struct {
	EmployeeName  string `json:"employee_name" validate:"required"`
	EmployeeEmail string `json:"employee_email" validate:"required,email"`
}

func (c *CommonFields) normalize() {
	c.EmployeeName = strings.TrimSpace(c.EmployeeName)
	c.EmployeeEmail = strings.ToLower(strings.TrimSpace(c.EmployeeEmail))
}

func (c CommonFields) notification(formType string) events.Notification {
	return events.Notification{
		Type:          events.TypeForForm(formType),
		FormType:      formType,
		EmployeeName:  c.EmployeeName,
		EmployeeEmail: c.EmployeeEmail,
	}
}

type DayOffForm struct {
	CommonFields
	LeaveType     string `json:"leave_type" validate:"required"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason        string `json:"reason" validate:"required"`
	CoverageName  string `json:"coverage_name"`
	CoverageEmail string `json:"coverage_email" validate:"omitempty,email"`
	PayPeriodID   string `json:"pay_period_id" validate:"omitempty,uuid"`
}

func (f *DayOffForm) FormType() string { return events.FormDayOff }

func (f *DayOffForm) Normalize() {
	f.CommonFields.normalize()
	trim(&f.LeaveType, &f.Date, &f.Reason, &f.CoverageName, &f.CoverageEmail, &f.PayPeriodID)
}

func (f *DayOffForm) Validate() error {
	return validation.Struct(f)
}

func (f *DayOffForm) Notification() events.Notification {
	n := f.CommonFields.notification(f.FormType())
	n.LeaveType = f.LeaveType
	n.StartDate = f.Date
	n.EndDate = f.Date
	n.TotalDays = 1
	n.Reason = f.Reason
	n.CoverageName = f.CoverageName
	n.CoverageEmail = f.CoverageEmail
	return n
}

type VacationForm struct {
	CommonFields
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason        string `json:"reason" validate:"required"`
	CoverageName  string `json:"coverage_name"`
	CoverageEmail string `json:"coverage_email" validate:"omitempty,email"`
}

func (f *VacationForm) FormType() string { return events.FormVacation }

func (f *VacationForm) Normalize() {
	f.CommonFields.normalize()
	trim(&f.StartDate, &f.EndDate, &f.Reason, &f.CoverageName, &f.CoverageEmail)
}

// Validate checks fields and the date order. The pay period overlap needs
// reference data and is checked by the service.
func (f *VacationForm) Validate() error {
	if err := validation.Struct(f); err != nil {
		return err
	}
	start, end := f.Range()
	if end.Before(start) {
		return submissionerrors.ErrInvalidDateRange
	}
	if leave.DaySpan(start, end) > leave.MaxRequestDays {
		return submissionerrors.ErrDateRangeTooLong
	}
	return nil
}

func (f *VacationForm) Range() (start, end time.Time) {
	start, _ = leave.ParseDate(f.StartDate)
	end, _ = leave.ParseDate(f.EndDate)
	return start, end
}

func (f *VacationForm) Notification() events.Notification {
	n := f.CommonFields.notification(f.FormType())
	start, end := f.Range()
	n.LeaveType = leave.VacationLeaveType
	n.StartDate = f.StartDate
	n.EndDate = f.EndDate
	n.TotalDays = len(leave.DatesBetween(start, end))
	n.Reason = f.Reason
	n.CoverageName = f.CoverageName
	n.CoverageEmail = f.CoverageEmail
	return n
}

type SickDayForm struct {
	CommonFields
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason        string `json:"reason"`
	HasDoctorNote *bool  `json:"has_doctor_note" validate:"required"`
}

func (f *SickDayForm) FormType() string { return events.FormSickDay }

func (f *SickDayForm) Normalize() {
	f.CommonFields.normalize()
	trim(&f.Date, &f.Reason)
}

func (f *SickDayForm) Validate() error {
	return validation.Struct(f)
}

// NeedsAttachment reports whether a doctor's note file must accompany the form.
func (f *SickDayForm) NeedsAttachment() bool {
	return f.HasDoctorNote != nil && *f.HasDoctorNote
}

func (f *SickDayForm) Notification() events.Notification {
	n := f.CommonFields.notification(f.FormType())
	n.StartDate = f.Date
	n.EndDate = f.Date
	n.TotalDays = 1
	n.Reason = f.Reason
	n.HasDoctorNote = f.HasDoctorNote
	return n
}

type TimeClockForm struct {
	CommonFields
	ClockInDate    string `json:"clock_in_date" validate:"omitempty,datetime=2006-01-02"`
	ClockInTime    string `json:"clock_in_time" validate:"omitempty,datetime=15:04"`
	ClockInReason  string `json:"clock_in_reason"`
	ClockOutDate   string `json:"clock_out_date" validate:"omitempty,datetime=2006-01-02"`
	ClockOutTime   string `json:"clock_out_time" validate:"omitempty,datetime=15:04"`
	ClockOutReason string `json:"clock_out_reason"`
}

func (f *TimeClockForm) FormType() string { return events.FormTimeClock }

func (f *TimeClockForm) Normalize() {
	f.CommonFields.normalize()
	trim(&f.ClockInDate, &f.ClockInTime, &f.ClockInReason, &f.ClockOutDate, &f.ClockOutTime, &f.ClockOutReason)
}

// Validate requires at least one complete correction. A correction that is
// only partly filled reports its first missing field.
func (f *TimeClockForm) Validate() error {
	if err := validation.Struct(f); err != nil {
		return err
	}

	clockIn := []namedValue{{"Clock In Date", f.ClockInDate}, {"Clock In Time", f.ClockInTime}, {"Clock In Reason", f.ClockInReason}}
	clockOut := []namedValue{{"Clock Out Date", f.ClockOutDate}, {"Clock Out Time", f.ClockOutTime}, {"Clock Out Reason", f.ClockOutReason}}

	hasIn, hasOut := anyFilled(clockIn), anyFilled(clockOut)
	if !hasIn && !hasOut {
		return submissionerrors.ErrClockCorrectionRequired
	}
	if hasIn {
		if err := firstMissing(clockIn); err != nil {
			return err
		}
	}
	if hasOut {
		if err := firstMissing(clockOut); err != nil {
			return err
		}
	}
	return nil
}

// ReferenceDate is the date used to find the pay period of the correction.
func (f *TimeClockForm) ReferenceDate() string {
	if f.ClockInDate != "" {
		return f.ClockInDate
	}
	return f.ClockOutDate
}

func (f *TimeClockForm) Notification() events.Notification {
	n := f.CommonFields.notification(f.FormType())
	n.ClockInDate = f.ClockInDate
	n.ClockInTime = f.ClockInTime
	n.ClockInReason = f.ClockInReason
	n.ClockOutDate = f.ClockOutDate
	n.ClockOutTime = f.ClockOutTime
	n.ClockOutReason = f.ClockOutReason
	return n
}

type OvertimeForm struct {
	CommonFields
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime         string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Reason          string `json:"reason"`
	AskedDoctor     *bool  `json:"asked_doctor" validate:"required"`
	SeniorStaffName string `json:"senior_staff_name"`
}

func (f *OvertimeForm) FormType() string { return events.FormOvertime }

func (f *OvertimeForm) Normalize() {
	f.CommonFields.normalize()
	trim(&f.Date, &f.StartTime, &f.EndTime, &f.Reason, &f.SeniorStaffName)
}

// Validate requires the senior staff member who approved the overtime when
// no doctor was asked.
func (f *OvertimeForm) Validate() error {
	if err := validation.Struct(f); err != nil {
		return err
	}
	if !*f.AskedDoctor && f.SeniorStaffName == "" {
		return apperror.RequiredField("Senior Staff Name").WithDetails(map[string]string{"field": "senior_staff_name"})
	}
	return nil
}

func (f *OvertimeForm) Notification() events.Notification {
	n := f.CommonFields.notification(f.FormType())
	n.OvertimeDate = f.Date
	n.StartTime = f.StartTime
	n.EndTime = f.EndTime
	n.Reason = f.Reason
	n.AskedDoctor = f.AskedDoctor
	n.SeniorStaffName = f.SeniorStaffName
	return n
}

// ParseForm decodes payload into the form registered for formType.
func ParseForm(formType string, payload []byte) (Form, error) {
	var form Form
	switch formType {
	case events.FormDayOff:
		form = &DayOffForm{}
	case events.FormVacation:
		form = &VacationForm{}
	case events.FormSickDay:
		form = &SickDayForm{}
	case events.FormTimeClock:
		form = &TimeClockForm{}
	case events.FormOvertime:
		form = &OvertimeForm{}
	default:
		return nil, submissionerrors.ErrUnknownFormType
	}

	if len(payload) == 0 {
		payload = []byte("{}")
	}
	if err := json.Unmarshal(payload, form); err != nil {
		return nil, submissionerrors.ErrInvalidPayload
	}
	return form, nil
}

type namedValue struct {
	name  string
	value string
}

func anyFilled(values []namedValue) bool {
	for _, v := range values {
		if v.value != "" {
			return true
		}
	}
	return false
}

func firstMissing(values []namedValue) error {
	for _, v := range values {
		if v.value == "" {
			return apperror.RequiredField(v.name)
		}
	}
	return nil
}

func trim(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}
