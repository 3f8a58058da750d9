package notification

import (
	"fmt"
	"time"

	"go-timeoff/internal/events"
)

// Placeholder fills optional cells so every row keeps its column count.
const Placeholder = "N/A"

const (
	TabDayOff    = "Day Off Requests"
	TabVacation  = "Vacation Requests"
	TabTimeClock = "Time Clock Adjustments"
	TabOvertime  = "Overtime Requests"
	TabSickDay   = "Sick Days"
)

const timestampLayout = "2006-01-02 15:04:05"

var tabs = map[string]string{
	events.FormDayOff:    TabDayOff,
	events.FormVacation:  TabVacation,
	events.FormTimeClock: TabTimeClock,
	events.FormOvertime:  TabOvertime,
	events.FormSickDay:   TabSickDay,
}

var headers = map[string][]string{
	events.FormDayOff: {
		"Timestamp", "Employee Name", "Employee Email", "Organization", "Leave Type", "Date",
		"Day Of Week", "Pay Period", "Reason", "Coverage Arranged", "Coverage Name",
		"Coverage Email", "Request ID", "Submitted Via",
	},
	events.FormVacation: {
		"Timestamp", "Employee Name", "Employee Email", "Organization", "Start Date", "End Date",
		"Total Days", "Pay Periods", "Reason", "Coverage Name", "Coverage Email", "Request ID",
		"Submitted Via",
	},
	events.FormTimeClock: {
		"Timestamp", "Employee Name", "Employee Email", "Organization", "Clock In Date",
		"Clock In Time", "Clock In Reason", "Clock Out Date", "Clock Out Time", "Clock Out Reason",
		"Pay Period",
	},
	events.FormOvertime: {
		"Timestamp", "Employee Name", "Employee Email", "Organization", "Overtime Date",
		"Start Time", "End Time", "Reason", "Asked Doctor", "Senior Staff Name",
	},
	events.FormSickDay: {
		"Timestamp", "Employee Name", "Employee Email", "Organization", "Sick Date", "Reason",
		"Has Doctor Note", "Doctor Note URL", "Pay Period",
	},
}

// TabFor returns the spreadsheet tab for a form type.
func TabFor(formType string) (string, bool) {
	tab, ok := tabs[formType]
	return tab, ok
}

// FormTypes lists the form types in tab order.
func FormTypes() []string {
	return []string{events.FormDayOff, events.FormVacation, events.FormTimeClock, events.FormOvertime, events.FormSickDay}
}

// Header returns the admin-created header row: the live-append columns
// followed by a trailing Status column.
func Header(formType string) []string {
	cols, ok := headers[formType]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(cols)+1)
	out = append(out, cols...)
	return append(out, "Status")
}

// ColumnCount is the number of cells BuildRow produces for formType.
func ColumnCount(formType string) int {
	return len(headers[formType])
}

// BuildRow renders the live-append row for a new-request event.
func BuildRow(ev events.Notification, organizationName string) ([]string, error) {
	if organizationName == "" {
		organizationName = ev.OrganizationName
	}
	ts := ev.OccurredAt
	if ts.IsZero() {
		ts = time.Now()
	}

	row := []string{
		ts.UTC().Format(timestampLayout),
		cell(ev.EmployeeName),
		cell(ev.EmployeeEmail),
		cell(organizationName),
	}

	switch ev.FormType {
	case events.FormDayOff:
		row = append(row,
			cell(ev.LeaveType),
			cell(ev.StartDate),
			cell(dayOfWeek(ev.StartDate)),
			cell(ev.PayPeriodLabel),
			cell(ev.Reason),
			yesNo(ev.CoverageName != "" || ev.CoverageEmail != ""),
			cell(ev.CoverageName),
			cell(ev.CoverageEmail),
			cell(ev.RequestID),
			cell(ev.SubmittedVia),
		)
	case events.FormVacation:
		row = append(row,
			cell(ev.StartDate),
			cell(ev.EndDate),
			count(ev.TotalDays),
			cell(ev.PayPeriodLabel),
			cell(ev.Reason),
			cell(ev.CoverageName),
			cell(ev.CoverageEmail),
			cell(ev.RequestID),
			cell(ev.SubmittedVia),
		)
	case events.FormTimeClock:
		row = append(row,
			cell(ev.ClockInDate),
			cell(ev.ClockInTime),
			cell(ev.ClockInReason),
			cell(ev.ClockOutDate),
			cell(ev.ClockOutTime),
			cell(ev.ClockOutReason),
			cell(ev.PayPeriodLabel),
		)
	case events.FormOvertime:
		row = append(row,
			cell(ev.OvertimeDate),
			cell(ev.StartTime),
			cell(ev.EndTime),
			cell(ev.Reason),
			optionalYesNo(ev.AskedDoctor),
			cell(ev.SeniorStaffName),
		)
	case events.FormSickDay:
		row = append(row,
			cell(ev.StartDate),
			cell(ev.Reason),
			optionalYesNo(ev.HasDoctorNote),
			cell(ev.DoctorNoteURL),
			cell(ev.PayPeriodLabel),
		)
	default:
		return nil, fmt.Errorf("no spreadsheet layout for form type %q", ev.FormType)
	}

	return row, nil
}

func cell(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}

func count(n int) string {
	if n <= 0 {
		return Placeholder
	}
	return fmt.Sprintf("%d", n)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func optionalYesNo(b *bool) string {
	if b == nil {
		return Placeholder
	}
	return yesNo(*b)
}

func dayOfWeek(date string) string {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return ""
	}
	return d.Weekday().String()
}
