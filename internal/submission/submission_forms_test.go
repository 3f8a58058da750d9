package submission_test

import (
	"net/http"
	"testing"

	"go-timeoff/internal/events"
	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/submission"
	submissionerrors "go-timeoff/internal/submission/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForm_Validate(t *testing.T) {
	tests := []struct {
		name     string
		formType string
		payload  string
		wantMsg  string
	}{
		{
			name:     "day off missing employee name",
			formType: events.FormDayOff,
			payload:  `{"employee_email":"kim@acme.test","leave_type":"Personal","date":"2026-03-02","reason":"x"}`,
			wantMsg:  "Employee Name is required",
		},
		{
			name:     "day off bad email",
			formType: events.FormDayOff,
			payload:  `{"employee_name":"Kim","employee_email":"kim","leave_type":"Personal","date":"2026-03-02","reason":"x"}`,
			wantMsg:  "Employee Email is invalid",
		},
		{
			name:     "day off missing leave type before date",
			formType: events.FormDayOff,
			payload:  `{"employee_name":"Kim","employee_email":"kim@acme.test","reason":"x"}`,
			wantMsg:  "Leave Type is required",
		},
		{
			name:     "day off whitespace reason",
			formType: events.FormDayOff,
			payload:  `{"employee_name":"Kim","employee_email":"kim@acme.test","leave_type":"Personal","date":"2026-03-02","reason":"   "}`,
			wantMsg:  "Reason is required",
		},
		{
			name:     "vacation malformed start date",
			formType: events.FormVacation,
			payload:  `{"employee_name":"Kim","employee_email":"kim@acme.test","start_date":"03/02/2026","end_date":"2026-03-06","reason":"x"}`,
			wantMsg:  "Start Date is invalid",
		},
		{
			name:     "vacation inverted range",
			formType: events.FormVacation,
			payload:  `{"employee_name":"Kim","employee_email":"kim@acme.test","start_date":"2026-03-06","end_date":"2026-03-02","reason":"x"}`,
			wantMsg:  submissionerrors.ErrInvalidDateRange.Message,
		},
		{
			name:     "vacation spanning decades",
			formType: events.FormVacation,
			payload:  `{"employee_name":"Kim","employee_email":"kim@acme.test","start_date":"2026-03-02","end_date":"2056-03-02","reason":"x"}`,
			wantMsg:  submissionerrors.ErrDateRangeTooLong.Message,
		},
		{
			name:     "sick day without doctor note answer",
			formType: events.FormSickDay,
			payload:  `{"employee_name":"Kim","employee_email":"kim@acme.test","date":"2026-03-02"}`,
			wantMsg:  "Has Doctor Note is required",
		},
		{
			name:     "time clock without any correction",
			formType: events.FormTimeClock,
			payload:  `{"employee_name":"Kim","employee_email":"kim@acme.test"}`,
			wantMsg:  submissionerrors.ErrClockCorrectionRequired.Message,
		},
		{
			name:     "time clock partial clock out",
			formType: events.FormTimeClock,
			payload:  `{"employee_name":"Kim","employee_email":"kim@acme.test","clock_out_date":"2026-03-02","clock_out_reason":"forgot"}`,
			wantMsg:  "Clock Out Time is required",
		},
		{
			name:     "overtime without asked doctor",
			formType: events.FormOvertime,
			payload:  `{"employee_name":"Kim","employee_email":"kim@acme.test","date":"2026-03-02"}`,
			wantMsg:  "Asked Doctor is required",
		},
		{
			name:     "overtime not asked doctor and no senior staff",
			formType: events.FormOvertime,
			payload:  `{"employee_name":"Kim","employee_email":"kim@acme.test","date":"2026-03-02","asked_doctor":false,"senior_staff_name":" "}`,
			wantMsg:  "Senior Staff Name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, err := submission.ParseForm(tt.formType, []byte(tt.payload))
			require.NoError(t, err)
			form.Normalize()

			err = form.Validate()
			require.Error(t, err)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestParseForm_ValidForms(t *testing.T) {
	payloads := map[string]string{
		events.FormDayOff:    `{"employee_name":"Kim","employee_email":"Kim@Acme.test","leave_type":"Personal","date":"2026-03-02","reason":"appointment"}`,
		events.FormVacation:  `{"employee_name":"Kim","employee_email":"kim@acme.test","start_date":"2026-03-02","end_date":"2026-03-06","reason":"trip"}`,
		events.FormSickDay:   `{"employee_name":"Kim","employee_email":"kim@acme.test","date":"2026-03-02","has_doctor_note":false}`,
		events.FormTimeClock: `{"employee_name":"Kim","employee_email":"kim@acme.test","clock_in_date":"2026-03-02","clock_in_time":"08:05","clock_in_reason":"badge"}`,
		events.FormOvertime:  `{"employee_name":"Kim","employee_email":"kim@acme.test","date":"2026-03-02","asked_doctor":false,"senior_staff_name":"Dr. Roy"}`,
	}

	for formType, payload := range payloads {
		t.Run(formType, func(t *testing.T) {
			form, err := submission.ParseForm(formType, []byte(payload))
			require.NoError(t, err)
			form.Normalize()
			require.NoError(t, form.Validate())

			n := form.Notification()
			assert.Equal(t, formType, n.FormType)
			assert.Equal(t, events.TypeForForm(formType), n.Type)
			assert.Equal(t, "kim@acme.test", n.EmployeeEmail)
		})
	}
}

func TestVacationForm_Notification(t *testing.T) {
	form, err := submission.ParseForm(events.FormVacation, []byte(`{"employee_name":"Kim","employee_email":"kim@acme.test","start_date":"2026-03-02","end_date":"2026-03-06","reason":"trip","coverage_name":"Lee"}`))
	require.NoError(t, err)

	n := form.Notification()
	assert.Equal(t, events.TypeVacationRequest, n.Type)
	assert.Equal(t, 5, n.TotalDays)
	assert.Equal(t, "Lee", n.CoverageName)
	assert.Equal(t, "Vacation", n.LeaveType)
}

func TestParseForm_Errors(t *testing.T) {
	_, err := submission.ParseForm("holiday", []byte(`{}`))
	assert.ErrorIs(t, err, submissionerrors.ErrUnknownFormType)

	_, err = submission.ParseForm(events.FormDayOff, []byte(`{"employee_name":`))
	assert.ErrorIs(t, err, submissionerrors.ErrInvalidPayload)

	form, err := submission.ParseForm(events.FormOvertime, nil)
	require.NoError(t, err)
	assert.Error(t, form.Validate())
}
