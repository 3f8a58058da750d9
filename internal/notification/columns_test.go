package notification_test

import (
	"testing"
	"time"

	"go-timeoff/internal/events"
	"go-timeoff/internal/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildRow_ColumnCounts(t *testing.T) {
	occurred := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	cases := []struct {
		formType string
		want     int
	}{
		{events.FormDayOff, 14},
		{events.FormVacation, 13},
		{events.FormTimeClock, 11},
		{events.FormOvertime, 10},
		{events.FormSickDay, 9},
	}

	for _, tc := range cases {
		t.Run(tc.formType, func(t *testing.T) {
			row, err := notification.BuildRow(events.Notification{
				Type:       events.TypeForForm(tc.formType),
				FormType:   tc.formType,
				OccurredAt: occurred,
			}, "")
			require.NoError(t, err)
			assert.Len(t, row, tc.want)
			assert.Equal(t, tc.want, notification.ColumnCount(tc.formType))
			assert.Len(t, notification.Header(tc.formType), tc.want+1)
			assert.Equal(t, "Status", notification.Header(tc.formType)[tc.want])
			assert.Equal(t, "2026-03-02 09:30:00", row[0])
			for i := 1; i < 4; i++ {
				assert.Equal(t, notification.Placeholder, row[i])
			}
		})
	}
}

func TestBuildRow_DayOff(t *testing.T) {
	row, err := notification.BuildRow(events.Notification{
		Type:           events.TypeNewRequest,
		FormType:       events.FormDayOff,
		EmployeeName:   "Sam Staff",
		EmployeeEmail:  "sam@acme.test",
		LeaveType:      "Personal",
		StartDate:      "2026-03-06",
		PayPeriodLabel: "PP5 (2026-03-01 - 2026-03-15)",
		Reason:         "Appointment",
		CoverageName:   "Alex",
		RequestID:      "req-1",
		SubmittedVia:   events.SubmittedViaPortal,
	}, "Acme Clinic")
	require.NoError(t, err)

	assert.Equal(t, []string{
		row[0], "Sam Staff", "sam@acme.test", "Acme Clinic", "Personal", "2026-03-06", "Friday",
		"PP5 (2026-03-01 - 2026-03-15)", "Appointment", "Yes", "Alex", notification.Placeholder,
		"req-1", "Portal",
	}, row)
}

func TestBuildRow_OptionalBooleans(t *testing.T) {
	row, err := notification.BuildRow(events.Notification{
		Type:          events.TypeNewRequest,
		FormType:      events.FormSickDay,
		HasDoctorNote: boolPtr(false),
	}, "Acme")
	require.NoError(t, err)
	assert.Equal(t, "No", row[6])
	assert.Equal(t, notification.Placeholder, row[7])

	row, err = notification.BuildRow(events.Notification{
		Type:     events.TypeOvertimeRequest,
		FormType: events.FormOvertime,
	}, "Acme")
	require.NoError(t, err)
	assert.Equal(t, notification.Placeholder, row[8])
}

func TestBuildRow_UnknownForm(t *testing.T) {
	_, err := notification.BuildRow(events.Notification{FormType: "expense"}, "Acme")
	assert.Error(t, err)

	_, ok := notification.TabFor("expense")
	assert.False(t, ok)
	assert.Nil(t, notification.Header("expense"))
}
