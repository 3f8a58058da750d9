package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-timeoff/internal/events"
	"go-timeoff/internal/notification"
	"go-timeoff/internal/notification/mock"
	"go-timeoff/internal/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fanoutDeps struct {
	sheets     *mock.MockSheetAppender
	mail       *mock.MockEmailSender
	recipients *mock.MockRecipientSource
	orgs       *mock.MockOrganizationLookup
	fanout     *notification.Fanout
}

func setupFanout(t *testing.T, timeout time.Duration) *fanoutDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := &fanoutDeps{
		sheets:     mock.NewMockSheetAppender(ctrl),
		mail:       mock.NewMockEmailSender(ctrl),
		recipients: mock.NewMockRecipientSource(ctrl),
		orgs:       mock.NewMockOrganizationLookup(ctrl),
	}
	d.fanout = notification.NewFanout(d.sheets, d.mail, d.recipients, d.orgs, notification.FanoutConfig{
		DefaultSpreadsheetID: "default-sheet",
		FallbackRecipients:   []string{"ops@portal.test"},
		ChannelTimeout:       timeout,
	})
	return d
}

var acme = &tenant.Organization{
	ID:            "org-456",
	Slug:          "acme-clinic",
	Name:          "Acme Clinic",
	AdminEmail:    "owner@acme.test",
	SpreadsheetID: "acme-sheet",
	Locale:        "fr",
}

func dayOffEvent(orgID string) events.Notification {
	return events.Notification{
		Type:           events.TypeNewRequest,
		FormType:       events.FormDayOff,
		OrganizationID: orgID,
		EmployeeName:   "Sam Staff",
		EmployeeEmail:  "sam@acme.test",
		OccurredAt:     time.Now(),
		LeaveType:      "Personal",
		StartDate:      "2026-03-06",
		Reason:         "Appointment",
		SubmittedVia:   events.SubmittedViaPortal,
	}
}

func TestFanout_NewRequestWithRecipients(t *testing.T) {
	d := setupFanout(t, time.Second)
	ctx := context.Background()

	d.orgs.EXPECT().FindOrganizationByID(gomock.Any(), "org-456").Return(acme, nil)
	d.recipients.EXPECT().ListActiveEmails(gomock.Any(), "org-456").Return([]string{"a@acme.test", "b@acme.test"}, nil)
	d.sheets.EXPECT().
		AppendRow(gomock.Any(), "acme-sheet", notification.TabDayOff, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, row []string) error {
			assert.Len(t, row, 14)
			assert.Equal(t, "Acme Clinic", row[3])
			return nil
		})
	d.mail.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, email notification.Email) error {
		assert.Equal(t, []string{"a@acme.test", "b@acme.test"}, email.To)
		assert.Equal(t, events.TypeNewRequest, email.Template)
		assert.Equal(t, "fr", email.Locale)
		assert.Equal(t, "Acme Clinic", email.Data["Organization"])
		return nil
	})

	res := d.fanout.Notify(ctx, dayOffEvent("org-456"))

	assert.True(t, res.SheetOK)
	assert.True(t, res.EmailOK)
	assert.Empty(t, res.Errors)
}

func TestFanout_NoActiveRecipientsFallsBackToAdminEmail(t *testing.T) {
	d := setupFanout(t, time.Second)

	d.orgs.EXPECT().FindOrganizationByID(gomock.Any(), "org-456").Return(acme, nil)
	d.recipients.EXPECT().ListActiveEmails(gomock.Any(), "org-456").Return(nil, nil)
	d.sheets.EXPECT().AppendRow(gomock.Any(), "acme-sheet", gomock.Any(), gomock.Any()).Return(nil)
	d.mail.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, email notification.Email) error {
		assert.Equal(t, []string{"owner@acme.test"}, email.To)
		return nil
	})

	res := d.fanout.Notify(context.Background(), dayOffEvent("org-456"))
	assert.True(t, res.EmailOK)
}

func TestFanout_NoOrganizationUsesGlobalFallback(t *testing.T) {
	d := setupFanout(t, time.Second)

	ev := dayOffEvent("")
	ev.SubmittedVia = events.SubmittedViaPublicForm

	d.sheets.EXPECT().AppendRow(gomock.Any(), "default-sheet", notification.TabDayOff, gomock.Any()).Return(nil)
	d.mail.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, email notification.Email) error {
		assert.Equal(t, []string{"ops@portal.test"}, email.To)
		return nil
	})

	res := d.fanout.Notify(context.Background(), ev)
	assert.True(t, res.SheetOK)
	assert.True(t, res.EmailOK)
}

func TestFanout_StatusChangeEmailsEmployeeOnly(t *testing.T) {
	d := setupFanout(t, time.Second)

	ev := events.Notification{
		Type:           events.TypeApproved,
		FormType:       events.FormVacation,
		OrganizationID: "org-456",
		EmployeeName:   "Sam Staff",
		EmployeeEmail:  "sam@acme.test",
		StartDate:      "2026-03-02",
		EndDate:        "2026-03-04",
		AdminNotes:     "Enjoy",
	}

	d.orgs.EXPECT().FindOrganizationByID(gomock.Any(), "org-456").Return(acme, nil)
	d.mail.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, email notification.Email) error {
		assert.Equal(t, []string{"sam@acme.test"}, email.To)
		assert.Equal(t, events.TypeApproved, email.Template)
		assert.Equal(t, "Enjoy", email.Data["AdminNotes"])
		return nil
	})

	res := d.fanout.Notify(context.Background(), ev)
	assert.True(t, res.SheetOK)
	assert.True(t, res.EmailOK)
}

func TestFanout_SheetTimeoutDoesNotBlockEmail(t *testing.T) {
	d := setupFanout(t, 50*time.Millisecond)

	d.orgs.EXPECT().FindOrganizationByID(gomock.Any(), "org-456").Return(acme, nil)
	d.recipients.EXPECT().ListActiveEmails(gomock.Any(), "org-456").Return([]string{"a@acme.test"}, nil)
	d.sheets.EXPECT().AppendRow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ string, _ []string) error {
			<-ctx.Done()
			return ctx.Err()
		})
	d.mail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	start := time.Now()
	res := d.fanout.Notify(context.Background(), dayOffEvent("org-456"))

	assert.Less(t, time.Since(start), time.Second)
	assert.False(t, res.SheetOK)
	assert.True(t, res.EmailOK)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], notification.ChannelSheet)
}

func TestFanout_RecipientLookupFailure(t *testing.T) {
	d := setupFanout(t, time.Second)

	d.orgs.EXPECT().FindOrganizationByID(gomock.Any(), "org-456").Return(acme, nil)
	d.recipients.EXPECT().ListActiveEmails(gomock.Any(), "org-456").Return(nil, errors.New("db down"))
	d.sheets.EXPECT().AppendRow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res := d.fanout.Notify(context.Background(), dayOffEvent("org-456"))

	assert.True(t, res.SheetOK)
	assert.False(t, res.EmailOK)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "db down")
}

func TestFanout_NoSpreadsheetConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	mail := mock.NewMockEmailSender(ctrl)
	f := notification.NewFanout(mock.NewMockSheetAppender(ctrl), mail, nil, nil, notification.FanoutConfig{
		FallbackRecipients: []string{"ops@portal.test"},
	})

	mail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	res := f.Notify(context.Background(), dayOffEvent(""))
	assert.False(t, res.SheetOK)
	assert.True(t, res.EmailOK)
}

func TestFanout_BothChannelsFail(t *testing.T) {
	d := setupFanout(t, time.Second)

	d.sheets.EXPECT().AppendRow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("quota exceeded"))
	d.mail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp refused"))

	res := d.fanout.Notify(context.Background(), dayOffEvent(""))

	assert.False(t, res.SheetOK)
	assert.False(t, res.EmailOK)
	assert.Len(t, res.Errors, 2)
}

func TestFanout_UnknownEventType(t *testing.T) {
	d := setupFanout(t, time.Second)

	res := d.fanout.Notify(context.Background(), events.Notification{Type: "reminder"})
	assert.False(t, res.EmailOK)
	assert.NotEmpty(t, res.Errors)
}
