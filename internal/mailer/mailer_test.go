package mailer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"go-timeoff/internal/events"
	"go-timeoff/internal/mailer"
	"go-timeoff/internal/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent  []*gomail.Message
	err   error
	delay time.Duration
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.sent = append(f.sent, m...)
	return f.err
}

func newMailer(t *testing.T, d mailer.Dialer, timeout time.Duration) *mailer.Mailer {
	t.Helper()
	m, err := mailer.New(d, "portal@acme.test", "en", timeout)
	require.NoError(t, err)
	return m
}

func TestMailer_Render(t *testing.T) {
	m := newMailer(t, &fakeDialer{}, 0)

	t.Run("new request in english", func(t *testing.T) {
		subject, body, err := m.Render(notification.Email{
			Template: events.TypeNewRequest,
			Data: map[string]string{
				"EmployeeName":  "Kim",
				"EmployeeEmail": "kim@acme.test",
				"FormType":      events.FormDayOff,
				"Organization":  "Acme Clinic",
				"StartDate":     "2026-03-04",
				"Reason":        "appointment",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "New day off request from Kim", subject)
		assert.Contains(t, body, "Reason: appointment")
		assert.Contains(t, body, "for Acme Clinic")
		assert.NotContains(t, body, "Coverage")
		assert.NotContains(t, body, "<no value>")
	})

	t.Run("decision in french", func(t *testing.T) {
		subject, body, err := m.Render(notification.Email{
			Template: events.TypeDenied,
			Locale:   "fr",
			Data:     map[string]string{"EmployeeName": "Kim", "LeaveType": "Vacation", "AdminNotes": "Trop de demandes"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Votre demande (Vacation) a été refusée", subject)
		assert.Contains(t, body, "Notes : Trop de demandes")
	})

	t.Run("unknown locale falls back to default", func(t *testing.T) {
		subject, _, err := m.Render(notification.Email{
			Template: events.TypeApproved,
			Locale:   "de",
			Data:     map[string]string{"EmployeeName": "Kim", "LeaveType": "Vacation"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Your Vacation request was approved", subject)
	})

	t.Run("unknown template", func(t *testing.T) {
		_, _, err := m.Render(notification.Email{Template: "reminder"})
		assert.Error(t, err)
	})
}

func TestMailer_Send(t *testing.T) {
	email := notification.Email{
		To:       []string{"admin@acme.test", "hr@acme.test"},
		Template: events.TypeApproved,
		Data:     map[string]string{"EmployeeName": "Kim", "LeaveType": "Vacation"},
	}

	t.Run("blind copies every recipient of a shared message", func(t *testing.T) {
		d := &fakeDialer{}
		require.NoError(t, newMailer(t, d, time.Second).Send(context.Background(), email))

		require.Len(t, d.sent, 1)
		msg := d.sent[0]
		assert.Equal(t, []string{"portal@acme.test"}, msg.GetHeader("To"))
		assert.Equal(t, []string{"admin@acme.test", "hr@acme.test"}, msg.GetHeader("Bcc"))
		assert.Equal(t, []string{"Your Vacation request was approved"}, msg.GetHeader("Subject"))

		var buf bytes.Buffer
		_, err := msg.WriteTo(&buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "approved")
		assert.NotContains(t, buf.String(), "admin@acme.test")
		assert.NotContains(t, buf.String(), "hr@acme.test")
	})

	t.Run("single recipient is addressed directly", func(t *testing.T) {
		d := &fakeDialer{}
		single := email
		single.To = []string{"kim@acme.test"}
		require.NoError(t, newMailer(t, d, time.Second).Send(context.Background(), single))

		require.Len(t, d.sent, 1)
		assert.Equal(t, []string{"kim@acme.test"}, d.sent[0].GetHeader("To"))
		assert.Empty(t, d.sent[0].GetHeader("Bcc"))
	})

	t.Run("smtp error", func(t *testing.T) {
		d := &fakeDialer{err: errors.New("535 authentication failed")}
		err := newMailer(t, d, time.Second).Send(context.Background(), email)
		assert.ErrorContains(t, err, "535")
	})

	t.Run("slow server times out", func(t *testing.T) {
		d := &fakeDialer{delay: 200 * time.Millisecond}
		err := newMailer(t, d, 20*time.Millisecond).Send(context.Background(), email)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("no recipients", func(t *testing.T) {
		err := newMailer(t, &fakeDialer{}, time.Second).Send(context.Background(), notification.Email{Template: events.TypeApproved})
		assert.ErrorIs(t, err, mailer.ErrNoRecipients)
	})
}
