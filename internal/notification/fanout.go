package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go-timeoff/internal/events"
	"go-timeoff/internal/tenant"

	"go.uber.org/zap"
)

const defaultChannelTimeout = 10 * time.Second

//go:generate mockgen -source=fanout.go -destination=mock/fanout_mock.go -package=mock
type SheetAppender interface {
	AppendRow(ctx context.Context, spreadsheetID, tab string, row []string) error
}

type EmailSender interface {
	Send(ctx context.Context, email Email) error
}

type RecipientSource interface {
	ListActiveEmails(ctx context.Context, organizationID string) ([]string, error)
}

type OrganizationLookup interface {
	FindOrganizationByID(ctx context.Context, id string) (*tenant.Organization, error)
}

// Email names a localized template and the values it renders with.
type Email struct {
	To       []string
	Template string
	Locale   string
	Data     map[string]string
}

type FanoutResult struct {
	SheetOK bool     `json:"sheet_ok"`
	EmailOK bool     `json:"email_ok"`
	Errors  []string `json:"errors,omitempty"`
}

type FanoutConfig struct {
	DefaultSpreadsheetID string
	FallbackRecipients   []string
	ChannelTimeout       time.Duration
}

type Fanout struct {
	sheets     SheetAppender
	mail       EmailSender
	recipients RecipientSource
	orgs       OrganizationLookup
	cfg        FanoutConfig
	logger     *zap.Logger
}

func NewFanout(
	sheets SheetAppender,
	mail EmailSender,
	recipients RecipientSource,
	orgs OrganizationLookup,
	cfg FanoutConfig,
	logger ...*zap.Logger,
) *Fanout {
	l := zap.L().Named("notification.fanout")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.fanout")
	}
	if cfg.ChannelTimeout <= 0 {
		cfg.ChannelTimeout = defaultChannelTimeout
	}
	return &Fanout{
		sheets:     sheets,
		mail:       mail,
		recipients: recipients,
		orgs:       orgs,
		cfg:        cfg,
		logger:     l,
	}
}

// Notify runs the spreadsheet and email channels concurrently, each under
// its own timeout. Failures are collected in the result.
func (f *Fanout) Notify(ctx context.Context, ev events.Notification) FanoutResult {
	log := f.logger.With(
		zap.String("event_type", ev.Type),
		zap.String("form_type", ev.FormType),
		zap.String("organization_id", ev.OrganizationID),
		zap.String("request_id", ev.RequestID),
	)

	if !ev.IsNewRequest() && !ev.IsStatusChange() {
		err := NewChannelError(ChannelEmail, fmt.Errorf("unsupported event type %q", ev.Type))
		log.Warn("notification skipped", zap.Error(err))
		return FanoutResult{Errors: []string{err.Error()}}
	}

	org := f.organization(ctx, ev.OrganizationID, log)

	var (
		wg       sync.WaitGroup
		sheetErr error
		emailErr error
	)

	if ev.IsNewRequest() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sheetErr = f.runChannel(ctx, ChannelSheet, func(ctx context.Context) error {
				return f.appendRow(ctx, ev, org)
			})
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		emailErr = f.runChannel(ctx, ChannelEmail, func(ctx context.Context) error {
			return f.sendEmail(ctx, ev, org)
		})
	}()

	wg.Wait()

	result := FanoutResult{SheetOK: sheetErr == nil, EmailOK: emailErr == nil}
	for _, err := range []error{sheetErr, emailErr} {
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			log.Warn("notification channel failed", zap.Error(err))
		}
	}

	log.Info("notification fan-out finished",
		zap.Bool("sheet_ok", result.SheetOK),
		zap.Bool("email_ok", result.EmailOK),
	)
	return result
}

// runChannel bounds fn by the channel timeout even when fn ignores ctx.
func (f *Fanout) runChannel(ctx context.Context, channel string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.ChannelTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("panic: %v", r)
			}
		}()
		done <- fn(ctx)
	}()

	select {
	case err := <-done:
		if err == nil {
			return nil
		}
		var chErr *ChannelError
		if errors.As(err, &chErr) {
			return chErr
		}
		return NewChannelError(channel, err)
	case <-ctx.Done():
		return NewChannelError(channel, ErrChannelTimeout)
	}
}

func (f *Fanout) organization(ctx context.Context, id string, log *zap.Logger) *tenant.Organization {
	if id == "" || f.orgs == nil {
		return nil
	}
	org, err := f.orgs.FindOrganizationByID(ctx, id)
	if err != nil {
		log.Warn("organization lookup failed, using fallbacks", zap.Error(err))
		return nil
	}
	return org
}

func (f *Fanout) appendRow(ctx context.Context, ev events.Notification, org *tenant.Organization) error {
	tab, ok := TabFor(ev.FormType)
	if !ok {
		return fmt.Errorf("no tab for form type %q", ev.FormType)
	}

	spreadsheetID := f.cfg.DefaultSpreadsheetID
	orgName := ""
	if org != nil {
		orgName = org.Name
		if org.SpreadsheetID != "" {
			spreadsheetID = org.SpreadsheetID
		}
	}
	if spreadsheetID == "" {
		return errors.New("no spreadsheet configured")
	}

	row, err := BuildRow(ev, orgName)
	if err != nil {
		return err
	}
	if f.sheets == nil {
		return errors.New("spreadsheet client not configured")
	}
	return f.sheets.AppendRow(ctx, spreadsheetID, tab, row)
}

func (f *Fanout) sendEmail(ctx context.Context, ev events.Notification, org *tenant.Organization) error {
	if f.mail == nil {
		return errors.New("mailer not configured")
	}

	var to []string
	if ev.IsStatusChange() {
		if ev.EmployeeEmail == "" {
			return errors.New("employee email missing")
		}
		to = []string{ev.EmployeeEmail}
	} else {
		var err error
		to, err = f.adminRecipients(ctx, org)
		if err != nil {
			return err
		}
	}
	if len(to) == 0 {
		return errors.New("no recipients")
	}

	locale := ""
	orgName := ev.OrganizationName
	if org != nil {
		locale = org.Locale
		orgName = org.Name
	}

	return f.mail.Send(ctx, Email{
		To:       to,
		Template: ev.Type,
		Locale:   locale,
		Data:     TemplateData(ev, orgName),
	})
}

// adminRecipients resolves who hears about a new request: the organization's
// active recipients, then its admin email, then the global fallback list.
func (f *Fanout) adminRecipients(ctx context.Context, org *tenant.Organization) ([]string, error) {
	if org == nil {
		return f.cfg.FallbackRecipients, nil
	}

	if f.recipients != nil {
		emails, err := f.recipients.ListActiveEmails(ctx, org.ID)
		if err != nil {
			return nil, fmt.Errorf("list recipients: %w", err)
		}
		if len(emails) > 0 {
			return emails, nil
		}
	}

	if strings.TrimSpace(org.AdminEmail) != "" {
		return []string{org.AdminEmail}, nil
	}
	return f.cfg.FallbackRecipients, nil
}

// TemplateData flattens an event into the values mail templates render.
func TemplateData(ev events.Notification, organizationName string) map[string]string {
	data := map[string]string{
		"EmployeeName":  ev.EmployeeName,
		"EmployeeEmail": ev.EmployeeEmail,
		"Organization":  organizationName,
		"FormType":      ev.FormType,
	}
	set := func(key, value string) {
		if value != "" {
			data[key] = value
		}
	}
	set("LeaveType", ev.LeaveType)
	set("StartDate", firstNonEmpty(ev.StartDate, ev.OvertimeDate, ev.ClockInDate, ev.ClockOutDate))
	set("EndDate", ev.EndDate)
	set("Reason", ev.Reason)
	set("PayPeriod", ev.PayPeriodLabel)
	set("CoverageName", ev.CoverageName)
	set("RequestID", ev.RequestID)
	set("AdminNotes", ev.AdminNotes)
	set("SeniorStaffName", ev.SeniorStaffName)
	set("DoctorNoteURL", ev.DoctorNoteURL)
	if ev.TotalDays > 0 {
		data["TotalDays"] = fmt.Sprintf("%d", ev.TotalDays)
	}
	return data
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
