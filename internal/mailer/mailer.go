package mailer

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-timeoff/internal/config"
	"go-timeoff/internal/notification"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/gomail.v2"
)

//go:embed locales/*.json
var localeFS embed.FS

const DefaultSendTimeout = 10 * time.Second

var ErrNoRecipients = errors.New("email has no recipients")

// Dialer is the part of *gomail.Dialer the mailer uses.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer renders localized templates and sends them over SMTP.
type Mailer struct {
	dialer        Dialer
	from          string
	bundle        *i18n.Bundle
	defaultLocale string
	timeout       time.Duration
	logger        *zap.Logger
}

func NewSMTPDialer(cfg config.MailConfig) *gomail.Dialer {
	return gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
}

func New(dialer Dialer, from, defaultLocale string, timeout time.Duration, logger ...*zap.Logger) (*Mailer, error) {
	l := zap.L().Named("mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer")
	}

	bundle, err := loadBundle()
	if err != nil {
		return nil, err
	}
	if defaultLocale == "" {
		defaultLocale = language.English.String()
	}
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}

	return &Mailer{
		dialer:        dialer,
		from:          from,
		bundle:        bundle,
		defaultLocale: defaultLocale,
		timeout:       timeout,
		logger:        l,
	}, nil
}

func loadBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
	}
	return bundle, nil
}

// Render returns the subject and plain text body of email.
func (m *Mailer) Render(email notification.Email) (string, string, error) {
	locale := email.Locale
	if locale == "" {
		locale = m.defaultLocale
	}
	loc := i18n.NewLocalizer(m.bundle, locale, m.defaultLocale)

	data := make(map[string]string, len(email.Data)+1)
	for k, v := range email.Data {
		data[k] = v
	}
	if formType := data["FormType"]; formType != "" {
		if label, err := loc.Localize(&i18n.LocalizeConfig{MessageID: "form." + formType}); err == nil {
			data["FormLabel"] = label
		}
	}

	subject, err := loc.Localize(&i18n.LocalizeConfig{MessageID: email.Template + ".subject", TemplateData: data})
	if err != nil {
		return "", "", fmt.Errorf("render %s subject: %w", email.Template, err)
	}
	body, err := loc.Localize(&i18n.LocalizeConfig{MessageID: email.Template + ".body", TemplateData: data})
	if err != nil {
		return "", "", fmt.Errorf("render %s body: %w", email.Template, err)
	}
	return subject, body, nil
}

// Send renders and delivers email. The SMTP exchange has no context support,
// so it runs in its own goroutine and is abandoned once ctx or the send
// timeout expires.
func (m *Mailer) Send(ctx context.Context, email notification.Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipients
	}

	subject, body, err := m.Render(email)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	if len(email.To) == 1 {
		msg.SetHeader("To", email.To[0])
	} else {
		// Recipients of a shared notification must not see each other.
		msg.SetHeader("To", m.from)
		msg.SetHeader("Bcc", email.To...)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		m.logger.Debug("email sent",
			zap.String("template", email.Template),
			zap.Int("recipients", len(email.To)),
		)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send: %w", ctx.Err())
	}
}

var _ notification.EmailSender = (*Mailer)(nil)
