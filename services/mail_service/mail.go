package mail_service

import (
	"context"
	"crypto/tls"
	"errors"
	"log"
	"time"

	"gopkg.in/gomail.v2"

	"anke-go-api/model"
	"anke-go-api/pkg/config"
	"anke-go-api/pkg/monitoring"
)

var ErrNoRecipient = errors.New("no recipient address")

// SettingsStore persists SMTP settings and the delivery audit log.
type SettingsStore interface {
	ActiveSetting(ctx context.Context) (*model.MailSetting, error)
	SaveSetting(ctx context.Context, setting *model.MailSetting) error
	ListLogs(ctx context.Context, offset, limit int) ([]model.MailLog, int64, error)
	CreateLog(ctx context.Context, entry *model.MailLog) error
}

// Sender dials SMTP for one message. Split out so tests can swap the wire.
type Sender interface {
	Send(setting *model.MailSetting, to, subject, body string) error
}

type smtpSender struct{}

func (smtpSender) Send(setting *model.MailSetting, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", setting.FromEmail, setting.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(setting.SMTPHost, setting.SMTPPort, setting.SMTPUser, setting.SMTPPass)
	if setting.UseSSL {
		d.SSL = true
	} else {
		d.TLSConfig = &tls.Config{ServerName: setting.SMTPHost}
	}
	return d.DialAndSend(m)
}

// Service sends mail using the active mail_settings row, falling back to
// the static config when the store has none. Every attempt is recorded in
// mail_logs.
type Service struct {
	store  SettingsStore
	sender Sender
	cfg    *config.MailConfig
}

func NewService(store SettingsStore, cfg *config.MailConfig) *Service {
	return &Service{store: store, sender: smtpSender{}, cfg: cfg}
}

// WithSender replaces the SMTP dialer, for tests.
func (s *Service) WithSender(sender Sender) *Service {
	s.sender = sender
	return s
}

// effectiveSetting resolves the SMTP endpoint: active store row first,
// config fallback second.
func (s *Service) effectiveSetting(ctx context.Context) (*model.MailSetting, error) {
	setting, err := s.store.ActiveSetting(ctx)
	if err == nil && setting != nil {
		return setting, nil
	}
	if s.cfg == nil || s.cfg.Host == "" {
		return nil, errors.New("no mail settings configured")
	}
	return &model.MailSetting{
		SMTPHost:  s.cfg.Host,
		SMTPPort:  s.cfg.Port,
		SMTPUser:  s.cfg.User,
		SMTPPass:  s.cfg.Password,
		FromName:  s.cfg.FromName,
		FromEmail: s.cfg.FromEmail,
		UseSSL:    s.cfg.UseSSL,
	}, nil
}

// Send delivers one message and writes the audit row regardless of the
// outcome.
func (s *Service) Send(ctx context.Context, templateKey, to, subject, body string) error {
	if to == "" {
		return ErrNoRecipient
	}

	setting, err := s.effectiveSetting(ctx)
	if err != nil {
		return err
	}

	sendErr := s.sender.Send(setting, to, subject, body)

	entry := &model.MailLog{
		TemplateKey: templateKey,
		ToEmail:     to,
		FromEmail:   setting.FromEmail,
		Subject:     subject,
		Body:        body,
	}
	if sendErr != nil {
		entry.Status = model.MailStatusFailed
		entry.ErrorMessage = sendErr.Error()
		monitoring.CountMailDelivery("failed")
	} else {
		now := time.Now()
		entry.Status = model.MailStatusSent
		entry.SentAt = &now
		monitoring.CountMailDelivery("sent")
	}

	if logErr := s.store.CreateLog(ctx, entry); logErr != nil {
		log.Printf("mail: write audit log: %v", logErr)
	}

	return sendErr
}

// SendAdminNotification mails the configured admin address.
func (s *Service) SendAdminNotification(ctx context.Context, subject, body string) error {
	to := ""
	if s.cfg != nil {
		to = s.cfg.AdminEmail
	}
	return s.Send(ctx, "admin_notification", to, subject, body)
}

// Settings returns the active SMTP configuration, or nil when none exists.
func (s *Service) Settings(ctx context.Context) (*model.MailSetting, error) {
	setting, err := s.store.ActiveSetting(ctx)
	if err != nil {
		return nil, err
	}
	return setting, nil
}

// UpdateSettings saves the row and marks it active.
func (s *Service) UpdateSettings(ctx context.Context, setting *model.MailSetting) error {
	setting.IsActive = true
	return s.store.SaveSetting(ctx, setting)
}

// Logs pages through the delivery audit trail, newest first.
func (s *Service) Logs(ctx context.Context, page, pageSize int) ([]model.MailLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.store.ListLogs(ctx, (page-1)*pageSize, pageSize)
}
