package mail_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anke-go-api/model"
	"anke-go-api/pkg/config"
)

type fakeSettingsStore struct {
	active *model.MailSetting
	logs   []model.MailLog
}

func (s *fakeSettingsStore) ActiveSetting(context.Context) (*model.MailSetting, error) {
	return s.active, nil
}

func (s *fakeSettingsStore) SaveSetting(_ context.Context, setting *model.MailSetting) error {
	s.active = setting
	return nil
}

func (s *fakeSettingsStore) ListLogs(_ context.Context, offset, limit int) ([]model.MailLog, int64, error) {
	return s.logs, int64(len(s.logs)), nil
}

func (s *fakeSettingsStore) CreateLog(_ context.Context, entry *model.MailLog) error {
	s.logs = append(s.logs, *entry)
	return nil
}

type fakeSender struct {
	sent []struct {
		setting *model.MailSetting
		to      string
		subject string
	}
	err error
}

func (s *fakeSender) Send(setting *model.MailSetting, to, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, struct {
		setting *model.MailSetting
		to      string
		subject string
	}{setting, to, subject})
	return nil
}

func storedSetting() *model.MailSetting {
	return &model.MailSetting{
		SMTPHost:  "smtp.stored.example",
		SMTPPort:  587,
		FromEmail: "noreply@stored.example",
		IsActive:  true,
	}
}

func fallbackConfig() *config.MailConfig {
	return &config.MailConfig{
		Host:       "smtp.fallback.example",
		Port:       465,
		FromEmail:  "noreply@fallback.example",
		AdminEmail: "admin@example.com",
		UseSSL:     true,
	}
}

func TestSendUsesActiveStoreSetting(t *testing.T) {
	store := &fakeSettingsStore{active: storedSetting()}
	sender := &fakeSender{}
	svc := NewService(store, fallbackConfig()).WithSender(sender)

	err := svc.Send(context.Background(), "test", "user@example.com", "hello", "body")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "smtp.stored.example", sender.sent[0].setting.SMTPHost)
}

func TestSendFallsBackToConfig(t *testing.T) {
	store := &fakeSettingsStore{}
	sender := &fakeSender{}
	svc := NewService(store, fallbackConfig()).WithSender(sender)

	err := svc.Send(context.Background(), "test", "user@example.com", "hello", "body")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "smtp.fallback.example", sender.sent[0].setting.SMTPHost)
}

func TestSendWritesSentAuditRow(t *testing.T) {
	store := &fakeSettingsStore{active: storedSetting()}
	svc := NewService(store, nil).WithSender(&fakeSender{})

	require.NoError(t, svc.Send(context.Background(), "welcome", "user@example.com", "hi", "body"))
	require.Len(t, store.logs, 1)

	entry := store.logs[0]
	assert.Equal(t, model.MailStatusSent, entry.Status)
	assert.Equal(t, "welcome", entry.TemplateKey)
	assert.Equal(t, "user@example.com", entry.ToEmail)
	assert.NotNil(t, entry.SentAt)
}

func TestSendFailureIsLoggedAndReturned(t *testing.T) {
	store := &fakeSettingsStore{active: storedSetting()}
	svc := NewService(store, nil).WithSender(&fakeSender{err: errors.New("connection refused")})

	err := svc.Send(context.Background(), "test", "user@example.com", "hi", "body")
	assert.Error(t, err)
	require.Len(t, store.logs, 1)
	assert.Equal(t, model.MailStatusFailed, store.logs[0].Status)
	assert.Contains(t, store.logs[0].ErrorMessage, "connection refused")
	assert.Nil(t, store.logs[0].SentAt)
}

func TestSendRequiresRecipient(t *testing.T) {
	svc := NewService(&fakeSettingsStore{active: storedSetting()}, nil).WithSender(&fakeSender{})

	err := svc.Send(context.Background(), "test", "", "hi", "body")
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestSendNoConfigurationAtAll(t *testing.T) {
	svc := NewService(&fakeSettingsStore{}, nil).WithSender(&fakeSender{})

	err := svc.Send(context.Background(), "test", "user@example.com", "hi", "body")
	assert.Error(t, err)
}

func TestSendAdminNotificationTargetsAdminAddress(t *testing.T) {
	store := &fakeSettingsStore{active: storedSetting()}
	sender := &fakeSender{}
	svc := NewService(store, fallbackConfig()).WithSender(sender)

	err := svc.SendAdminNotification(context.Background(), "subject", "body")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "admin@example.com", sender.sent[0].to)
}

func TestUpdateSettingsActivatesRow(t *testing.T) {
	store := &fakeSettingsStore{}
	svc := NewService(store, nil)

	setting := &model.MailSetting{SMTPHost: "smtp.new.example", SMTPPort: 25}
	require.NoError(t, svc.UpdateSettings(context.Background(), setting))
	assert.True(t, store.active.IsActive)
	assert.Equal(t, "smtp.new.example", store.active.SMTPHost)
}
