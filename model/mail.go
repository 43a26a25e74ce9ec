package model

import "time"

// MailSetting is an SMTP configuration row; the active row wins.
type MailSetting struct {
	ID        int       `json:"id" gorm:"primarykey"`
	SMTPHost  string    `json:"smtp_host" gorm:"column:smtp_host;size:255;not null"`
	SMTPPort  int       `json:"smtp_port" gorm:"column:smtp_port;default:587"`
	SMTPUser  string    `json:"smtp_user" gorm:"column:smtp_user;size:255"`
	SMTPPass  string    `json:"-" gorm:"column:smtp_pass;size:255"`
	FromName  string    `json:"from_name" gorm:"size:255"`
	FromEmail string    `json:"from_email" gorm:"size:255"`
	UseSSL    bool      `json:"use_ssl" gorm:"column:use_ssl;default:false"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MailSetting) TableName() string {
	return "mail_settings"
}

// Mail delivery outcomes recorded in mail_logs.
const (
	MailStatusSent   = "sent"
	MailStatusFailed = "failed"
)

// MailLog is the audit row for one delivery attempt.
type MailLog struct {
	ID           int        `json:"id" gorm:"primarykey"`
	TemplateKey  string     `json:"template_key" gorm:"size:100"`
	ToEmail      string     `json:"to_email" gorm:"size:255;not null"`
	FromEmail    string     `json:"from_email" gorm:"size:255"`
	Subject      string     `json:"subject" gorm:"size:500"`
	Body         string     `json:"body" gorm:"type:text"`
	Status       string     `json:"status" gorm:"size:20;index"`
	ErrorMessage string     `json:"error_message" gorm:"type:text"`
	MessageID    string     `json:"message_id" gorm:"size:100"`
	SentAt       *time.Time `json:"sent_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (MailLog) TableName() string {
	return "mail_logs"
}
