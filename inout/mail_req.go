package inout

// SendMailReq sends one mail through the configured SMTP settings.
type SendMailReq struct {
	To          string `json:"to" binding:"required,email"`
	Subject     string `json:"subject" binding:"required,max=500"`
	Body        string `json:"body" binding:"required"`
	TemplateKey string `json:"templateKey" binding:"omitempty,max=100"`
}

// MailSettingsReq replaces the active SMTP settings row.
type MailSettingsReq struct {
	SMTPHost  string `json:"smtpHost" binding:"required,max=255"`
	SMTPPort  int    `json:"smtpPort" binding:"required,min=1,max=65535"`
	SMTPUser  string `json:"smtpUser" binding:"omitempty,max=255"`
	SMTPPass  string `json:"smtpPass" binding:"omitempty,max=255"`
	FromName  string `json:"fromName" binding:"required,max=255"`
	FromEmail string `json:"fromEmail" binding:"required,email"`
	UseSSL    bool   `json:"useSSL"`
}
