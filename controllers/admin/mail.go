package admin

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/model"
	"anke-go-api/pkg/response"
)

// GetMailSettings returns the active SMTP configuration.
func GetMailSettings(c *gin.Context) {
	setting, err := mailService.Settings(c.Request.Context())
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, setting)
}

// UpdateMailSettings replaces the active SMTP configuration.
func UpdateMailSettings(c *gin.Context) {
	var params inout.MailSettingsReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	setting := &model.MailSetting{
		SMTPHost:  params.SMTPHost,
		SMTPPort:  params.SMTPPort,
		SMTPUser:  params.SMTPUser,
		SMTPPass:  params.SMTPPass,
		FromName:  params.FromName,
		FromEmail: params.FromEmail,
		UseSSL:    params.UseSSL,
	}

	if err := mailService.UpdateSettings(c.Request.Context(), setting); err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, setting)
}

// SendMail delivers one message through the active SMTP settings.
func SendMail(c *gin.Context) {
	var params inout.SendMailReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	if err := mailService.Send(c.Request.Context(), params.TemplateKey, params.To, params.Subject, params.Body); err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.SuccessMsg(c, "mail sent", nil)
}

// ListMailLogs pages the delivery audit trail.
func ListMailLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	logs, total, err := mailService.Logs(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"items": logs, "total": total})
}
