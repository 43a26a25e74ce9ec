package admin

import (
	"errors"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/pkg/response"
	"anke-go-api/services/app_service"
	"anke-go-api/utils"
)

const captchaSessionKey = "admin_captcha"

// Captcha renders a fresh SVG captcha and stores the code in the session.
func Captcha(c *gin.Context) {
	image, code := utils.GenerateCaptchaSVG(120, 40)

	session := sessions.Default(c)
	session.Set(captchaSessionKey, code)
	if err := session.Save(); err != nil {
		response.Error(c, response.INTERNAL_ERROR, "failed to save captcha session")
		return
	}

	c.Header("Content-Type", "image/svg+xml")
	c.Writer.Write(image)
}

// Login authenticates an administrator. The captcha must match the
// session value and is consumed either way.
func Login(c *gin.Context) {
	var params inout.AdminLoginReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	session := sessions.Default(c)
	stored, _ := session.Get(captchaSessionKey).(string)
	session.Delete(captchaSessionKey)
	session.Save()

	if stored == "" || !strings.EqualFold(stored, params.Captcha) {
		response.Error(c, response.INVALID_PARAMS, "captcha mismatch")
		return
	}

	resp, err := authService.AdminLogin(c.Request.Context(), params.Email, params.Password)
	if err != nil {
		switch {
		case errors.Is(err, app_service.ErrInvalidCredentials):
			response.Error(c, response.AUTH_ERROR, err.Error())
		case errors.Is(err, app_service.ErrNotAdmin):
			response.Error(c, response.FORBIDDEN, err.Error())
		default:
			response.Error(c, response.INTERNAL_ERROR, err.Error())
		}
		return
	}
	response.Success(c, resp)
}
