package app

import (
	"errors"

	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/pkg/response"
	"anke-go-api/services/app_service"
)

// Register creates an account and grants the registration bonus.
func Register(c *gin.Context) {
	var params inout.RegisterReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	resp, err := authService.Register(c.Request.Context(), &params)
	if err != nil {
		if errors.Is(err, app_service.ErrEmailTaken) {
			response.Error(c, response.INVALID_PARAMS, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, resp)
}

// Login authenticates and issues an app token.
func Login(c *gin.Context) {
	var params inout.LoginReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	resp, err := authService.Login(c.Request.Context(), params.Email, params.Password)
	if err != nil {
		if errors.Is(err, app_service.ErrInvalidCredentials) {
			response.Error(c, response.AUTH_ERROR, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, resp)
}
