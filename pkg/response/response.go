package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Business error codes shared by the app and admin surfaces.
const (
	SUCCESS           = 200
	ERROR             = 500
	INVALID_PARAMS    = 20001
	AUTH_ERROR        = 20002
	NOT_FOUND         = 20003
	FORBIDDEN         = 20004
	TOO_MANY_REQUESTS = 20005
	INTERNAL_ERROR    = 20006
)

var codeMsg = map[int]string{
	SUCCESS:           "OK",
	ERROR:             "internal server error",
	INVALID_PARAMS:    "invalid request parameters",
	AUTH_ERROR:        "authentication failed",
	NOT_FOUND:         "resource not found",
	FORBIDDEN:         "access denied",
	TOO_MANY_REQUESTS: "too many requests",
	INTERNAL_ERROR:    "internal service error",
}

// httpStatus maps business codes onto the HTTP taxonomy: validation -> 400,
// auth -> 401, forbidden -> 403, not found -> 404, everything else -> 500.
var httpStatus = map[int]int{
	SUCCESS:           http.StatusOK,
	INVALID_PARAMS:    http.StatusBadRequest,
	AUTH_ERROR:        http.StatusUnauthorized,
	FORBIDDEN:         http.StatusForbidden,
	NOT_FOUND:         http.StatusNotFound,
	TOO_MANY_REQUESTS: http.StatusTooManyRequests,
}

// Response is the unified JSON envelope.
type Response struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	OriginUrl string      `json:"originUrl"`
}

// GetMsg returns the default message for a business code.
func GetMsg(code int) string {
	msg, exist := codeMsg[code]
	if exist {
		return msg
	}
	return codeMsg[ERROR]
}

func statusFor(code int) int {
	if s, ok := httpStatus[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Success writes a 200 envelope with data.
func Success(c *gin.Context, data interface{}) {
	resp := Response{
		Code:      SUCCESS,
		Message:   GetMsg(SUCCESS),
		Data:      data,
		OriginUrl: c.Request.URL.Path,
	}
	c.Set("response", resp)
	c.JSON(http.StatusOK, resp)
}

// SuccessMsg writes a 200 envelope with a custom message and data.
func SuccessMsg(c *gin.Context, message string, data interface{}) {
	resp := Response{
		Code:      SUCCESS,
		Message:   message,
		Data:      data,
		OriginUrl: c.Request.URL.Path,
	}
	c.Set("response", resp)
	c.JSON(http.StatusOK, resp)
}

// Error writes an error envelope; an optional message overrides the default.
func Error(c *gin.Context, code int, message ...string) {
	msg := GetMsg(code)
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}

	resp := Response{
		Code:      code,
		Message:   msg,
		Error:     msg,
		OriginUrl: c.Request.URL.Path,
	}
	c.Set("response", resp)
	c.JSON(statusFor(code), resp)
}

// ErrorWithData writes an error envelope carrying extra data.
func ErrorWithData(c *gin.Context, code int, data interface{}, message ...string) {
	msg := GetMsg(code)
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}

	resp := Response{
		Code:      code,
		Message:   msg,
		Data:      data,
		Error:     msg,
		OriginUrl: c.Request.URL.Path,
	}
	c.Set("response", resp)
	c.JSON(statusFor(code), resp)
}

// Abort writes an error envelope and stops the handler chain.
func Abort(c *gin.Context, code int, message ...string) {
	Error(c, code, message...)
	c.Abort()
}
