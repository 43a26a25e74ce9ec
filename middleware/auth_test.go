package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"anke-go-api/model"
)

func adminGateRequest(t *testing.T, setStatus bool, status interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/guarded",
		func(c *gin.Context) {
			if setStatus {
				c.Set("status", status)
			}
		},
		AdminRequired(),
		func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRequiredAllowsAdminStatus(t *testing.T) {
	w := adminGateRequest(t, true, model.UserStatusAdmin)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRequiredAllowsAboveThreshold(t *testing.T) {
	w := adminGateRequest(t, true, model.UserStatusAdmin+1)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRequiredRejectsMember(t *testing.T) {
	w := adminGateRequest(t, true, model.UserStatusMember)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRequiredRejectsDisabled(t *testing.T) {
	w := adminGateRequest(t, true, model.UserStatusDisabled)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRequiredRejectsMissingStatus(t *testing.T) {
	w := adminGateRequest(t, false, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRequiredRejectsMalformedStatus(t *testing.T) {
	w := adminGateRequest(t, true, "2")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
