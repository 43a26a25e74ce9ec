package app

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/pkg/response"
)

// ListNotifications returns the caller's notifications, newest first.
func ListNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	notifications, err := notificationService.ListForUser(c.Request.Context(), uid(c), limit)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"items": notifications})
}

// MarkNotificationRead flags one of the caller's notifications as read.
func MarkNotificationRead(c *gin.Context) {
	var params inout.MarkReadReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	if err := notificationService.MarkRead(c.Request.Context(), uid(c), params.ID); err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.SuccessMsg(c, "marked read", nil)
}
