package admin

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/pkg/response"
	"anke-go-api/services/point_service"
)

// ListExchangeRequests pages redemption requests by status.
func ListExchangeRequests(c *gin.Context) {
	var params inout.ExchangeListReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	requests, total, err := pointStore.ListExchangeRequests(
		c.Request.Context(), params.Status,
		(params.Page-1)*params.PageSize, params.PageSize)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"items": requests, "total": total})
}

func exchangeID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Error(c, response.INVALID_PARAMS, "invalid request id")
		return 0, false
	}
	return id, true
}

// CompleteExchange fulfils a pending request: the debit row is appended
// and the request closed in one transaction.
func CompleteExchange(c *gin.Context) {
	id, ok := exchangeID(c)
	if !ok {
		return
	}

	if err := exchangeService.Complete(c.Request.Context(), id); err != nil {
		if errors.Is(err, point_service.ErrRequestNotPending) {
			response.Error(c, response.INVALID_PARAMS, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.SuccessMsg(c, "exchange completed", nil)
}

// RejectExchange closes a pending request without debiting; the reserved
// points become available again.
func RejectExchange(c *gin.Context) {
	id, ok := exchangeID(c)
	if !ok {
		return
	}

	if err := exchangeService.Reject(c.Request.Context(), id); err != nil {
		if errors.Is(err, point_service.ErrRequestNotPending) {
			response.Error(c, response.INVALID_PARAMS, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.SuccessMsg(c, "exchange rejected", nil)
}
