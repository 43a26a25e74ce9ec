package app

import (
	"errors"

	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/pkg/response"
	"anke-go-api/services/point_service"
)

// PointHistory returns the user's full ledger, newest first, with the
// summed balance.
func PointHistory(c *gin.Context) {
	var params inout.PointHistoryReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}
	// A token only reads its own ledger.
	if params.UserID != uid(c) {
		response.Error(c, response.FORBIDDEN, "point history is limited to your own account")
		return
	}

	records, total, err := ledgerService.History(c.Request.Context(), params.UserID)
	if err != nil {
		if errors.Is(err, point_service.ErrUserNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}

	response.Success(c, gin.H{
		"pointHistory": records,
		"totalPoints":  total,
	})
}

// PointExchange files a redemption request. The ledger is never debited
// here; pending requests reserve against the available balance until an
// administrator completes or rejects them.
func PointExchange(c *gin.Context) {
	var params inout.PointExchangeReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}
	// A token only spends its own balance.
	if params.UserID != uid(c) {
		response.Error(c, response.FORBIDDEN, "point exchange is limited to your own account")
		return
	}

	result, err := exchangeService.Exchange(c.Request.Context(), point_service.ExchangeInput{
		UserID:         params.UserID,
		ExchangePoints: params.ExchangePoints,
		Sei:            params.Sei,
		Mei:            params.Mei,
		KanaSei:        params.KanaSei,
		KanaMei:        params.KanaMei,
		Email:          params.Email,
		Remarks:        params.Remarks,
	})
	if err != nil {
		switch {
		case errors.Is(err, point_service.ErrMissingFields),
			errors.Is(err, point_service.ErrInvalidExchangeAmount),
			errors.Is(err, point_service.ErrInsufficientPoints):
			response.Error(c, response.INVALID_PARAMS, err.Error())
		case errors.Is(err, point_service.ErrUserNotFound):
			response.Error(c, response.NOT_FOUND, err.Error())
		default:
			response.Error(c, response.INTERNAL_ERROR, err.Error())
		}
		return
	}

	response.SuccessMsg(c, "exchange request accepted", result)
}
