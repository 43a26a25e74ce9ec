package admin

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/model"
	"anke-go-api/pkg/response"
	"anke-go-api/services/admin_service"
)

// ListNgWords returns the full moderation dictionary.
func ListNgWords(c *gin.Context) {
	words, err := ngWordAdminService.List(c.Request.Context())
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"items": words})
}

// CreateNgWord adds a moderation term and refreshes the checker cache.
func CreateNgWord(c *gin.Context) {
	var params inout.NgWordCreateReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	word := &model.NgWord{
		Word:     params.Word,
		WordType: params.WordType,
		Severity: params.Severity,
		Category: params.Category,
		IsActive: true,
	}
	if params.IsActive != nil {
		word.IsActive = *params.IsActive
	}

	if err := ngWordAdminService.Create(c.Request.Context(), word); err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, word)
}

// UpdateNgWord edits a moderation term and refreshes the checker cache.
func UpdateNgWord(c *gin.Context) {
	var params inout.NgWordUpdateReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	word := &model.NgWord{
		ID:       params.ID,
		Word:     params.Word,
		WordType: params.WordType,
		Severity: params.Severity,
		Category: params.Category,
		IsActive: *params.IsActive,
	}

	if err := ngWordAdminService.Update(c.Request.Context(), word); err != nil {
		if errors.Is(err, admin_service.ErrNgWordNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.SuccessMsg(c, "ng word updated", nil)
}

// DeleteNgWord removes a moderation term and refreshes the checker cache.
func DeleteNgWord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Error(c, response.INVALID_PARAMS, "invalid ng word id")
		return
	}

	if err := ngWordAdminService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, admin_service.ErrNgWordNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.SuccessMsg(c, "ng word deleted", nil)
}
