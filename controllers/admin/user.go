package admin

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/pkg/response"
	"anke-go-api/services/admin_service"
)

// ListUsers pages all accounts.
func ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := userAdminService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"items": users, "total": total})
}

// SearchUsers matches email or nickname fragments.
func SearchUsers(c *gin.Context) {
	var params inout.AdminUserSearchReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	users, total, err := userAdminService.Search(c.Request.Context(), params.Query, params.Page, params.PageSize)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"items": users, "total": total})
}

// UploadUserAvatar stores an avatar image in object storage and saves
// its URL on the account.
func UploadUserAvatar(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil || userID < 1 {
		response.Error(c, response.INVALID_PARAMS, "invalid user id")
		return
	}

	if storageUtil == nil {
		response.Error(c, response.INTERNAL_ERROR, "object storage not configured")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, response.INVALID_PARAMS, "file is required")
		return
	}

	url, err := storageUtil.UploadImage(file, "avatars")
	if err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	if err := userAdminService.UpdateAvatar(c.Request.Context(), userID, url); err != nil {
		if errors.Is(err, admin_service.ErrUserNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"avatarUrl": url})
}

// BulkDeleteUsers removes accounts by id.
func BulkDeleteUsers(c *gin.Context) {
	var params inout.IDsReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	affected, err := userAdminService.BulkDelete(c.Request.Context(), params.IDs)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": affected})
}
