package admin

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/pkg/response"
	"anke-go-api/services/admin_service"
)

// ListComments pages comments, optionally filtered to one post.
func ListComments(c *gin.Context) {
	postID, _ := strconv.Atoi(c.DefaultQuery("post_id", "0"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	comments, total, err := commentAdminService.List(c.Request.Context(), postID, page, pageSize)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"items": comments, "total": total})
}

// UpdateComment edits a comment's content and status.
func UpdateComment(c *gin.Context) {
	var params inout.UpdateCommentReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	err := commentAdminService.Update(c.Request.Context(), params.ID, params.Content, params.Status)
	if err != nil {
		if errors.Is(err, admin_service.ErrCommentNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.SuccessMsg(c, "comment updated", nil)
}

// BulkDeleteComments removes comments and their likes.
func BulkDeleteComments(c *gin.Context) {
	var params inout.IDsReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	affected, err := commentAdminService.BulkDelete(c.Request.Context(), params.IDs)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": affected})
}
