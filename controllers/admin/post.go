package admin

import (
	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/pkg/response"
)

// ListPosts pages posts for the moderation screens.
func ListPosts(c *gin.Context) {
	var params inout.AdminPostListReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	posts, total, err := postAdminService.List(c.Request.Context(), params.Status, params.Page, params.PageSize)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"items": posts, "total": total})
}

// BulkDeletePosts trashes posts, or purges them with dependents when
// permanentDelete is set.
func BulkDeletePosts(c *gin.Context) {
	var params inout.PostBulkDeleteReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	affected, err := postAdminService.BulkDelete(c.Request.Context(), params.IDs, params.PermanentDelete)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": affected, "permanent": params.PermanentDelete})
}

// RestorePosts moves trashed posts back to published.
func RestorePosts(c *gin.Context) {
	var params inout.IDsReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	affected, err := postAdminService.Restore(c.Request.Context(), params.IDs)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"restored": affected})
}
