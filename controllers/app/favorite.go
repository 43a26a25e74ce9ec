package app

import (
	"errors"

	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/pkg/response"
	"anke-go-api/services/app_service"
)

// ToggleFavorite bookmarks or un-bookmarks a post for the caller.
func ToggleFavorite(c *gin.Context) {
	var params inout.FavoriteToggleReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	favorited, err := favoriteService.Toggle(c.Request.Context(), uid(c), params.PostID)
	if err != nil {
		if errors.Is(err, app_service.ErrPostNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"favorited": favorited})
}

// CheckFavorite reports whether the caller bookmarked the post.
func CheckFavorite(c *gin.Context) {
	var params inout.FavoriteCheckReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	favorited, err := favoriteService.Check(c.Request.Context(), uid(c), params.PostID)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"favorited": favorited})
}

// ListFavorites pages the caller's bookmarked posts.
func ListFavorites(c *gin.Context) {
	var params inout.PostListReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	posts, total, err := favoriteService.ListForUser(c.Request.Context(), uid(c), params.Page, params.PageSize)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"items": posts, "total": total})
}
