package app

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/pkg/response"
	"anke-go-api/services/app_service"
)

// CreateComment adds a comment to a post. Guests may comment.
func CreateComment(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil || postID < 1 {
		response.Error(c, response.INVALID_PARAMS, "invalid post id")
		return
	}

	var params inout.CreateCommentReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	comment, warning, err := commentService.Create(c.Request.Context(), uid(c), postID, params.Content)
	if err != nil {
		var blocked *app_service.BlockedContentError
		switch {
		case errors.As(err, &blocked):
			response.Error(c, response.INVALID_PARAMS, err.Error())
		case errors.Is(err, app_service.ErrPostNotFound):
			response.Error(c, response.NOT_FOUND, err.Error())
		default:
			response.Error(c, response.INTERNAL_ERROR, err.Error())
		}
		return
	}
	response.Success(c, withWarning(gin.H{"comment": comment}, warning))
}

// ListPostComments returns a post's published comments.
func ListPostComments(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil || postID < 1 {
		response.Error(c, response.INVALID_PARAMS, "invalid post id")
		return
	}

	comments, err := commentService.ListForPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"items": comments})
}

// ToggleCommentLike flips a like and returns {liked, likeCount}. Works
// for guests; the explicit userId in the body wins over guest status so
// logged-out clients carrying a remembered id keep their toggle.
func ToggleCommentLike(c *gin.Context) {
	var params inout.CommentLikeReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	userID := uid(c)
	if userID == 0 && params.UserID > 0 {
		userID = params.UserID
	}

	state, err := commentService.ToggleLike(c.Request.Context(), userID, params.CommentID)
	if err != nil {
		if errors.Is(err, app_service.ErrCommentNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, state)
}
