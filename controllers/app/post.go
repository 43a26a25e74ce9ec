package app

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/pkg/response"
	"anke-go-api/services/app_service"
	"anke-go-api/services/moderation_service"
)

// withWarning folds an NG-word warning into the payload when present.
func withWarning(data gin.H, warning *moderation_service.CheckResult) gin.H {
	if warning != nil {
		data["warning"] = gin.H{
			"word":     warning.Word,
			"severity": warning.Severity,
		}
	}
	return data
}

// CreatePost publishes a survey/consultation post with optional vote
// choices.
func CreatePost(c *gin.Context) {
	var params inout.CreatePostReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	post, warning, err := postService.Create(c.Request.Context(), uid(c), &params)
	if err != nil {
		var blocked *app_service.BlockedContentError
		if errors.As(err, &blocked) {
			response.Error(c, response.INVALID_PARAMS, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, withWarning(gin.H{"post": post}, warning))
}

// UpdatePost edits the caller's own post.
func UpdatePost(c *gin.Context) {
	var params inout.UpdatePostReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	warning, err := postService.Update(c.Request.Context(), uid(c), &params)
	if err != nil {
		var blocked *app_service.BlockedContentError
		switch {
		case errors.As(err, &blocked):
			response.Error(c, response.INVALID_PARAMS, err.Error())
		case errors.Is(err, app_service.ErrPostNotFound):
			response.Error(c, response.NOT_FOUND, err.Error())
		case errors.Is(err, app_service.ErrNotPostOwner):
			response.Error(c, response.FORBIDDEN, err.Error())
		default:
			response.Error(c, response.INTERNAL_ERROR, err.Error())
		}
		return
	}
	response.Success(c, withWarning(gin.H{"updated": true}, warning))
}

// ListPosts pages published posts.
func ListPosts(c *gin.Context) {
	var params inout.PostListReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	posts, total, err := postService.List(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"items": posts, "total": total})
}

// PostDetail returns one post with its choices and comments.
func PostDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Error(c, response.INVALID_PARAMS, "invalid post id")
		return
	}

	detail, err := postService.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, app_service.ErrPostNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, detail)
}

// SearchPosts runs a free-text search; NG-word-blocked queries are
// rejected.
func SearchPosts(c *gin.Context) {
	var params inout.PostSearchReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	posts, total, err := postService.Search(c.Request.Context(), &params)
	if err != nil {
		var blocked *app_service.BlockedContentError
		if errors.As(err, &blocked) {
			response.Error(c, response.INVALID_PARAMS, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"items": posts, "total": total})
}

// Vote casts one vote on a post choice.
func Vote(c *gin.Context) {
	var params inout.VoteReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	err := postService.Vote(c.Request.Context(), uid(c), &params)
	if err != nil {
		switch {
		case errors.Is(err, app_service.ErrChoiceNotFound):
			response.Error(c, response.NOT_FOUND, err.Error())
		case errors.Is(err, app_service.ErrAlreadyVoted):
			response.Error(c, response.INVALID_PARAMS, err.Error())
		default:
			response.Error(c, response.INTERNAL_ERROR, err.Error())
		}
		return
	}
	response.SuccessMsg(c, "vote recorded", nil)
}
