package inout

// CreateCommentReq adds a comment to a post. Guests may comment; the
// user id comes from the token when present.
type CreateCommentReq struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// CommentLikeReq toggles a like on a comment. UserID zero means guest.
type CommentLikeReq struct {
	CommentID int `json:"commentId" binding:"required,min=1"`
	UserID    int `json:"userId" binding:"omitempty,min=1"`
}
