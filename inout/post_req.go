package inout

// CreatePostReq creates a survey/consultation post.
type CreatePostReq struct {
	Title    string   `json:"title" binding:"required,max=255"`
	Content  string   `json:"content" binding:"required"`
	Category string   `json:"category" binding:"omitempty,max=100"`
	Choices  []string `json:"choices" binding:"omitempty,max=10,dive,max=255"`
}

// UpdatePostReq edits an existing post.
type UpdatePostReq struct {
	ID      int    `json:"id" binding:"required,min=1"`
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

// PostListReq pages through published posts.
type PostListReq struct {
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=50"`
	UserID   int    `form:"user_id" binding:"omitempty,min=1"`
	Category string `form:"category" binding:"omitempty,max=100"`
}

// PostSearchReq is a free-text search; the query is NG-word gated.
type PostSearchReq struct {
	Query    string `form:"q" binding:"required,max=200"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=50"`
}

// VoteReq casts one vote on a post choice.
type VoteReq struct {
	PostID   int `json:"postId" binding:"required,min=1"`
	ChoiceID int `json:"choiceId" binding:"required,min=1"`
}

// FavoriteToggleReq toggles a bookmark.
type FavoriteToggleReq struct {
	PostID int `json:"postId" binding:"required,min=1"`
}

// FavoriteCheckReq asks whether a post is bookmarked.
type FavoriteCheckReq struct {
	PostID int `form:"postId" binding:"required,min=1"`
}
