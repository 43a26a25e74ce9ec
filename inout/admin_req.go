package inout

// IDsReq is the common bulk-operation payload.
type IDsReq struct {
	IDs []int `json:"ids" binding:"required,min=1,dive,min=1"`
}

// PostBulkDeleteReq moves posts to trash, or purges them permanently.
type PostBulkDeleteReq struct {
	IDs             []int `json:"ids" binding:"required,min=1,dive,min=1"`
	PermanentDelete bool  `json:"permanentDelete"`
}

// AdminPostListReq pages posts by status for the moderation screens.
type AdminPostListReq struct {
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
	Status   string `form:"status" binding:"omitempty,oneof=published draft trash"`
}

// AdminUserSearchReq searches users by email or nickname fragment.
type AdminUserSearchReq struct {
	Query    string `form:"q" binding:"required,max=200"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// UpdateCommentReq edits a comment from the moderation screen.
type UpdateCommentReq struct {
	ID      int    `json:"id" binding:"required,min=1"`
	Content string `json:"content" binding:"required,max=5000"`
	Status  string `json:"status" binding:"omitempty,oneof=published trash"`
}

// NgWordCreateReq adds a moderation term.
type NgWordCreateReq struct {
	Word     string `json:"word" binding:"required,max=255"`
	WordType string `json:"wordType" binding:"required,oneof=exact partial"`
	Severity string `json:"severity" binding:"required,oneof=block warn"`
	Category string `json:"category" binding:"omitempty,max=100"`
	IsActive *bool  `json:"isActive" binding:"omitempty"`
}

// NgWordUpdateReq edits a moderation term.
type NgWordUpdateReq struct {
	ID       int    `json:"id" binding:"required,min=1"`
	Word     string `json:"word" binding:"required,max=255"`
	WordType string `json:"wordType" binding:"required,oneof=exact partial"`
	Severity string `json:"severity" binding:"required,oneof=block warn"`
	Category string `json:"category" binding:"omitempty,max=100"`
	IsActive *bool  `json:"isActive" binding:"required"`
}

// ExchangeListReq pages exchange requests by status.
type ExchangeListReq struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending completed rejected"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}
