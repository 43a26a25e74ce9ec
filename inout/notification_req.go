package inout

// MarkReadReq flags one notification as read.
type MarkReadReq struct {
	ID int `json:"id" binding:"required,min=1"`
}
