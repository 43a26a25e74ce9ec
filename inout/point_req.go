package inout

// PointHistoryReq queries a user's full point ledger.
type PointHistoryReq struct {
	UserID int `form:"userId" binding:"required,min=1"`
}

// PointExchangeReq files a redemption request. Amounts are validated as a
// multiple of 10000 in the service; kana fields must be katakana.
type PointExchangeReq struct {
	UserID         int    `json:"userId" binding:"required,min=1"`
	ExchangePoints int    `json:"exchangePoints" binding:"required,min=1"`
	Sei            string `json:"sei" binding:"required,max=100"`
	Mei            string `json:"mei" binding:"required,max=100"`
	KanaSei        string `json:"kanaSei" binding:"required,max=100,kana"`
	KanaMei        string `json:"kanaMei" binding:"required,max=100,kana"`
	Email          string `json:"email" binding:"required,email"`
	Remarks        string `json:"remarks" binding:"omitempty,max=2000"`
}

// PointGrantReq is the admin grant operation (append one ledger row).
type PointGrantReq struct {
	UserID    int    `json:"userId" binding:"required,min=1"`
	Amount    int    `json:"amount" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=regist grant exchange adjust"`
	CreatedAt string `json:"createdAt" binding:"omitempty"`
}

// PointBulkDeleteReq deletes ledger rows by id (administrative correction).
type PointBulkDeleteReq struct {
	IDs []int `json:"ids" binding:"required,min=1,dive,min=1"`
}
