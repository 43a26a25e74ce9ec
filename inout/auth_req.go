package inout

// RegisterReq creates an account. Registration grants the initial point
// bonus as a "regist" ledger row.
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Nickname string `json:"nickname" binding:"required,max=100"`
}

// LoginReq authenticates an account on the app surface.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginReq authenticates on the admin surface; the captcha code must
// match the session-stored value.
type AdminLoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Captcha  string `json:"captcha" binding:"required,len=4"`
}

// LoginResp carries the issued token and basic profile.
type LoginResp struct {
	Token    string `json:"token"`
	UserID   int    `json:"userId"`
	Nickname string `json:"nickname"`
	Status   int    `json:"status"`
}
