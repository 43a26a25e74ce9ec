package model

import "time"

// Account status levels. Admin authority is a single threshold check
// (status >= UserStatusAdmin) everywhere; there are no per-endpoint
// special-cased ids.
const (
	UserStatusDisabled = 0
	UserStatusMember   = 1
	UserStatusAdmin    = 2
)

// User is a registered account.
type User struct {
	ID        int       `json:"id" gorm:"primarykey"`
	Email     string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"size:255;not null"`
	Nickname  string    `json:"nickname" gorm:"size:100"`
	Slug      string    `json:"slug" gorm:"size:100"`
	AvatarURL string    `json:"avatar_url" gorm:"size:500"`
	Status    int       `json:"status" gorm:"type:tinyint;default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account clears the admin threshold.
func (u *User) IsAdmin() bool {
	return u.Status >= UserStatusAdmin
}
