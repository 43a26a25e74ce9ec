package model

import "time"

// Like targets.
const (
	LikeTypePost    = "post"
	LikeTypeComment = "comment"
)

// Like is a toggleable reaction on a post or comment. UserID is nil for
// guest likes.
type Like struct {
	ID        int       `json:"id" gorm:"primarykey"`
	UserID    *int      `json:"user_id" gorm:"index"`
	LikeType  string    `json:"like_type" gorm:"size:20;not null;index:idx_likes_target"`
	TargetID  int       `json:"target_id" gorm:"not null;index:idx_likes_target"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

// Favorite bookmarks a post for a user.
type Favorite struct {
	ID        int       `json:"id" gorm:"primarykey"`
	UserID    int       `json:"user_id" gorm:"not null;uniqueIndex:uk_favorites_user_post"`
	PostID    int       `json:"post_id" gorm:"not null;uniqueIndex:uk_favorites_user_post"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
