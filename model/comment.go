package model

import "time"

const (
	CommentStatusPublished = "published"
	CommentStatusTrash     = "trash"
)

// Comment is a reply to a post. UserID is nil for guest comments.
type Comment struct {
	ID           int       `json:"id" gorm:"primarykey"`
	PostID       int       `json:"post_id" gorm:"not null;index"`
	UserID       *int      `json:"user_id"`
	Content      string    `json:"content" gorm:"type:text;not null"`
	Status       string    `json:"status" gorm:"size:20;default:published"`
	IsBestAnswer bool      `json:"is_best_answer" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
