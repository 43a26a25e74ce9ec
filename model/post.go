package model

import "time"

// Post status values. Deleted posts go to trash first (soft delete);
// permanent deletion removes the row.
const (
	PostStatusPublished = "published"
	PostStatusDraft     = "draft"
	PostStatusTrash     = "trash"
)

// Post is a survey/consultation entry.
type Post struct {
	ID        int       `json:"id" gorm:"primarykey"`
	UserID    int       `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:mediumtext;not null"`
	Status    string    `json:"status" gorm:"size:20;default:published;index"`
	Category  string    `json:"category" gorm:"size:100"`
	ViewCount int       `json:"view_count" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// VoteOption is a configurable option row attached to a survey post.
type VoteOption struct {
	ID        int    `json:"id" gorm:"primarykey"`
	PostID    int    `json:"post_id" gorm:"not null;index"`
	Label     string `json:"label" gorm:"size:255;not null"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
}

func (VoteOption) TableName() string {
	return "vote_options"
}

// VoteChoice is a selectable answer with a running tally.
type VoteChoice struct {
	ID        int    `json:"id" gorm:"primarykey"`
	PostID    int    `json:"post_id" gorm:"not null;index"`
	Label     string `json:"label" gorm:"size:255;not null"`
	VoteCount int    `json:"vote_count" gorm:"default:0"`
}

func (VoteChoice) TableName() string {
	return "vote_choices"
}

// VoteHistory records one user's vote on a post. UserID is nil for guests.
type VoteHistory struct {
	ID        int       `json:"id" gorm:"primarykey"`
	PostID    int       `json:"post_id" gorm:"not null;index:idx_vote_history_post_user"`
	ChoiceID  int       `json:"choice_id" gorm:"not null"`
	UserID    *int      `json:"user_id" gorm:"index:idx_vote_history_post_user"`
	CreatedAt time.Time `json:"created_at"`
}

func (VoteHistory) TableName() string {
	return "vote_history"
}
