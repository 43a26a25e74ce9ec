package model

import "time"

const (
	KeywordTypeTag      = "tag"
	KeywordTypeCategory = "category"
)

// Keyword is a tag associated with posts by the batch linking job.
type Keyword struct {
	ID          int       `json:"id" gorm:"primarykey"`
	Keyword     string    `json:"keyword" gorm:"size:255;not null;uniqueIndex"`
	KeywordType string    `json:"keyword_type" gorm:"size:50;default:tag"`
	PostCount   int       `json:"post_count" gorm:"default:0"`
	ViewCount   int       `json:"view_count" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Keyword) TableName() string {
	return "keywords"
}

// PostKeyword links one keyword to one post.
type PostKeyword struct {
	ID        int       `json:"id" gorm:"primarykey"`
	PostID    int       `json:"post_id" gorm:"not null;uniqueIndex:uk_post_keywords"`
	KeywordID int       `json:"keyword_id" gorm:"not null;uniqueIndex:uk_post_keywords"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostKeyword) TableName() string {
	return "post_keywords"
}
