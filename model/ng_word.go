package model

import "time"

// NG-word match modes.
const (
	NgWordTypeExact   = "exact"
	NgWordTypePartial = "partial"
)

// NG-word severities. Block rejects the action; warn lets it through with
// a transient warning to the user.
const (
	NgWordSeverityBlock = "block"
	NgWordSeverityWarn  = "warn"
)

// NgWord is a moderation term consulted by text-submission and search paths.
type NgWord struct {
	ID        int       `json:"id" gorm:"primarykey"`
	Word      string    `json:"word" gorm:"size:255;not null;uniqueIndex"`
	WordType  string    `json:"word_type" gorm:"size:20;default:partial"`
	Severity  string    `json:"severity" gorm:"size:20;default:block"`
	Category  string    `json:"category" gorm:"size:100"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NgWord) TableName() string {
	return "ng_words"
}
