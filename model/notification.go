package model

import "time"

// Notification types.
const (
	NotificationTypeExchange = "point_exchange"
	NotificationTypeComment  = "comment"
	NotificationTypeSystem   = "system"
)

// Notification is an in-app notification row, polled by the client.
type Notification struct {
	ID        int       `json:"id" gorm:"primarykey"`
	UserID    int       `json:"user_id" gorm:"not null;index:idx_notifications_user_read"`
	Type      string    `json:"type" gorm:"size:50;not null"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Body      string    `json:"body" gorm:"type:text"`
	IsRead    bool      `json:"is_read" gorm:"default:false;index:idx_notifications_user_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
