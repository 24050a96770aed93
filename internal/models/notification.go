package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypeCommentPending NotificationType = "comment_pending"
	NotificationTypeSystem         NotificationType = "system"
)

// Notification is an in-app message for an administrator, created alongside
// the email alert when a comment enters the moderation queue.
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"` // Receiver
	User      User             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	CommentID *string          `gorm:"size:36;index" json:"comment_id"`
	Comment   *Comment         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comment"`
	Type      NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Reason    string           `gorm:"type:text" json:"reason"`
	IsRead    bool             `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
