package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind categorizes stored notifications.
type NotificationKind string

const (
	NotificationAchievement NotificationKind = "achievement"
	NotificationReminder    NotificationKind = "reminder"
)

// Notification is a stored, per-user notification row. Delivery to a device
// is out of scope; clients poll the list endpoint.
type Notification struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind      NotificationKind `gorm:"type:varchar(32);not null" json:"kind"`
	Title     string           `gorm:"type:varchar(200);not null" json:"title"`
	Body      string           `gorm:"type:text" json:"body"`
	Read      bool             `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
