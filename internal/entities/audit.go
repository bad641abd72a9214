package entities

import (
	"time"

	"gorm.io/gorm"
)

type AuditEventType string

const (
	AuditEventAuth        AuditEventType = "auth"
	AuditEventWord        AuditEventType = "word"
	AuditEventBookmark    AuditEventType = "bookmark"
	AuditEventMaintenance AuditEventType = "maintenance"
)

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailed  AuditStatus = "failed"
)

type AuditEvent struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Username    string         `gorm:"index;size:64" json:"username"`
	EventType   AuditEventType `gorm:"index;size:50" json:"eventType"`
	Action      string         `gorm:"size:100" json:"action"`      // e.g., "login", "bookmark_remove"
	Description string         `gorm:"size:500" json:"description"` // Human-readable summary
	EntityType  string         `gorm:"size:50" json:"entityType"`   // "word", "bookmark", "user"
	EntityID    string         `gorm:"index;size:36" json:"entityId,omitempty"`
	IPAddress   string         `gorm:"size:45" json:"ipAddress,omitempty"`
	UserAgent   string         `gorm:"size:500" json:"userAgent,omitempty"`
	Status      AuditStatus    `gorm:"size:20" json:"status"`
	ErrorMsg    string         `gorm:"size:500" json:"errorMsg,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"createdAt"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}

func (e *AuditEvent) BeforeCreate(tx *gorm.DB) error {
	assignID(&e.ID)
	return nil
}
