package notification

import (
	"time"

	"github.com/google/uuid"
)

// Recipient is an organization admin address that hears about new
// requests. Disabling keeps the row; delete removes it.
type Recipient struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_notification_recipient_org_email"`
	Email          string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_notification_recipient_org_email"`
	Name           string     `gorm:"type:varchar(150)"`
	IsActive       bool       `gorm:"not null;default:true"`
	AddedBy        *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
}

func (Recipient) TableName() string {
	return "notification_recipients"
}
