package organization

import (
	"time"

	"go-timeoff/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Organization struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug          string            `gorm:"type:varchar(100);not null;uniqueIndex"`
	Name          string            `gorm:"type:varchar(150);not null"`
	AdminEmail    string            `gorm:"type:varchar(255);not null"`
	SpreadsheetID *string           `gorm:"type:varchar(255)"`
	Settings      datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt     time.Time         `gorm:"not null;default:now()"`
	UpdatedAt     time.Time         `gorm:"not null;default:now()"`
}

func (Organization) TableName() string {
	return "organizations"
}

// Locale reads the optional "locale" setting used for outgoing mail.
func (o Organization) Locale() string {
	if o.Settings == nil {
		return ""
	}
	v, _ := o.Settings["locale"].(string)
	return v
}

func (o Organization) ToTenant() *tenant.Organization {
	out := &tenant.Organization{
		ID:         o.ID.String(),
		Slug:       o.Slug,
		Name:       o.Name,
		AdminEmail: o.AdminEmail,
		Locale:     o.Locale(),
	}
	if o.SpreadsheetID != nil {
		out.SpreadsheetID = *o.SpreadsheetID
	}
	return out
}

// Profile shares its primary key with the identity provider's user id.
type Profile struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email          string     `gorm:"type:varchar(255);not null;index"`
	FullName       string     `gorm:"type:varchar(150);not null"`
	Role           string     `gorm:"type:varchar(20);not null;default:'staff'"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time  `gorm:"not null;default:now()"`
	UpdatedAt      time.Time  `gorm:"not null;default:now()"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p Profile) ToTenant() *tenant.Profile {
	out := &tenant.Profile{
		ID:       p.ID.String(),
		Email:    p.Email,
		FullName: p.FullName,
		Role:     p.Role,
	}
	if p.OrganizationID != nil {
		id := p.OrganizationID.String()
		out.OrganizationID = &id
	}
	return out
}
