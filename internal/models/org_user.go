package models

import "time"

// OrgUser links a user to an organization with a role and status.
// At most one row exists per (organization, user) pair; membership checks
// always go through a query on that pair, never through loaded relations.
type OrgUser struct {
	ID             uint64        `gorm:"primarykey" json:"id"`
	OrganizationID uint64        `gorm:"not null;uniqueIndex:idx_org_users_pair" json:"organization_id"`
	UserID         uint64        `gorm:"not null;uniqueIndex:idx_org_users_pair" json:"user_id"`
	Role           OrgRole       `gorm:"type:varchar(20);not null;default:'corporate_user'" json:"role"`
	Status         GenericStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
