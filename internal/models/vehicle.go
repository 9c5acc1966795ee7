package models

import "time"

type Vehicle struct {
	ID             uint64        `gorm:"primarykey" json:"id"`
	OwnerUserID    *uint64       `gorm:"index" json:"owner_user_id"`
	OrganizationID *uint64       `gorm:"index" json:"organization_id"`
	CapacityValue  *float64      `gorm:"type:numeric(12,2)" json:"capacity_value"`
	CapacityUnit   *Unit         `gorm:"type:varchar(10)" json:"capacity_unit"`
	CanFood        bool          `gorm:"not null;default:false" json:"can_food"`
	CanDG          bool          `gorm:"column:can_dg;not null;default:false" json:"can_dg"`
	Status         GenericStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
