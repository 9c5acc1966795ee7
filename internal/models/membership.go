package models

import "time"

// Membership is schema-only for now: no endpoints or policy are attached to it.
type Membership struct {
	ID            uint64         `gorm:"primarykey" json:"id"`
	UserID        uint64         `gorm:"not null;index" json:"user_id"`
	Plan          MembershipPlan `gorm:"type:varchar(20);not null" json:"plan"`
	StartAt       time.Time      `gorm:"not null" json:"start_at"`
	EndAt         time.Time      `gorm:"not null" json:"end_at"`
	PriorityScore int            `gorm:"not null;default:0" json:"priority_score"`
	Status        GenericStatus  `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
