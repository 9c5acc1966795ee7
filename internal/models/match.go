package models

import "time"

// Match is schema-only for now: no endpoints or policy are attached to it.
type Match struct {
	ID          uint64      `gorm:"primarykey" json:"id"`
	LoadID      uint64      `gorm:"not null;index" json:"load_id"`
	OfferID     uint64      `gorm:"not null;index" json:"offer_id"`
	Status      MatchStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CompletedAt *time.Time  `json:"completed_at"`
	Price       *float64    `gorm:"type:numeric(12,2)" json:"price"`
	Currency    *Currency   `gorm:"type:varchar(3)" json:"currency"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
