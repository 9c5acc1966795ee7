package models

import "time"

// Rating is schema-only for now: no endpoints or policy are attached to it.
type Rating struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	RaterUserID uint64    `gorm:"not null;index" json:"rater_user_id"`
	RateeUserID uint64    `gorm:"not null;index" json:"ratee_user_id"`
	MatchID     uint64    `gorm:"not null;index" json:"match_id"`
	Q1          int16     `gorm:"not null" json:"q1"`
	Q2          int16     `gorm:"not null" json:"q2"`
	Q3          *int16    `json:"q3"`
	Q4          *int16    `json:"q4"`
	Overall     int16     `gorm:"not null" json:"overall"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
