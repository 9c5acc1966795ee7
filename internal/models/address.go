package models

import "time"

// Address is a public lookup record; no ownership checks apply to it.
type Address struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Country      string    `gorm:"type:varchar(2);not null" json:"country"`
	Admin1       *string   `gorm:"type:varchar(128)" json:"admin1"`
	Admin2       *string   `gorm:"type:varchar(128)" json:"admin2"`
	Admin3       *string   `gorm:"type:varchar(128)" json:"admin3"`
	LineOptional *string   `gorm:"type:varchar(255)" json:"line_optional"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
