package models

import "time"

// Offer is schema-only for now: no endpoints or policy are attached to it.
type Offer struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	VehicleID     uint64    `gorm:"not null;index" json:"vehicle_id"`
	FromAddressID uint64    `gorm:"not null" json:"from_address_id"`
	ToAddressID   uint64    `gorm:"not null" json:"to_address_id"`
	DepartDate    time.Time `gorm:"type:date;not null" json:"depart_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
