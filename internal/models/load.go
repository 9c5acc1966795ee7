package models

import "time"

type Load struct {
	ID               uint64    `gorm:"primarykey" json:"id"`
	OwnerUserID      *uint64   `gorm:"index" json:"owner_user_id"`
	OrganizationID   *uint64   `gorm:"index" json:"organization_id"`
	Name             string    `gorm:"type:varchar(100);not null" json:"name"`
	NameValidated    bool      `gorm:"not null;default:false" json:"name_validated"`
	QuantityValue    *float64  `gorm:"type:numeric(12,2)" json:"quantity_value"`
	QuantityUnit     *Unit     `gorm:"type:varchar(10)" json:"quantity_unit"`
	Category         *Category `gorm:"type:varchar(20)" json:"category"`
	PickupAddressID  uint64    `gorm:"not null" json:"pickup_address_id"`
	DropoffAddressID uint64    `gorm:"not null" json:"dropoff_address_id"`
	PickupDay        time.Time `gorm:"type:date;not null" json:"pickup_day"`
	Intl             bool      `gorm:"not null;default:false" json:"intl"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
