package models

import "time"

type Organization struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	TaxOffice   *string       `gorm:"type:varchar(128)" json:"tax_office"`
	TaxNumber   *string       `gorm:"type:varchar(16);index" json:"tax_number"`
	AddressID   *uint64       `json:"address_id"`
	OwnerUserID uint64        `gorm:"not null;index" json:"owner_user_id"`
	Status      GenericStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
