package models

import "time"

type User struct {
	ID           uint64        `gorm:"primarykey" json:"id"`
	Email        string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        *string       `gorm:"type:varchar(32);uniqueIndex" json:"phone"`
	PasswordHash string        `gorm:"type:varchar(255);not null" json:"-"`
	Locale       string        `gorm:"type:varchar(8);default:'tr'" json:"locale"`
	Status       GenericStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
