package dto

import (
	"errors"
	"fmt"
	"time"

	"github.com/yolda/logistics-api/internal/models"
)

// LoadCreateRequest is the payload for posting a load.
type LoadCreateRequest struct {
	OrganizationID   *uint64          `json:"organization_id"`
	Name             string           `json:"name" binding:"required,min=2,max=100"`
	QuantityValue    *float64         `json:"quantity_value" binding:"omitempty,gte=0"`
	QuantityUnit     *models.Unit     `json:"quantity_unit" binding:"omitempty,oneof=KG TON LITRE"`
	Category         *models.Category `json:"category" binding:"omitempty,oneof=GIDA TEHLIKELI GENEL"`
	PickupAddressID  uint64           `json:"pickup_address_id" binding:"required"`
	DropoffAddressID uint64           `json:"dropoff_address_id" binding:"required"`
	PickupDay        Date             `json:"pickup_day"`
	Intl             bool             `json:"intl"`
}

// LoadUpdateRequest is a partial update. Nullable columns use tri-state
// fields; required columns use pointers and cannot be cleared.
type LoadUpdateRequest struct {
	OrganizationID   Optional[uint64]          `json:"organization_id"`
	Name             *string                   `json:"name" binding:"omitempty,min=2,max=100"`
	QuantityValue    Optional[float64]         `json:"quantity_value"`
	QuantityUnit     Optional[models.Unit]     `json:"quantity_unit"`
	Category         Optional[models.Category] `json:"category"`
	PickupAddressID  *uint64                   `json:"pickup_address_id"`
	DropoffAddressID *uint64                   `json:"dropoff_address_id"`
	PickupDay        *Date                     `json:"pickup_day"`
	Intl             *bool                     `json:"intl"`
}

// Validate rejects out-of-range and out-of-enum values. Binding tags cannot
// look inside tri-state fields, so present values are checked here.
func (r LoadUpdateRequest) Validate() error {
	if r.QuantityValue.Set && r.QuantityValue.Valid && r.QuantityValue.Value < 0 {
		return errors.New("quantity_value must be non-negative")
	}
	if r.QuantityUnit.Set && r.QuantityUnit.Valid && !r.QuantityUnit.Value.Valid() {
		return fmt.Errorf("invalid quantity_unit %q", r.QuantityUnit.Value)
	}
	if r.Category.Set && r.Category.Valid && !r.Category.Value.Valid() {
		return fmt.Errorf("invalid category %q", r.Category.Value)
	}
	return nil
}

// LoadDTO represents a load in API responses; pickup_day is a plain date.
type LoadDTO struct {
	ID               uint64               `json:"id"`
	OwnerUserID      *uint64              `json:"owner_user_id"`
	OrganizationID   *uint64              `json:"organization_id"`
	Name             string               `json:"name"`
	NameValidated    bool                 `json:"name_validated"`
	QuantityValue    *float64             `json:"quantity_value"`
	QuantityUnit     *models.Unit         `json:"quantity_unit"`
	Category         *models.Category     `json:"category"`
	PickupAddressID  uint64               `json:"pickup_address_id"`
	DropoffAddressID uint64               `json:"dropoff_address_id"`
	PickupDay        Date                 `json:"pickup_day"`
	Intl             bool                 `json:"intl"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// ToLoadDTO converts a Load model to LoadDTO
func ToLoadDTO(load models.Load) LoadDTO {
	return LoadDTO{
		ID:               load.ID,
		OwnerUserID:      load.OwnerUserID,
		OrganizationID:   load.OrganizationID,
		Name:             load.Name,
		NameValidated:    load.NameValidated,
		QuantityValue:    load.QuantityValue,
		QuantityUnit:     load.QuantityUnit,
		Category:         load.Category,
		PickupAddressID:  load.PickupAddressID,
		DropoffAddressID: load.DropoffAddressID,
		PickupDay:        DateOf(load.PickupDay),
		Intl:             load.Intl,
		CreatedAt:        load.CreatedAt,
		UpdatedAt:        load.UpdatedAt,
	}
}

// ToLoadDTOs converts a slice of loads for list responses
func ToLoadDTOs(loads []models.Load) []LoadDTO {
	out := make([]LoadDTO, len(loads))
	for i, load := range loads {
		out[i] = ToLoadDTO(load)
	}
	return out
}
