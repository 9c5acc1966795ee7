package dto

import (
	"errors"
	"fmt"
	"time"

	"github.com/yolda/logistics-api/internal/models"
)

// VehicleCreateRequest is the payload for listing a vehicle. The creator
// becomes the owner; organization_id requires an active admin membership.
type VehicleCreateRequest struct {
	OrganizationID *uint64      `json:"organization_id"`
	CapacityValue  *float64     `json:"capacity_value" binding:"omitempty,gte=0"`
	CapacityUnit   *models.Unit `json:"capacity_unit" binding:"omitempty,oneof=KG TON LITRE"`
	CanFood        bool         `json:"can_food"`
	CanDG          bool         `json:"can_dg"`
}

// VehicleUpdateRequest is a partial update. Nullable columns use tri-state
// fields so an explicit null clears them; booleans use pointers.
type VehicleUpdateRequest struct {
	OrganizationID Optional[uint64]      `json:"organization_id"`
	CapacityValue  Optional[float64]     `json:"capacity_value"`
	CapacityUnit   Optional[models.Unit] `json:"capacity_unit"`
	CanFood        *bool                 `json:"can_food"`
	CanDG          *bool                 `json:"can_dg"`
}

// Validate rejects out-of-range and out-of-enum values. Binding tags cannot
// look inside tri-state fields, so present values are checked here.
func (r VehicleUpdateRequest) Validate() error {
	if r.CapacityValue.Set && r.CapacityValue.Valid && r.CapacityValue.Value < 0 {
		return errors.New("capacity_value must be non-negative")
	}
	if r.CapacityUnit.Set && r.CapacityUnit.Valid && !r.CapacityUnit.Value.Valid() {
		return fmt.Errorf("invalid capacity_unit %q", r.CapacityUnit.Value)
	}
	return nil
}

// VehicleDTO represents a vehicle in API responses.
type VehicleDTO struct {
	ID             uint64               `json:"id"`
	OwnerUserID    *uint64              `json:"owner_user_id"`
	OrganizationID *uint64              `json:"organization_id"`
	CapacityValue  *float64             `json:"capacity_value"`
	CapacityUnit   *models.Unit         `json:"capacity_unit"`
	CanFood        bool                 `json:"can_food"`
	CanDG          bool                 `json:"can_dg"`
	Status         models.GenericStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// ToVehicleDTO converts a Vehicle model to VehicleDTO
func ToVehicleDTO(vehicle models.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:             vehicle.ID,
		OwnerUserID:    vehicle.OwnerUserID,
		OrganizationID: vehicle.OrganizationID,
		CapacityValue:  vehicle.CapacityValue,
		CapacityUnit:   vehicle.CapacityUnit,
		CanFood:        vehicle.CanFood,
		CanDG:          vehicle.CanDG,
		Status:         vehicle.Status,
		CreatedAt:      vehicle.CreatedAt,
		UpdatedAt:      vehicle.UpdatedAt,
	}
}

// ToVehicleDTOs converts a slice of vehicles for list responses
func ToVehicleDTOs(vehicles []models.Vehicle) []VehicleDTO {
	out := make([]VehicleDTO, len(vehicles))
	for i, vehicle := range vehicles {
		out[i] = ToVehicleDTO(vehicle)
	}
	return out
}
