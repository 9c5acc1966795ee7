package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yolda/logistics-api/internal/dto"
	"github.com/yolda/logistics-api/internal/models"
	"github.com/yolda/logistics-api/internal/policy"
	"github.com/yolda/logistics-api/internal/repository"
)

var (
	// ErrVehicleNotFound covers both a missing row and a row the caller may
	// not see.
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrVehicleForbidden = errors.New("not authorized for this vehicle")
)

// VehicleService handles vehicle CRUD under the shared ownership policy.
type VehicleService struct {
	vehicleRepo repository.VehicleRepository
	membership  *MembershipService
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(vehicleRepo repository.VehicleRepository, membership *MembershipService) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		membership:  membership,
	}
}

// List returns the caller's own vehicles; the organization filter narrows
// within those rows only.
func (s *VehicleService) List(callerID uint64, organizationID *uint64, page repository.PageOpts) ([]models.Vehicle, error) {
	return s.vehicleRepo.ListOwned(repository.OwnedFilter{
		OwnerUserID:    callerID,
		OrganizationID: organizationID,
		Page:           page,
	})
}

// Create records the caller as owner. Linking the vehicle to an
// organization requires an active admin membership there.
func (s *VehicleService) Create(callerID uint64, req dto.VehicleCreateRequest) (*models.Vehicle, error) {
	ok, err := policy.CanCreateUnder(req.OrganizationID, callerID, s.membership)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrVehicleForbidden
	}

	owner := callerID
	vehicle := &models.Vehicle{
		OwnerUserID:    &owner,
		OrganizationID: req.OrganizationID,
		CapacityValue:  req.CapacityValue,
		CapacityUnit:   req.CapacityUnit,
		CanFood:        req.CanFood,
		CanDG:          req.CanDG,
		Status:         models.StatusActive,
	}

	if err := s.vehicleRepo.Create(vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return vehicle, nil
}

// Get returns a vehicle visible to the caller. Invisible rows are reported
// as not found so their existence stays hidden.
func (s *VehicleService) Get(id, callerID uint64) (*models.Vehicle, error) {
	vehicle, err := s.find(id)
	if err != nil {
		return nil, err
	}

	ok, err := s.canAccess(vehicle, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}

// Update applies a partial update. The row must exist before authorization
// is evaluated, so an unauthorized caller on an existing row gets forbidden.
func (s *VehicleService) Update(id, callerID uint64, patch dto.VehicleUpdateRequest) (*models.Vehicle, error) {
	vehicle, err := s.authorizeMutation(id, callerID)
	if err != nil {
		return nil, err
	}

	if patch.OrganizationID.Set {
		vehicle.OrganizationID = patch.OrganizationID.Ptr()
	}
	if patch.CapacityValue.Set {
		vehicle.CapacityValue = patch.CapacityValue.Ptr()
	}
	if patch.CapacityUnit.Set {
		vehicle.CapacityUnit = patch.CapacityUnit.Ptr()
	}
	if patch.CanFood != nil {
		vehicle.CanFood = *patch.CanFood
	}
	if patch.CanDG != nil {
		vehicle.CanDG = *patch.CanDG
	}

	if err := s.vehicleRepo.Update(vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return vehicle, nil
}

// Delete removes a vehicle under the same rule as Update.
func (s *VehicleService) Delete(id, callerID uint64) error {
	if _, err := s.authorizeMutation(id, callerID); err != nil {
		return err
	}
	if err := s.vehicleRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}

func (s *VehicleService) authorizeMutation(id, callerID uint64) (*models.Vehicle, error) {
	vehicle, err := s.find(id)
	if err != nil {
		return nil, err
	}

	ok, err := s.canAccess(vehicle, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrVehicleForbidden
	}
	return vehicle, nil
}

func (s *VehicleService) canAccess(vehicle *models.Vehicle, callerID uint64) (bool, error) {
	return policy.CanAccess(policy.Owned{
		OwnerUserID:    vehicle.OwnerUserID,
		OrganizationID: vehicle.OrganizationID,
	}, callerID, s.membership)
}

func (s *VehicleService) find(id uint64) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return vehicle, nil
}
