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
	// ErrLoadNotFound covers both a missing row and a row the caller may
	// not see.
	ErrLoadNotFound  = errors.New("load not found")
	ErrLoadForbidden = errors.New("not authorized for this load")
	ErrLoadAddress   = errors.New("pickup or dropoff address does not exist")
)

// LoadService handles load CRUD under the shared ownership policy.
type LoadService struct {
	loadRepo    repository.LoadRepository
	addressRepo repository.AddressRepository
	membership  *MembershipService
}

// NewLoadService creates a new LoadService.
func NewLoadService(loadRepo repository.LoadRepository, addressRepo repository.AddressRepository, membership *MembershipService) *LoadService {
	return &LoadService{
		loadRepo:    loadRepo,
		addressRepo: addressRepo,
		membership:  membership,
	}
}

// List returns the caller's own loads; the organization filter narrows
// within those rows only.
func (s *LoadService) List(callerID uint64, organizationID *uint64, page repository.PageOpts) ([]models.Load, error) {
	return s.loadRepo.ListOwned(repository.OwnedFilter{
		OwnerUserID:    callerID,
		OrganizationID: organizationID,
		Page:           page,
	})
}

// Create records the caller as owner. Linking the load to an organization
// requires an active admin membership there; both addresses must exist.
func (s *LoadService) Create(callerID uint64, req dto.LoadCreateRequest) (*models.Load, error) {
	ok, err := policy.CanCreateUnder(req.OrganizationID, callerID, s.membership)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLoadForbidden
	}

	if err := s.checkAddresses(req.PickupAddressID, req.DropoffAddressID); err != nil {
		return nil, err
	}

	owner := callerID
	load := &models.Load{
		OwnerUserID:      &owner,
		OrganizationID:   req.OrganizationID,
		Name:             req.Name,
		QuantityValue:    req.QuantityValue,
		QuantityUnit:     req.QuantityUnit,
		Category:         req.Category,
		PickupAddressID:  req.PickupAddressID,
		DropoffAddressID: req.DropoffAddressID,
		PickupDay:        req.PickupDay.Time,
		Intl:             req.Intl,
	}

	if err := s.loadRepo.Create(load); err != nil {
		return nil, fmt.Errorf("failed to create load: %w", err)
	}
	return load, nil
}

// Get returns a load visible to the caller. Invisible rows are reported as
// not found so their existence stays hidden.
func (s *LoadService) Get(id, callerID uint64) (*models.Load, error) {
	load, err := s.find(id)
	if err != nil {
		return nil, err
	}

	ok, err := s.canAccess(load, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLoadNotFound
	}
	return load, nil
}

// Update applies a partial update. The row must exist before authorization
// is evaluated, so an unauthorized caller on an existing row gets forbidden.
func (s *LoadService) Update(id, callerID uint64, patch dto.LoadUpdateRequest) (*models.Load, error) {
	load, err := s.authorizeMutation(id, callerID)
	if err != nil {
		return nil, err
	}

	if patch.OrganizationID.Set {
		load.OrganizationID = patch.OrganizationID.Ptr()
	}
	if patch.Name != nil {
		load.Name = *patch.Name
	}
	if patch.QuantityValue.Set {
		load.QuantityValue = patch.QuantityValue.Ptr()
	}
	if patch.QuantityUnit.Set {
		load.QuantityUnit = patch.QuantityUnit.Ptr()
	}
	if patch.Category.Set {
		load.Category = patch.Category.Ptr()
	}
	if patch.PickupAddressID != nil {
		load.PickupAddressID = *patch.PickupAddressID
	}
	if patch.DropoffAddressID != nil {
		load.DropoffAddressID = *patch.DropoffAddressID
	}
	if patch.PickupAddressID != nil || patch.DropoffAddressID != nil {
		if err := s.checkAddresses(load.PickupAddressID, load.DropoffAddressID); err != nil {
			return nil, err
		}
	}
	if patch.PickupDay != nil {
		load.PickupDay = patch.PickupDay.Time
	}
	if patch.Intl != nil {
		load.Intl = *patch.Intl
	}

	if err := s.loadRepo.Update(load); err != nil {
		return nil, fmt.Errorf("failed to update load: %w", err)
	}
	return load, nil
}

// Delete removes a load under the same rule as Update.
func (s *LoadService) Delete(id, callerID uint64) error {
	if _, err := s.authorizeMutation(id, callerID); err != nil {
		return err
	}
	if err := s.loadRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete load: %w", err)
	}
	return nil
}

func (s *LoadService) authorizeMutation(id, callerID uint64) (*models.Load, error) {
	load, err := s.find(id)
	if err != nil {
		return nil, err
	}

	ok, err := s.canAccess(load, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLoadForbidden
	}
	return load, nil
}

func (s *LoadService) canAccess(load *models.Load, callerID uint64) (bool, error) {
	return policy.CanAccess(policy.Owned{
		OwnerUserID:    load.OwnerUserID,
		OrganizationID: load.OrganizationID,
	}, callerID, s.membership)
}

func (s *LoadService) checkAddresses(pickupID, dropoffID uint64) error {
	for _, id := range []uint64{pickupID, dropoffID} {
		if _, err := s.addressRepo.FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLoadAddress
			}
			return fmt.Errorf("failed to check address: %w", err)
		}
	}
	return nil
}

func (s *LoadService) find(id uint64) (*models.Load, error) {
	load, err := s.loadRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoadNotFound
		}
		return nil, fmt.Errorf("failed to find load: %w", err)
	}
	return load, nil
}
