package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yolda/logistics-api/internal/dto"
	"github.com/yolda/logistics-api/internal/models"
	"github.com/yolda/logistics-api/internal/repository"
)

var ErrAddressNotFound = errors.New("address not found")

// AddressService manages the public address lookup table. Addresses carry
// no ownership; any authenticated user may create and read them.
type AddressService struct {
	addressRepo repository.AddressRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(addressRepo repository.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// Create adds a lookup address.
func (s *AddressService) Create(req dto.AddressCreateRequest) (*models.Address, error) {
	address := &models.Address{
		Country:      req.Country,
		Admin1:       req.Admin1,
		Admin2:       req.Admin2,
		Admin3:       req.Admin3,
		LineOptional: req.LineOptional,
	}
	if err := s.addressRepo.Create(address); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return address, nil
}

// Get retrieves an address by ID.
func (s *AddressService) Get(id uint64) (*models.Address, error) {
	address, err := s.addressRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to find address: %w", err)
	}
	return address, nil
}

// List lists addresses.
func (s *AddressService) List(page repository.PageOpts) ([]models.Address, error) {
	return s.addressRepo.List(page)
}
