package repository

import (
	"gorm.io/gorm"

	"github.com/yolda/logistics-api/internal/models"
)

// GormAddressRepository is a GORM implementation of AddressRepository
type GormAddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new AddressRepository
func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &GormAddressRepository{db: db}
}

// Create creates a new address
func (r *GormAddressRepository) Create(address *models.Address) error {
	return r.db.Create(address).Error
}

// FindByID finds an address by ID
func (r *GormAddressRepository) FindByID(id uint64) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

// List lists addresses, oldest first
func (r *GormAddressRepository) List(page PageOpts) ([]models.Address, error) {
	var addresses []models.Address
	query := r.db.Order("id ASC")
	if page.Offset > 0 {
		query = query.Offset(page.Offset)
	}
	if page.Limit > 0 {
		query = query.Limit(page.Limit)
	}
	if err := query.Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}
