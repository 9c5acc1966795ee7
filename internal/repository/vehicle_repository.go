package repository

import (
	"gorm.io/gorm"

	"github.com/yolda/logistics-api/internal/models"
)

// GormVehicleRepository is a GORM implementation of VehicleRepository
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new VehicleRepository
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Create creates a new vehicle
func (r *GormVehicleRepository) Create(vehicle *models.Vehicle) error {
	return r.db.Create(vehicle).Error
}

// FindByID finds a vehicle by ID
func (r *GormVehicleRepository) FindByID(id uint64) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// ListOwned lists vehicles owned by a user, newest first. The organization
// filter only narrows within the owner's rows.
func (r *GormVehicleRepository) ListOwned(filter OwnedFilter) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle

	query := r.db.Where("owner_user_id = ?", filter.OwnerUserID).Order("id DESC")
	if filter.OrganizationID != nil {
		query = query.Where("organization_id = ?", *filter.OrganizationID)
	}
	if filter.Page.Offset > 0 {
		query = query.Offset(filter.Page.Offset)
	}
	if filter.Page.Limit > 0 {
		query = query.Limit(filter.Page.Limit)
	}

	if err := query.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Update updates a vehicle
func (r *GormVehicleRepository) Update(vehicle *models.Vehicle) error {
	return r.db.Save(vehicle).Error
}

// Delete deletes a vehicle
func (r *GormVehicleRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Vehicle{}, id).Error
}
