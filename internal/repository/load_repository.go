package repository

import (
	"gorm.io/gorm"

	"github.com/yolda/logistics-api/internal/models"
)

// GormLoadRepository is a GORM implementation of LoadRepository
type GormLoadRepository struct {
	db *gorm.DB
}

// NewLoadRepository creates a new LoadRepository
func NewLoadRepository(db *gorm.DB) LoadRepository {
	return &GormLoadRepository{db: db}
}

// Create creates a new load
func (r *GormLoadRepository) Create(load *models.Load) error {
	return r.db.Create(load).Error
}

// FindByID finds a load by ID
func (r *GormLoadRepository) FindByID(id uint64) (*models.Load, error) {
	var load models.Load
	if err := r.db.First(&load, id).Error; err != nil {
		return nil, err
	}
	return &load, nil
}

// ListOwned lists loads owned by a user, newest first. The organization
// filter only narrows within the owner's rows.
func (r *GormLoadRepository) ListOwned(filter OwnedFilter) ([]models.Load, error) {
	var loads []models.Load

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

	if err := query.Find(&loads).Error; err != nil {
		return nil, err
	}
	return loads, nil
}

// Update updates a load
func (r *GormLoadRepository) Update(load *models.Load) error {
	return r.db.Save(load).Error
}

// Delete deletes a load
func (r *GormLoadRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Load{}, id).Error
}
