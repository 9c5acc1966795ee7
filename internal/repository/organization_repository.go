package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yolda/logistics-api/internal/models"
)

var (
	// ErrCreateOrganization is returned when creating the organization fails inside the create transaction.
	ErrCreateOrganization = errors.New("organization repository: create organization failed")
	// ErrCreateAdminLink is returned when granting the owner's admin membership fails inside the create transaction.
	ErrCreateAdminLink = errors.New("organization repository: create admin membership failed")
)

// GormOrganizationRepository is a GORM implementation of OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// CreateWithAdmin creates the organization and the owner's admin membership
// atomically. Either both rows commit or neither does.
func (r *GormOrganizationRepository) CreateWithAdmin(org *models.Organization, link *models.OrgUser) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateOrganization, err)
		}

		link.OrganizationID = org.ID

		if err := tx.Create(link).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateAdminLink, err)
		}

		return nil
	})
}

// FindByID finds an organization by ID
func (r *GormOrganizationRepository) FindByID(id uint64) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// ListByOwner lists organizations owned by a user, newest first
func (r *GormOrganizationRepository) ListByOwner(ownerUserID uint64, page PageOpts) ([]models.Organization, error) {
	var orgs []models.Organization
	query := r.db.Where("owner_user_id = ?", ownerUserID).Order("id DESC")
	if page.Offset > 0 {
		query = query.Offset(page.Offset)
	}
	if page.Limit > 0 {
		query = query.Limit(page.Limit)
	}
	if err := query.Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// Update updates an organization
func (r *GormOrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// Delete deletes an organization and its membership rows in a transaction
func (r *GormOrganizationRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&models.OrgUser{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Organization{}, id).Error
	})
}
