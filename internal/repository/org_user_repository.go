package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yolda/logistics-api/internal/models"
)

// GormOrgUserRepository is a GORM implementation of OrgUserRepository
type GormOrgUserRepository struct {
	db *gorm.DB
}

// NewOrgUserRepository creates a new OrgUserRepository
func NewOrgUserRepository(db *gorm.DB) OrgUserRepository {
	return &GormOrgUserRepository{db: db}
}

// FindLink finds the membership row for an (organization, user) pair
func (r *GormOrgUserRepository) FindLink(organizationID, userID uint64) (*models.OrgUser, error) {
	var link models.OrgUser
	if err := r.db.Where("organization_id = ? AND user_id = ?", organizationID, userID).
		First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// Upsert inserts the membership row or overwrites role/status on conflict
// with the unique (organization_id, user_id) pair. Running it twice with the
// same arguments leaves a single unchanged row.
func (r *GormOrgUserRepository) Upsert(link *models.OrgUser) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "organization_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "status", "updated_at"}),
		}).
		Create(link).Error
}

// ListByOrganization lists all membership rows of an organization
func (r *GormOrgUserRepository) ListByOrganization(organizationID uint64) ([]models.OrgUser, error) {
	var links []models.OrgUser
	if err := r.db.Where("organization_id = ?", organizationID).
		Order("id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
