package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yolda/logistics-api/internal/models"
	"github.com/yolda/logistics-api/internal/repository"
)

// MembershipService answers and mutates organization membership. It is the
// single source of truth for the "active admin" question the access policy
// depends on.
type MembershipService struct {
	orgUsers repository.OrgUserRepository
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(orgUsers repository.OrgUserRepository) *MembershipService {
	return &MembershipService{orgUsers: orgUsers}
}

// IsActiveAdmin reports whether the membership row for the pair exists with
// role corporate_admin and status active. A missing row, a different role
// or a non-active status all mean false, never an error.
func (s *MembershipService) IsActiveAdmin(organizationID, userID uint64) (bool, error) {
	link, err := s.orgUsers.FindLink(organizationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return link.Role == models.RoleCorporateAdmin && link.Status == models.StatusActive, nil
}

// AssignRole upserts the membership row for the pair, overwriting role and
// status when it already exists. The returned row reflects the stored state.
func (s *MembershipService) AssignRole(organizationID, userID uint64, role models.OrgRole, status models.GenericStatus) (*models.OrgUser, error) {
	link := &models.OrgUser{
		OrganizationID: organizationID,
		UserID:         userID,
		Role:           role,
		Status:         status,
	}
	if err := s.orgUsers.Upsert(link); err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	// The upsert may have hit an existing row; re-read for the stored ids.
	stored, err := s.orgUsers.FindLink(organizationID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload membership: %w", err)
	}
	return stored, nil
}

// ListMembers lists all membership rows of an organization.
func (s *MembershipService) ListMembers(organizationID uint64) ([]models.OrgUser, error) {
	return s.orgUsers.ListByOrganization(organizationID)
}
