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
	// ErrOrgNotFound covers both a missing row and a row the caller may not
	// see; the two are indistinguishable on purpose.
	ErrOrgNotFound  = errors.New("organization not found")
	ErrOrgForbidden = errors.New("organization admin required")
	ErrMemberUser   = errors.New("member user does not exist")
)

// OrganizationService handles organization CRUD and membership management
// under the organization access rules.
type OrganizationService struct {
	orgRepo    repository.OrganizationRepository
	userRepo   repository.UserRepository
	membership *MembershipService
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(orgRepo repository.OrganizationRepository, userRepo repository.UserRepository, membership *MembershipService) *OrganizationService {
	return &OrganizationService{
		orgRepo:    orgRepo,
		userRepo:   userRepo,
		membership: membership,
	}
}

// CreateOrganizationInput represents the fields for a new organization.
type CreateOrganizationInput struct {
	Title     string
	TaxOffice *string
	TaxNumber *string
	OwnerID   uint64
}

// Create records the caller as owner and grants them an active admin
// membership in the same transaction.
func (s *OrganizationService) Create(input CreateOrganizationInput) (*models.Organization, error) {
	org := &models.Organization{
		Title:       input.Title,
		TaxOffice:   input.TaxOffice,
		TaxNumber:   input.TaxNumber,
		OwnerUserID: input.OwnerID,
		Status:      models.StatusActive,
	}
	link := &models.OrgUser{
		UserID: input.OwnerID,
		Role:   models.RoleCorporateAdmin,
		Status: models.StatusActive,
	}

	if err := s.orgRepo.CreateWithAdmin(org, link); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return org, nil
}

// Get returns an organization visible to the caller: its owner or an
// active admin. Anyone else learns nothing beyond "not found".
func (s *OrganizationService) Get(id, callerID uint64) (*models.Organization, error) {
	org, err := s.find(id)
	if err != nil {
		return nil, err
	}

	ok, err := policy.CanReadOrganization(org.OwnerUserID, org.ID, callerID, s.membership)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrgNotFound
	}
	return org, nil
}

// ListOwned lists organizations the caller owns.
func (s *OrganizationService) ListOwned(callerID uint64, page repository.PageOpts) ([]models.Organization, error) {
	return s.orgRepo.ListByOwner(callerID, page)
}

// Update applies a partial update. Mutation requires an active admin
// membership; the row's existence is only revealed to callers who could
// read it anyway.
func (s *OrganizationService) Update(id, callerID uint64, patch dto.OrganizationUpdateRequest) (*models.Organization, error) {
	org, err := s.authorizeMutation(id, callerID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		org.Title = *patch.Title
	}
	if patch.TaxOffice.Set {
		org.TaxOffice = patch.TaxOffice.Ptr()
	}
	if patch.TaxNumber.Set {
		org.TaxNumber = patch.TaxNumber.Ptr()
	}

	if err := s.orgRepo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return org, nil
}

// Delete removes the organization and its membership rows.
func (s *OrganizationService) Delete(id, callerID uint64) error {
	if _, err := s.authorizeMutation(id, callerID); err != nil {
		return err
	}
	if err := s.orgRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}

// AssignMemberRole upserts a membership row. Only active admins may manage
// members; a default status of active applies when none is given.
func (s *OrganizationService) AssignMemberRole(orgID, callerID uint64, req dto.AssignMemberRequest) (*models.OrgUser, error) {
	if _, err := s.authorizeMutation(orgID, callerID); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberUser
		}
		return nil, fmt.Errorf("failed to check member user: %w", err)
	}

	status := models.StatusActive
	if req.Status != nil {
		status = *req.Status
	}
	return s.membership.AssignRole(orgID, req.UserID, req.Role, status)
}

// ListMembers lists an organization's membership rows for active admins.
func (s *OrganizationService) ListMembers(orgID, callerID uint64) ([]models.OrgUser, error) {
	if _, err := s.authorizeMutation(orgID, callerID); err != nil {
		return nil, err
	}
	return s.membership.ListMembers(orgID)
}

// authorizeMutation enforces the mutation rule and then loads the row. The
// admin check deliberately runs first: a caller without an active admin
// membership gets forbidden whether or not the id exists, and an owner
// whose membership was revoked is treated the same as any other non-admin.
func (s *OrganizationService) authorizeMutation(id, callerID uint64) (*models.Organization, error) {
	ok, err := policy.CanMutateOrganization(id, callerID, s.membership)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrgForbidden
	}
	return s.find(id)
}

func (s *OrganizationService) find(id uint64) (*models.Organization, error) {
	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	return org, nil
}
