package dto

import (
	"time"

	"github.com/yolda/logistics-api/internal/models"
)

// OrganizationCreateRequest is the payload for creating an organization.
type OrganizationCreateRequest struct {
	Title     string  `json:"title" binding:"required,min=2,max=255"`
	TaxOffice *string `json:"tax_office" binding:"omitempty,max=128"`
	TaxNumber *string `json:"tax_number" binding:"omitempty,max=16"`
}

// OrganizationUpdateRequest is a partial update. Title cannot be cleared;
// tax fields can be cleared with an explicit null.
type OrganizationUpdateRequest struct {
	Title     *string          `json:"title" binding:"omitempty,min=2,max=255"`
	TaxOffice Optional[string] `json:"tax_office"`
	TaxNumber Optional[string] `json:"tax_number"`
}

// AssignMemberRequest sets a user's role (and optionally status) inside an
// organization. Assigning twice with the same values is a no-op.
type AssignMemberRequest struct {
	UserID uint64                `json:"user_id" binding:"required"`
	Role   models.OrgRole        `json:"role" binding:"required,oneof=corporate_admin corporate_user"`
	Status *models.GenericStatus `json:"status" binding:"omitempty,oneof=active inactive suspended"`
}

// OrganizationDTO represents an organization in API responses.
type OrganizationDTO struct {
	ID          uint64               `json:"id"`
	Title       string               `json:"title"`
	TaxOffice   *string              `json:"tax_office"`
	TaxNumber   *string              `json:"tax_number"`
	AddressID   *uint64              `json:"address_id"`
	OwnerUserID uint64               `json:"owner_user_id"`
	Status      models.GenericStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ToOrganizationDTO converts an Organization model to OrganizationDTO
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:          org.ID,
		Title:       org.Title,
		TaxOffice:   org.TaxOffice,
		TaxNumber:   org.TaxNumber,
		AddressID:   org.AddressID,
		OwnerUserID: org.OwnerUserID,
		Status:      org.Status,
		CreatedAt:   org.CreatedAt,
		UpdatedAt:   org.UpdatedAt,
	}
}

// ToOrganizationDTOs converts a slice of organizations for list responses
func ToOrganizationDTOs(orgs []models.Organization) []OrganizationDTO {
	out := make([]OrganizationDTO, len(orgs))
	for i, org := range orgs {
		out[i] = ToOrganizationDTO(org)
	}
	return out
}

// OrgUserDTO represents a membership row in API responses.
type OrgUserDTO struct {
	ID             uint64               `json:"id"`
	OrganizationID uint64               `json:"organization_id"`
	UserID         uint64               `json:"user_id"`
	Role           models.OrgRole       `json:"role"`
	Status         models.GenericStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// ToOrgUserDTO converts an OrgUser model to OrgUserDTO
func ToOrgUserDTO(link models.OrgUser) OrgUserDTO {
	return OrgUserDTO{
		ID:             link.ID,
		OrganizationID: link.OrganizationID,
		UserID:         link.UserID,
		Role:           link.Role,
		Status:         link.Status,
		CreatedAt:      link.CreatedAt,
		UpdatedAt:      link.UpdatedAt,
	}
}

// ToOrgUserDTOs converts a slice of membership rows for list responses
func ToOrgUserDTOs(links []models.OrgUser) []OrgUserDTO {
	out := make([]OrgUserDTO, len(links))
	for i, link := range links {
		out[i] = ToOrgUserDTO(link)
	}
	return out
}
