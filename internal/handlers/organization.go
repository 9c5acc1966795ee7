package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yolda/logistics-api/internal/dto"
	apierrors "github.com/yolda/logistics-api/internal/errors"
	"github.com/yolda/logistics-api/internal/middleware"
	"github.com/yolda/logistics-api/internal/repository"
	"github.com/yolda/logistics-api/internal/services"
	"github.com/yolda/logistics-api/internal/utils"
)

// OrganizationHandler coordinates organization HTTP handlers.
type OrganizationHandler struct {
	orgService *services.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler(orgService *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// Create creates an organization owned by the caller, who is granted an
// active admin membership in the same operation.
func (h *OrganizationHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.OrganizationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	org, err := h.orgService.Create(services.CreateOrganizationInput{
		Title:     req.Title,
		TaxOffice: req.TaxOffice,
		TaxNumber: req.TaxNumber,
		OwnerID:   userID,
	})
	if err != nil {
		respondOrgError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationDTO(*org))
}

// List returns the organizations the caller owns.
func (h *OrganizationHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	page := utils.GetPageParams(c)
	orgs, err := h.orgService.ListOwned(userID, repository.PageOpts{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		respondOrgError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationDTOs(orgs))
}

// Get returns one organization visible to the caller.
func (h *OrganizationHandler) Get(c *gin.Context) {
	userID, orgID, ok := orgRequestIDs(c)
	if !ok {
		return
	}

	org, err := h.orgService.Get(orgID, userID)
	if err != nil {
		respondOrgError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationDTO(*org))
}

// Update applies a partial update for active admins.
func (h *OrganizationHandler) Update(c *gin.Context) {
	userID, orgID, ok := orgRequestIDs(c)
	if !ok {
		return
	}

	var req dto.OrganizationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	org, err := h.orgService.Update(orgID, userID, req)
	if err != nil {
		respondOrgError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationDTO(*org))
}

// Delete removes an organization for active admins.
func (h *OrganizationHandler) Delete(c *gin.Context) {
	userID, orgID, ok := orgRequestIDs(c)
	if !ok {
		return
	}

	if err := h.orgService.Delete(orgID, userID); err != nil {
		respondOrgError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignMember sets a user's role within the organization. The upsert is
// idempotent: repeating the same assignment changes nothing.
func (h *OrganizationHandler) AssignMember(c *gin.Context) {
	userID, orgID, ok := orgRequestIDs(c)
	if !ok {
		return
	}

	var req dto.AssignMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	link, err := h.orgService.AssignMemberRole(orgID, userID, req)
	if err != nil {
		respondOrgError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrgUserDTO(*link))
}

// ListMembers lists the organization's membership rows for active admins.
func (h *OrganizationHandler) ListMembers(c *gin.Context) {
	userID, orgID, ok := orgRequestIDs(c)
	if !ok {
		return
	}

	members, err := h.orgService.ListMembers(orgID, userID)
	if err != nil {
		respondOrgError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrgUserDTOs(members))
}

func orgRequestIDs(c *gin.Context) (userID, orgID uint64, ok bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return 0, 0, false
	}

	orgID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid organization ID")
		return 0, 0, false
	}
	return userID, orgID, true
}

func respondOrgError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrgNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrOrgForbidden):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrMemberUser):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
