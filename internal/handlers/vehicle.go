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

// VehicleHandler coordinates vehicle HTTP handlers.
type VehicleHandler struct {
	vehicleService *services.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicleService *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// List returns the caller's vehicles, optionally narrowed to one
// organization. This is a personal list, not an organization list.
func (h *VehicleHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	orgFilter, ok := optionalOrgFilter(c)
	if !ok {
		return
	}

	page := utils.GetPageParams(c)
	vehicles, err := h.vehicleService.List(userID, orgFilter, repository.PageOpts{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		respondVehicleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleDTOs(vehicles))
}

// Create lists a new vehicle owned by the caller.
func (h *VehicleHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.VehicleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleService.Create(userID, req)
	if err != nil {
		respondVehicleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVehicleDTO(*vehicle))
}

// Get returns one vehicle visible to the caller.
func (h *VehicleHandler) Get(c *gin.Context) {
	userID, vehicleID, ok := vehicleRequestIDs(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.Get(vehicleID, userID)
	if err != nil {
		respondVehicleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleDTO(*vehicle))
}

// Update applies a partial update.
func (h *VehicleHandler) Update(c *gin.Context) {
	userID, vehicleID, ok := vehicleRequestIDs(c)
	if !ok {
		return
	}

	var req dto.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.vehicleService.Update(vehicleID, userID, req)
	if err != nil {
		respondVehicleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleDTO(*vehicle))
}

// Delete removes a vehicle.
func (h *VehicleHandler) Delete(c *gin.Context) {
	userID, vehicleID, ok := vehicleRequestIDs(c)
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(vehicleID, userID); err != nil {
		respondVehicleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func vehicleRequestIDs(c *gin.Context) (userID, vehicleID uint64, ok bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return 0, 0, false
	}

	vehicleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid vehicle ID")
		return 0, 0, false
	}
	return userID, vehicleID, true
}

// optionalOrgFilter parses the organization_id query parameter shared by
// the list endpoints.
func optionalOrgFilter(c *gin.Context) (*uint64, bool) {
	raw := c.Query("organization_id")
	if raw == "" {
		return nil, true
	}
	orgID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid organization_id filter")
		return nil, false
	}
	return &orgID, true
}

func respondVehicleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrVehicleNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrVehicleForbidden):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
