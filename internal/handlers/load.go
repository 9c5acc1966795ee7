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

// LoadHandler coordinates load HTTP handlers.
type LoadHandler struct {
	loadService *services.LoadService
}

// NewLoadHandler creates a new LoadHandler.
func NewLoadHandler(loadService *services.LoadService) *LoadHandler {
	return &LoadHandler{loadService: loadService}
}

// List returns the caller's loads, optionally narrowed to one
// organization. This is a personal list, not an organization list.
func (h *LoadHandler) List(c *gin.Context) {
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
	loads, err := h.loadService.List(userID, orgFilter, repository.PageOpts{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoadDTOs(loads))
}

// Create posts a new load owned by the caller.
func (h *LoadHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.LoadCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.PickupDay.IsZero() {
		apierrors.BadRequest(c, "pickup_day is required")
		return
	}

	load, err := h.loadService.Create(userID, req)
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoadDTO(*load))
}

// Get returns one load visible to the caller.
func (h *LoadHandler) Get(c *gin.Context) {
	userID, loadID, ok := loadRequestIDs(c)
	if !ok {
		return
	}

	load, err := h.loadService.Get(loadID, userID)
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoadDTO(*load))
}

// Update applies a partial update.
func (h *LoadHandler) Update(c *gin.Context) {
	userID, loadID, ok := loadRequestIDs(c)
	if !ok {
		return
	}

	var req dto.LoadUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	load, err := h.loadService.Update(loadID, userID, req)
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoadDTO(*load))
}

// Delete removes a load.
func (h *LoadHandler) Delete(c *gin.Context) {
	userID, loadID, ok := loadRequestIDs(c)
	if !ok {
		return
	}

	if err := h.loadService.Delete(loadID, userID); err != nil {
		respondLoadError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func loadRequestIDs(c *gin.Context) (userID, loadID uint64, ok bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return 0, 0, false
	}

	loadID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid load ID")
		return 0, 0, false
	}
	return userID, loadID, true
}

func respondLoadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrLoadNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrLoadForbidden):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrLoadAddress):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
