package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yolda/logistics-api/internal/dto"
	apierrors "github.com/yolda/logistics-api/internal/errors"
	"github.com/yolda/logistics-api/internal/repository"
	"github.com/yolda/logistics-api/internal/services"
	"github.com/yolda/logistics-api/internal/utils"
)

// AddressHandler serves the public address lookup table.
type AddressHandler struct {
	addressService *services.AddressService
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// Create adds a lookup address.
func (h *AddressHandler) Create(c *gin.Context) {
	var req dto.AddressCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	address, err := h.addressService.Create(req)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, address)
}

// Get returns one address.
func (h *AddressHandler) Get(c *gin.Context) {
	addressID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid address ID")
		return
	}

	address, err := h.addressService.Get(addressID)
	if err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			apierrors.NotFound(c, err.Error())
		} else {
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, address)
}

// List lists addresses.
func (h *AddressHandler) List(c *gin.Context) {
	page := utils.GetPageParams(c)
	addresses, err := h.addressService.List(repository.PageOpts{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, addresses)
}
