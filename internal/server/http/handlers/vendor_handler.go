package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkroute/inkroute/internal/server/http/dto"
)

// VendorHandler processes the print shop catalog endpoints.
type VendorHandler struct {
	facade VendorFacade
}

// NewVendorHandler creates VendorHandler instance.
func NewVendorHandler(facade VendorFacade) *VendorHandler {
	return &VendorHandler{facade: facade}
}

// Register handles POST /api/vendors.
func (h *VendorHandler) Register(c *gin.Context) {
	var req dto.VendorRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	vendor, err := h.facade.RegisterVendor(c.Request.Context(), CurrentUserID(c),
		req.Name, req.Address, req.Latitude, req.Longitude)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusCreated, dto.FromVendor(vendor))
}

// List handles GET /api/vendors.
func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.facade.Vendors(c.Request.Context())
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if len(vendors) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.FromVendors(vendors))
}

// Get handles GET /api/vendors/:id.
func (h *VendorHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	vendor, err := h.facade.Vendor(c.Request.Context(), id)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.FromVendor(vendor))
}

// Mine handles GET /api/vendors/mine for vendor accounts.
func (h *VendorHandler) Mine(c *gin.Context) {
	vendor, err := h.facade.VendorByUser(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.FromVendor(vendor))
}
