package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkroute/inkroute/internal/domain/model"
	"github.com/inkroute/inkroute/internal/server/http/dto"
)

// AdminHandler processes the administrative endpoints.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler creates AdminHandler instance.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Users handles GET /api/admin/users.
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if len(users) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.FromUsers(users))
}

// SetRole handles PUT /api/admin/users/:id/role.
func (h *AdminHandler) SetRole(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	role := model.Role(req.Role)
	if !model.ValidRole(role) {
		c.Status(http.StatusBadRequest)
		return
	}
	var vehicle *model.VehicleType
	if req.VehicleType != nil {
		vt := model.VehicleType(*req.VehicleType)
		if !model.ValidVehicleType(vt) {
			c.Status(http.StatusBadRequest)
			return
		}
		vehicle = &vt
	}

	if err := h.facade.SetUserRole(c.Request.Context(), userID, role, vehicle); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusOK)
}

// Applications handles GET /api/admin/rider-applications.
func (h *AdminHandler) Applications(c *gin.Context) {
	apps, err := h.facade.PendingRiderApplications(c.Request.Context())
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if len(apps) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.FromApplications(apps))
}

// Decide handles POST /api/admin/rider-applications/:id.
func (h *AdminHandler) Decide(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ApplicationDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DecideRiderApplication(c.Request.Context(), id, req.Approve); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusOK)
}
