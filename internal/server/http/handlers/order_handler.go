package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkroute/inkroute/internal/domain/model"
	"github.com/inkroute/inkroute/internal/server/http/dto"
	"github.com/inkroute/inkroute/internal/usecase"
)

// OrderHandler processes the order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), usecase.PlaceOrderInput{
		CustomerID:    CurrentUserID(c),
		CustomerEmail: CurrentUserEmail(c),
		VendorID:      req.VendorID,
		Item: model.PrintItem{
			Name:      req.Item.Name,
			Quantity:  req.Item.Quantity,
			PaperSize: req.Item.PaperSize,
			Finish:    req.Item.Finish,
		},
		Subtotal:    req.Subtotal,
		PaymentRef:  req.PaymentRef,
		CustomerLat: req.Latitude,
		CustomerLng: req.Longitude,
	})
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusCreated, dto.FromOrder(order))
}

// List handles GET /api/orders, scoped by the caller's role.
func (h *OrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	userID := CurrentUserID(c)

	var (
		orders []model.Order
		err    error
	)
	switch CurrentUserRole(c) {
	case model.RoleVendor:
		orders, err = h.facade.VendorOrders(ctx, userID)
	case model.RoleRider:
		orders, err = h.facade.RiderOrders(ctx, userID)
	case model.RoleAdmin:
		orders, err = h.facade.AllOrders(ctx)
	default:
		orders, err = h.facade.CustomerOrders(ctx, userID)
	}
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.FromOrders(orders))
}

// Available handles GET /api/orders/available for riders.
func (h *OrderHandler) Available(c *gin.Context) {
	orders, err := h.facade.AvailableOrders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.FromOrders(orders))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"), CurrentUserID(c), CurrentUserRole(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.FromOrder(order))
}

// Ready handles POST /api/orders/:id/ready for vendors.
func (h *OrderHandler) Ready(c *gin.Context) {
	order, err := h.facade.MarkOrderReady(c.Request.Context(), c.Param("id"), CurrentUserID(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.FromOrder(order))
}

// Accept handles POST /api/orders/:id/accept for riders.
func (h *OrderHandler) Accept(c *gin.Context) {
	order, err := h.facade.AcceptOrder(c.Request.Context(), c.Param("id"), CurrentUserID(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.FromOrder(order))
}

// Complete handles POST /api/orders/:id/complete.
func (h *OrderHandler) Complete(c *gin.Context) {
	order, err := h.facade.CompleteOrder(c.Request.Context(), c.Param("id"), CurrentUserID(c), CurrentUserRole(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.FromOrder(order))
}

// ForceStatus handles PUT /api/orders/:id/status for admins.
func (h *OrderHandler) ForceStatus(c *gin.Context) {
	var req dto.ForceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	status := model.OrderStatus(req.Status)
	if !model.ValidOrderStatus(status) {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.ForceOrderStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.FromOrder(order))
}

// Location handles POST /api/riders/location.
func (h *OrderHandler) Location(c *gin.Context) {
	var req dto.LocationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateRiderLocation(c.Request.Context(), CurrentUserID(c), req.Latitude, req.Longitude); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusOK)
}

// Track handles GET /api/orders/:id/track.
func (h *OrderHandler) Track(c *gin.Context) {
	lat, err := queryFloat(c, "lat")
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	lng, err := queryFloat(c, "lng")
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	info, err := h.facade.TrackOrder(c.Request.Context(), c.Param("id"), CurrentUserID(c), CurrentUserRole(c), lat, lng)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.FromTracking(info))
}
