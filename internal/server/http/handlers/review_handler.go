package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkroute/inkroute/internal/server/http/dto"
)

// ReviewHandler processes post-delivery ratings.
type ReviewHandler struct {
	facade ReviewFacade
}

// NewReviewHandler creates ReviewHandler instance.
func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Submit handles POST /api/orders/:id/review.
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	review, err := h.facade.SubmitReview(c.Request.Context(), c.Param("id"),
		CurrentUserID(c), req.VendorRating, req.RiderRating, req.Comment)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusCreated, dto.FromReview(review))
}

// ForOrder handles GET /api/orders/:id/review.
func (h *ReviewHandler) ForOrder(c *gin.Context) {
	review, err := h.facade.OrderReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.FromReview(review))
}

// ForVendor handles GET /api/vendors/:id/reviews.
func (h *ReviewHandler) ForVendor(c *gin.Context) {
	vendorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reviews, err := h.facade.VendorReviews(c.Request.Context(), vendorID)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if len(reviews) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.FromReviews(reviews))
}
