package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkroute/inkroute/internal/server/http/dto"
	"github.com/inkroute/inkroute/internal/server/http/middleware"
)

// AuthHandler processes registration, login and profile requests.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.FromUser(user)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.FromUser(user)})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.facade.User(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.FromUser(user))
}

// PushToken handles POST /api/auth/push-token.
func (h *AuthHandler) PushToken(c *gin.Context) {
	var req dto.PushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RegisterPushToken(c.Request.Context(), CurrentUserID(c), req.Token); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusOK)
}

// ApplyRider handles POST /api/auth/rider-application.
func (h *AuthHandler) ApplyRider(c *gin.Context) {
	var req dto.RiderApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	app, err := h.facade.ApplyForRider(c.Request.Context(), req.ToApplication(CurrentUserID(c)))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusAccepted, dto.FromApplication(app))
}
