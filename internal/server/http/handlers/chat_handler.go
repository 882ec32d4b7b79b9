package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkroute/inkroute/internal/server/http/dto"
)

// ChatHandler processes per-order message threads.
type ChatHandler struct {
	facade ChatFacade
}

// NewChatHandler creates ChatHandler instance.
func NewChatHandler(facade ChatFacade) *ChatHandler {
	return &ChatHandler{facade: facade}
}

// Post handles POST /api/orders/:id/messages.
func (h *ChatHandler) Post(c *gin.Context) {
	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	msg, err := h.facade.PostMessage(c.Request.Context(), c.Param("id"),
		CurrentUserID(c), CurrentUserRole(c), CurrentUserEmail(c), req.Text, req.Image)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusCreated, dto.FromMessage(msg))
}

// History handles GET /api/orders/:id/messages.
func (h *ChatHandler) History(c *gin.Context) {
	messages, err := h.facade.ChatHistory(c.Request.Context(), c.Param("id"), CurrentUserID(c), CurrentUserRole(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if len(messages) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.FromMessages(messages))
}
