package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkroute/inkroute/internal/server/http/dto"
)

// WalletHandler processes wallet ledger and top-up endpoints.
type WalletHandler struct {
	facade WalletFacade
}

// NewWalletHandler creates WalletHandler instance.
func NewWalletHandler(facade WalletFacade) *WalletHandler {
	return &WalletHandler{facade: facade}
}

// Summary handles GET /api/wallet.
func (h *WalletHandler) Summary(c *gin.Context) {
	summary, err := h.facade.WalletSummary(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.WalletResponse{
		Balance:   summary.Balance,
		Withdrawn: summary.Withdrawn,
	})
}

// History handles GET /api/wallet/history.
func (h *WalletHandler) History(c *gin.Context) {
	entries, err := h.facade.WalletHistory(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if len(entries) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.FromWalletEntries(entries))
}

// Withdraw handles POST /api/wallet/withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.Withdraw(c.Request.Context(), CurrentUserID(c), req.Amount); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusOK)
}

// Topup handles POST /api/wallet/topup.
func (h *WalletHandler) Topup(c *gin.Context) {
	var req dto.TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	topup, err := h.facade.InitiateTopup(c.Request.Context(), CurrentUserID(c), req.Amount)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusAccepted, dto.FromTopup(topup))
}
