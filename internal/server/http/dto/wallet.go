package dto

import (
	"time"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// WalletResponse represents the balance summary.
type WalletResponse struct {
	Balance   float64 `json:"balance"`
	Withdrawn float64 `json:"withdrawn"`
}

// WalletEntryResponse describes one ledger entry.
type WalletEntryResponse struct {
	ID        int64     `json:"id"`
	OrderID   *string   `json:"order_id,omitempty"`
	Kind      string    `json:"kind"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FromWalletEntries maps the ledger history.
func FromWalletEntries(entries []model.WalletEntry) []WalletEntryResponse {
	out := make([]WalletEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, WalletEntryResponse{
			ID:        e.ID,
			OrderID:   e.OrderID,
			Kind:      string(e.Kind),
			Amount:    e.Amount,
			Note:      e.Note,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

// WithdrawRequest describes withdrawal request payload.
type WithdrawRequest struct {
	Amount float64 `json:"amount"`
}

// TopupRequest asks to fund the wallet through the payment gateway.
type TopupRequest struct {
	Amount float64 `json:"amount"`
}

// TopupResponse returns the pending top-up with its gateway reference.
type TopupResponse struct {
	ID        int64     `json:"id"`
	Reference string    `json:"reference"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// FromTopup maps a domain top-up onto its response shape.
func FromTopup(t *model.Topup) TopupResponse {
	return TopupResponse{
		ID:        t.ID,
		Reference: t.Reference,
		Amount:    t.Amount,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}
