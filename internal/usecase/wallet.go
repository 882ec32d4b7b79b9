package usecase

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
	"github.com/inkroute/inkroute/internal/domain/repository"
)

// WalletUseCase manages the wallet ledger and gateway-settled top-ups.
type WalletUseCase struct {
	wallets repository.WalletRepository
	topups  repository.TopupRepository
}

// NewWalletUseCase constructs WalletUseCase.
func NewWalletUseCase(wallets repository.WalletRepository, topups repository.TopupRepository) *WalletUseCase {
	return &WalletUseCase{wallets: wallets, topups: topups}
}

// Summary returns the user's current balance and lifetime withdrawals.
func (u *WalletUseCase) Summary(ctx context.Context, userID int64) (*model.WalletSummary, error) {
	return u.wallets.GetSummary(ctx, userID)
}

// History returns the user's ledger entries, newest first.
func (u *WalletUseCase) History(ctx context.Context, userID int64) ([]model.WalletEntry, error) {
	return u.wallets.ListEntries(ctx, userID)
}

// Withdraw debits the balance, rejecting overdrafts.
func (u *WalletUseCase) Withdraw(ctx context.Context, userID int64, amount float64) error {
	if amount <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.wallets.Withdraw(ctx, userID, amount)
}

// InitiateTopup registers a funding request and returns it with a fresh
// gateway reference. The balance moves only after settlement confirms.
func (u *WalletUseCase) InitiateTopup(ctx context.Context, userID int64, amount float64) (*model.Topup, error) {
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.topups.Create(ctx, userID, uuid.NewString(), amount)
}

// TopupsForProcessing claims a batch of unsettled top-ups.
func (u *WalletUseCase) TopupsForProcessing(ctx context.Context, limit int) ([]model.Topup, error) {
	return u.topups.SelectBatchForProcessing(ctx, limit)
}

// SettleTopup finalizes a top-up with the gateway's verdict.
func (u *WalletUseCase) SettleTopup(ctx context.Context, topupID int64, status model.TopupStatus) error {
	return u.topups.Settle(ctx, topupID, status)
}
