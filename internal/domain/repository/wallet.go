package repository

import (
	"context"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// WalletRepository manages the authoritative wallet ledger.
type WalletRepository interface {
	GetSummary(ctx context.Context, userID int64) (*model.WalletSummary, error)
	Credit(ctx context.Context, userID int64, amount float64, orderID *string, note string) error
	// Withdraw debits the balance under a row lock and appends the matching
	// ledger entry; it reports ErrInsufficientBalance without writing anything.
	Withdraw(ctx context.Context, userID int64, amount float64) error
	ListEntries(ctx context.Context, userID int64) ([]model.WalletEntry, error)
}

// TopupRepository manages wallet funding requests pending gateway settlement.
type TopupRepository interface {
	Create(ctx context.Context, userID int64, reference string, amount float64) (*model.Topup, error)
	SelectBatchForProcessing(ctx context.Context, limit int) ([]model.Topup, error)
	// Settle finalizes a top-up; a CONFIRMED settlement credits the wallet in
	// the same transaction.
	Settle(ctx context.Context, topupID int64, status model.TopupStatus) error
}
