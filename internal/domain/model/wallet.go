package model

import "time"

// WalletSummary aggregates a user's current balance and lifetime withdrawals.
type WalletSummary struct {
	Balance   float64
	Withdrawn float64
}

// EntryKind marks the direction of a wallet ledger entry.
type EntryKind string

const (
	EntryCredit EntryKind = "CREDIT"
	EntryDebit  EntryKind = "DEBIT"
)

// WalletEntry is one record of the append-only wallet ledger. Balance is
// never recomputed from unrelated collections; every movement has an entry.
type WalletEntry struct {
	ID        int64
	UserID    int64
	OrderID   *string
	Kind      EntryKind
	Amount    float64
	Note      string
	CreatedAt time.Time
}

// TopupStatus describes gateway settlement lifecycle of a top-up.
type TopupStatus string

const (
	TopupStatusNew        TopupStatus = "NEW"
	TopupStatusProcessing TopupStatus = "PROCESSING"
	TopupStatusConfirmed  TopupStatus = "CONFIRMED"
	TopupStatusFailed     TopupStatus = "FAILED"
)

// Topup is a wallet funding request awaiting payment gateway confirmation.
// The balance is credited only after the settlement worker verifies the
// reference with the gateway.
type Topup struct {
	ID        int64
	UserID    int64
	Reference string
	Amount    float64
	Status    TopupStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
