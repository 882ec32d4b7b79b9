package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
)

// creditTx adds to a balance and appends the matching ledger entry inside an existing transaction.
func (s *Storage) creditTx(ctx context.Context, tx pgx.Tx, userID int64, amount float64, orderID *string, note string) error {
	const updateBalance = `INSERT INTO balances (user_id, current, withdrawn)
                           VALUES ($1, $2, 0)
                           ON CONFLICT (user_id) DO UPDATE SET current = balances.current + EXCLUDED.current`
	if _, err := tx.Exec(ctx, updateBalance, userID, amount); err != nil {
		return err
	}
	const insertEntry = `INSERT INTO wallet_entries (user_id, order_id, kind, amount, note)
                         VALUES ($1, $2, 'CREDIT', $3, $4)`
	if _, err := tx.Exec(ctx, insertEntry, userID, orderID, amount, note); err != nil {
		return err
	}
	return nil
}

func (r *walletRepository) GetSummary(ctx context.Context, userID int64) (*model.WalletSummary, error) {
	const query = `SELECT current, withdrawn FROM balances WHERE user_id=$1`
	var summary model.WalletSummary
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&summary.Balance, &summary.Withdrawn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.WalletSummary{}, nil
		}
		return nil, err
	}
	return &summary, nil
}

func (r *walletRepository) Credit(ctx context.Context, userID int64, amount float64, orderID *string, note string) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return r.storage.creditTx(ctx, tx, userID, amount, orderID, note)
	})
}

func (r *walletRepository) Withdraw(ctx context.Context, userID int64, amount float64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const balanceQuery = `SELECT current FROM balances WHERE user_id=$1 FOR UPDATE`
		var current float64
		err := tx.QueryRow(ctx, balanceQuery, userID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				current = 0
			} else {
				return err
			}
		}
		if current < amount {
			return domainErrors.ErrInsufficientBalance
		}

		const updateBalance = `UPDATE balances
                               SET current = current - $2, withdrawn = withdrawn + $2
                               WHERE user_id = $1`
		if _, err := tx.Exec(ctx, updateBalance, userID, amount); err != nil {
			return err
		}

		const insertEntry = `INSERT INTO wallet_entries (user_id, kind, amount, note)
                             VALUES ($1, 'DEBIT', $2, 'withdrawal')`
		if _, err := tx.Exec(ctx, insertEntry, userID, amount); err != nil {
			return err
		}
		return nil
	})
}

func (r *walletRepository) ListEntries(ctx context.Context, userID int64) ([]model.WalletEntry, error) {
	const query = `SELECT id, user_id, order_id, kind, amount, note, created_at
                   FROM wallet_entries WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.WalletEntry
	for rows.Next() {
		var (
			e    model.WalletEntry
			kind string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.OrderID, &kind, &e.Amount, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Kind = model.EntryKind(kind)
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *topupRepository) Create(ctx context.Context, userID int64, reference string, amount float64) (*model.Topup, error) {
	const query = `INSERT INTO wallet_topups (user_id, reference, amount, status)
                   VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	topup := model.Topup{UserID: userID, Reference: reference, Amount: amount, Status: model.TopupStatusNew}
	err := r.storage.pool.QueryRow(ctx, query, userID, reference, amount, string(model.TopupStatusNew)).
		Scan(&topup.ID, &topup.CreatedAt, &topup.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &topup, nil
}

func (r *topupRepository) SelectBatchForProcessing(ctx context.Context, limit int) ([]model.Topup, error) {
	const selectQuery = `SELECT id, user_id, reference, amount, status, created_at, updated_at
                         FROM wallet_topups
                         WHERE status IN ('NEW', 'PROCESSING')
                         ORDER BY created_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var topups []model.Topup
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				t      model.Topup
				status string
			)
			if err := rows.Scan(&t.ID, &t.UserID, &t.Reference, &t.Amount, &status, &t.CreatedAt, &t.UpdatedAt); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `UPDATE wallet_topups SET status='PROCESSING', updated_at=NOW() WHERE id=$1`, t.ID); err != nil {
				return err
			}
			t.Status = model.TopupStatusProcessing
			topups = append(topups, t)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return topups, nil
}

func (r *topupRepository) Settle(ctx context.Context, topupID int64, status model.TopupStatus) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE wallet_topups SET status=$1, updated_at=NOW() WHERE id=$2
                        RETURNING user_id, amount`
		var (
			userID int64
			amount float64
		)
		if err := tx.QueryRow(ctx, update, string(status), topupID).Scan(&userID, &amount); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if status == model.TopupStatusConfirmed {
			return r.storage.creditTx(ctx, tx, userID, amount, nil, "wallet top-up")
		}
		return nil
	})
}
