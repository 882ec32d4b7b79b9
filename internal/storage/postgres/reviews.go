package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
)

const reviewColumns = `id, order_id, customer_id, vendor_id, rider_id, vendor_rating, rider_rating, comment, created_at`

func scanReview(row pgx.Row) (*model.Review, error) {
	var rv model.Review
	err := row.Scan(&rv.ID, &rv.OrderID, &rv.CustomerID, &rv.VendorID, &rv.RiderID,
		&rv.VendorRating, &rv.RiderRating, &rv.Comment, &rv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	const query = `INSERT INTO reviews (order_id, customer_id, vendor_id, rider_id, vendor_rating, rider_rating, comment)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	stored := *review
	err := r.storage.pool.QueryRow(ctx, query,
		review.OrderID, review.CustomerID, review.VendorID, review.RiderID,
		review.VendorRating, review.RiderRating, review.Comment,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &stored, nil
}

func (r *reviewRepository) GetByOrder(ctx context.Context, orderID string) (*model.Review, error) {
	const query = `SELECT ` + reviewColumns + ` FROM reviews WHERE order_id=$1`
	return scanReview(r.storage.pool.QueryRow(ctx, query, orderID))
}

func (r *reviewRepository) ListByVendor(ctx context.Context, vendorID int64) ([]model.Review, error) {
	const query = `SELECT ` + reviewColumns + ` FROM reviews WHERE vendor_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
