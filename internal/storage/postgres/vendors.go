package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
)

const vendorColumns = `id, user_id, name, address, latitude, longitude, created_at`

func scanVendor(row pgx.Row) (*model.Vendor, error) {
	var v model.Vendor
	err := row.Scan(&v.ID, &v.UserID, &v.Name, &v.Address, &v.Latitude, &v.Longitude, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *vendorRepository) Create(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error) {
	const query = `INSERT INTO vendors (user_id, name, address, latitude, longitude)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	stored := *vendor
	err := r.storage.pool.QueryRow(ctx, query, vendor.UserID, vendor.Name, vendor.Address, vendor.Latitude, vendor.Longitude).
		Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id int64) (*model.Vendor, error) {
	const query = `SELECT ` + vendorColumns + ` FROM vendors WHERE id=$1`
	return scanVendor(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *vendorRepository) GetByUser(ctx context.Context, userID int64) (*model.Vendor, error) {
	const query = `SELECT ` + vendorColumns + ` FROM vendors WHERE user_id=$1`
	return scanVendor(r.storage.pool.QueryRow(ctx, query, userID))
}

func (r *vendorRepository) List(ctx context.Context) ([]model.Vendor, error) {
	const query = `SELECT ` + vendorColumns + ` FROM vendors ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
