package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
)

const applicationColumns = `id, user_id, name, phone, national_id, vehicle_type, plate_number,
       address, guarantor_name, guarantor_phone, status, created_at`

func scanApplication(row pgx.Row) (*model.RiderApplication, error) {
	var (
		a       model.RiderApplication
		vehicle string
		status  string
	)
	err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Phone, &a.NationalID, &vehicle, &a.PlateNumber,
		&a.Address, &a.GuarantorName, &a.GuarantorPhone, &status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	a.VehicleType = model.VehicleType(vehicle)
	a.Status = model.ApplicationStatus(status)
	return &a, nil
}

func (r *riderApplicationRepository) Create(ctx context.Context, app *model.RiderApplication) (*model.RiderApplication, error) {
	const query = `INSERT INTO rider_applications (
            user_id, name, phone, national_id, vehicle_type, plate_number,
            address, guarantor_name, guarantor_phone, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at`
	stored := *app
	err := r.storage.pool.QueryRow(ctx, query,
		app.UserID, app.Name, app.Phone, app.NationalID, string(app.VehicleType), app.PlateNumber,
		app.Address, app.GuarantorName, app.GuarantorPhone, string(app.Status),
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *riderApplicationRepository) GetByID(ctx context.Context, id int64) (*model.RiderApplication, error) {
	const query = `SELECT ` + applicationColumns + ` FROM rider_applications WHERE id=$1`
	return scanApplication(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *riderApplicationRepository) ListPending(ctx context.Context) ([]model.RiderApplication, error) {
	const query = `SELECT ` + applicationColumns + ` FROM rider_applications WHERE status='PENDING' ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.RiderApplication
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *riderApplicationRepository) Decide(ctx context.Context, id int64, status model.ApplicationStatus) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE rider_applications SET status=$1 WHERE id=$2 AND status='PENDING'
                        RETURNING user_id, vehicle_type`
		var (
			userID  int64
			vehicle string
		)
		if err := tx.QueryRow(ctx, update, string(status), id).Scan(&userID, &vehicle); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if status == model.ApplicationStatusApproved {
			const grant = `UPDATE users SET role=$1, vehicle_type=$2 WHERE id=$3`
			if _, err := tx.Exec(ctx, grant, string(model.RoleRider), vehicle, userID); err != nil {
				return err
			}
		}
		return nil
	})
}
