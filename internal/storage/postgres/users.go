package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
)

const userColumns = `id, email, password_hash, role, vehicle_type, push_token, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var (
		u       model.User
		role    string
		vehicle *string
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &vehicle, &u.PushToken, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	u.Role = model.Role(role)
	if vehicle != nil {
		vt := model.VehicleType(*vehicle)
		u.VehicleType = &vt
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	u := model.User{Email: email, PasswordHash: passwordHash, Role: model.RoleCustomer}
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash, string(model.RoleCustomer)).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) SetRole(ctx context.Context, userID int64, role model.Role, vehicle *model.VehicleType) error {
	const query = `UPDATE users SET role=$1, vehicle_type=$2 WHERE id=$3`
	var vehicleStr *string
	if vehicle != nil {
		s := string(*vehicle)
		vehicleStr = &s
	}
	tag, err := r.storage.pool.Exec(ctx, query, string(role), vehicleStr, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) SetPushToken(ctx context.Context, userID int64, token string) error {
	const query = `UPDATE users SET push_token=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, token, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
