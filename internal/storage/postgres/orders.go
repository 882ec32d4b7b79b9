package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
)

const orderColumns = `id, customer_id, customer_email, vendor_id, vendor_user_id, vendor_name,
       distance_km, rider_id, item_name, item_quantity, item_paper_size, item_finish,
       subtotal, delivery_fee, grand_total, status, payment_ref, created_at, delivered_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o      model.Order
		status string
	)
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.CustomerEmail, &o.VendorID, &o.VendorUserID, &o.VendorName,
		&o.DistanceKm, &o.RiderID, &o.Item.Name, &o.Item.Quantity, &o.Item.PaperSize, &o.Item.Finish,
		&o.Subtotal, &o.DeliveryFee, &o.GrandTotal, &status, &o.PaymentRef, &o.CreatedAt, &o.DeliveredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	o.Status = model.OrderStatus(status)
	return &o, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (
            id, customer_id, customer_email, vendor_id, vendor_user_id, vendor_name,
            distance_km, item_name, item_quantity, item_paper_size, item_finish,
            subtotal, delivery_fee, grand_total, status, payment_ref
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING created_at`

	stored := *order
	stored.ID = uuid.NewString()
	err := r.storage.pool.QueryRow(ctx, query,
		stored.ID, stored.CustomerID, stored.CustomerEmail, stored.VendorID, stored.VendorUserID, stored.VendorName,
		stored.DistanceKm, stored.Item.Name, stored.Item.Quantity, stored.Item.PaperSize, stored.Item.Finish,
		stored.Subtotal, stored.DeliveryFee, stored.GrandTotal, string(stored.Status), stored.PaymentRef,
	).Scan(&stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &stored, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, customerID)
}

func (r *orderRepository) ListByVendor(ctx context.Context, vendorUserID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE vendor_user_id=$1 ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, vendorUserID)
}

func (r *orderRepository) ListByRider(ctx context.Context, riderID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE rider_id=$1 ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, riderID)
}

func (r *orderRepository) ListAvailable(ctx context.Context, maxDistanceKm *float64) ([]model.Order, error) {
	if maxDistanceKm != nil {
		const query = `SELECT ` + orderColumns + ` FROM orders
                       WHERE status='READY_FOR_PICKUP' AND rider_id IS NULL
                         AND (distance_km IS NULL OR distance_km <= $1)
                       ORDER BY created_at`
		return r.queryOrders(ctx, query, *maxDistanceKm)
	}
	const query = `SELECT ` + orderColumns + ` FROM orders
                   WHERE status='READY_FOR_PICKUP' AND rider_id IS NULL
                   ORDER BY created_at`
	return r.queryOrders(ctx, query)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.queryOrders(ctx, query)
}

func (r *orderRepository) MarkReady(ctx context.Context, orderID string, vendorUserID int64) (*model.Order, error) {
	const query = `UPDATE orders SET status='READY_FOR_PICKUP'
                   WHERE id=$1 AND vendor_user_id=$2 AND status='PENDING'`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, vendorUserID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, r.transitionFailure(ctx, orderID, vendorUserID)
	}
	return r.GetByID(ctx, orderID)
}

// transitionFailure distinguishes why a conditional transition matched no
// rows: missing order, foreign vendor, or wrong prior state.
func (r *orderRepository) transitionFailure(ctx context.Context, orderID string, vendorUserID int64) error {
	order, err := r.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.VendorUserID != vendorUserID {
		return domainErrors.ErrForbidden
	}
	return domainErrors.ErrInvalidTransition
}

func (r *orderRepository) Assign(ctx context.Context, orderID string, riderID int64) (*model.Order, error) {
	const query = `UPDATE orders SET rider_id=$2, status='OUT_FOR_DELIVERY'
                   WHERE id=$1 AND status='READY_FOR_PICKUP' AND rider_id IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, riderID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, orderID); err != nil {
			return nil, err
		}
		return nil, domainErrors.ErrOrderTaken
	}
	return r.GetByID(ctx, orderID)
}

func (r *orderRepository) Complete(ctx context.Context, orderID string, riderID int64) (*model.Order, error) {
	var completed *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE orders SET status='COMPLETED', delivered_at=NOW()
                        WHERE id=$1 AND rider_id=$2 AND status='OUT_FOR_DELIVERY'
                        RETURNING ` + orderColumns
		order, err := scanOrder(tx.QueryRow(ctx, update, orderID, riderID))
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return domainErrors.ErrInvalidTransition
			}
			return err
		}

		if err := r.storage.creditTx(ctx, tx, riderID, order.DeliveryFee, &order.ID, "delivery fee"); err != nil {
			return err
		}
		if err := r.storage.creditTx(ctx, tx, order.VendorUserID, order.Subtotal, &order.ID, "order payout"); err != nil {
			return err
		}

		completed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

func (r *orderRepository) ForceStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	const query = `UPDATE orders SET status=$2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, string(status))
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return r.GetByID(ctx, orderID)
}
