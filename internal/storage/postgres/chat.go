package postgres

import (
	"context"

	"github.com/inkroute/inkroute/internal/domain/model"
)

func (r *messageRepository) Append(ctx context.Context, msg *model.Message) (*model.Message, error) {
	const query = `INSERT INTO order_messages (order_id, sender_id, sender_name, body, image)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	stored := *msg
	err := r.storage.pool.QueryRow(ctx, query, msg.OrderID, msg.SenderID, msg.SenderName, msg.Text, msg.Image).
		Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *messageRepository) ListByOrder(ctx context.Context, orderID string) ([]model.Message, error) {
	const query = `SELECT id, order_id, sender_id, sender_name, body, image, created_at
                   FROM order_messages WHERE order_id=$1 ORDER BY created_at, id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.OrderID, &m.SenderID, &m.SenderName, &m.Text, &m.Image, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
