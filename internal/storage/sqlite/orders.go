package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tastyhub/internal/models"
)

// CreateOrder records a checked-out order. Lines are stored as JSON since
// they are never queried individually.
func (s *SQLiteStore) CreateOrder(ctx context.Context, order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO orders (id, user_id, items, item_count, total, placed_at) VALUES (?, ?, ?, ?, ?, ?)",
		order.ID, order.UserID, string(items), order.ItemCount, order.Total.String(), order.PlacedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// ListOrdersByUser returns a user's orders, most recent first.
func (s *SQLiteStore) ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, items, item_count, total, placed_at FROM orders WHERE user_id = ? ORDER BY placed_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		var items, total string
		if err := rows.Scan(&order.ID, &order.UserID, &items, &order.ItemCount, &total, &order.PlacedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if err := json.Unmarshal([]byte(items), &order.Items); err != nil {
			return nil, fmt.Errorf("failed to decode order %s items: %w", order.ID, err)
		}
		if order.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("failed to decode order %s total: %w", order.ID, err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}
	return orders, nil
}
