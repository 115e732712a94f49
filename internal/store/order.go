package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, customer_id, table_number, items, original_amount, discount_amount, total_amount, reward_id, status, created_at, updated_at, delivered_at`

// CreateOrderParams represents parameters for placing an order
type CreateOrderParams struct {
	CustomerID     *uuid.UUID
	TableNumber    string
	Items          OrderItems
	OriginalAmount decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	RewardID       *uuid.UUID
}

const sqlCreateOrder = `
INSERT INTO orders (customer_id, table_number, items, original_amount, discount_amount, total_amount, reward_id, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending')
RETURNING ` + orderColumns

// CreateOrder inserts a pending order
func (s *Store) CreateOrder(ctx context.Context, params CreateOrderParams) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlCreateOrder,
		params.CustomerID,
		params.TableNumber,
		params.Items,
		params.OriginalAmount,
		params.DiscountAmount,
		params.TotalAmount,
		params.RewardID)
	if err != nil {
		return Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

const sqlGetOrderByID = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

// GetOrderByID retrieves an order by ID
func (s *Store) GetOrderByID(ctx context.Context, orderID uuid.UUID) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlGetOrderByID, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, fmt.Errorf("failed to get order by id: %w", err)
	}
	return order, nil
}

const sqlClearOrderDiscount = `
UPDATE orders
SET discount_amount = 0, total_amount = original_amount, reward_id = NULL, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + orderColumns

// ClearOrderDiscount drops an order's reward and charges the full amount
func (s *Store) ClearOrderDiscount(ctx context.Context, orderID uuid.UUID) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlClearOrderDiscount, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, fmt.Errorf("failed to clear order discount: %w", err)
	}
	return order, nil
}

const sqlUpdateOrderStatus = `
UPDATE orders
SET status = $3,
    updated_at = $4,
    delivered_at = CASE WHEN $3 = 'delivered' THEN $4 ELSE delivered_at END
WHERE id = $1 AND status = $2
RETURNING ` + orderColumns

// UpdateOrderStatus moves an order from one status to another. Returns
// ErrConflict if the order is no longer in the from status.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, from, to string, now time.Time) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlUpdateOrderStatus, orderID, from, to, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrConflict
		}
		return Order{}, fmt.Errorf("failed to update order status: %w", err)
	}
	return order, nil
}

const sqlListOrdersByCustomer = `
SELECT ` + orderColumns + `
FROM orders
WHERE customer_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// ListOrdersByCustomer returns a customer's orders, newest first
func (s *Store) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]Order, error) {
	var orders []Order
	if err := s.db.SelectContext(ctx, &orders, sqlListOrdersByCustomer, customerID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list orders by customer: %w", err)
	}
	return orders, nil
}

const sqlListOrdersByStatus = `
SELECT ` + orderColumns + `
FROM orders
WHERE status = ANY($1::text[])
ORDER BY created_at
LIMIT $2 OFFSET $3
`

// ListOrdersByStatus returns orders in any of the statuses, oldest first
func (s *Store) ListOrdersByStatus(ctx context.Context, statuses []string, limit, offset int) ([]Order, error) {
	var orders []Order
	if err := s.db.SelectContext(ctx, &orders, sqlListOrdersByStatus, StringArray(statuses), limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list orders by status: %w", err)
	}
	return orders, nil
}
