package handler

import (
	"context"

	"loyalty-server/internal/orders/processor"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=handler

// OrderService is the order processor as seen by the HTTP layer
type OrderService interface {
	PlaceOrder(ctx context.Context, req processor.PlaceOrderRequest) (processor.PlaceOrderResult, error)
	AdvanceStatus(ctx context.Context, orderID uuid.UUID, to string) (store.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (store.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, page, limit int) ([]store.Order, error)
	ListByStatus(ctx context.Context, statuses []string, page, limit int) ([]store.Order, error)
}
