package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"loyalty-server/internal/events"
	"loyalty-server/internal/loyalty"
	loyaltyProcessor "loyalty-server/internal/loyalty/processor"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrTableRequired          = errors.New("table number is required")
	ErrNoItems                = errors.New("order must contain at least one item")
	ErrInvalidItem            = errors.New("invalid order item")
	ErrRewardRequiresCustomer = errors.New("a reward can only be applied to a customer order")
	ErrInvalidTransition      = errors.New("invalid order status transition")
	ErrInvalidStatus          = errors.New("invalid order status")
)

type OrderProcessor struct {
	store    OrderStore
	visits   VisitRecorder
	quoter   DiscountQuoter
	settings SettingsLoader
	events   EventPublisher
	logger   *observability.Logger
	now      func() time.Time
}

func New(orderStore OrderStore, visits VisitRecorder, quoter DiscountQuoter, settingsLoader SettingsLoader, publisher EventPublisher, logger *observability.Logger) OrderProcessor {
	return OrderProcessor{
		store:    orderStore,
		visits:   visits,
		quoter:   quoter,
		settings: settingsLoader,
		events:   publisher,
		logger:   logger,
		now:      time.Now,
	}
}

// PlaceOrderRequest represents an order as submitted at the table
type PlaceOrderRequest struct {
	CustomerID  *uuid.UUID
	TableNumber string
	Items       []store.OrderItem
	RewardID    *uuid.UUID
}

// PlaceOrderResult is the persisted order and what it triggered
type PlaceOrderResult struct {
	Order store.Order `json:"order"`
	// RewardClaimed is false when the requested reward was claimed by a
	// concurrent order; the order is then charged in full.
	RewardClaimed bool                           `json:"reward_claimed"`
	Visit         *loyaltyProcessor.VisitOutcome `json:"-"`
}

// Subtotal sums price times quantity over items
func Subtotal(items []store.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// MaxQuantity bounds a single line so price times quantity stays in range
const MaxQuantity = 10000

func validateItems(items []store.OrderItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for i, item := range items {
		switch {
		case strings.TrimSpace(item.Name) == "":
			return fmt.Errorf("%w: item %d has no name", ErrInvalidItem, i+1)
		case item.Quantity < 1:
			return fmt.Errorf("%w: item %d quantity must be at least 1", ErrInvalidItem, i+1)
		case item.Quantity > MaxQuantity:
			return fmt.Errorf("%w: item %d quantity must be at most %d", ErrInvalidItem, i+1, MaxQuantity)
		case item.Price.IsNegative():
			return fmt.Errorf("%w: item %d price must not be negative", ErrInvalidItem, i+1)
		case !item.Price.Equal(item.Price.Round(2)):
			return fmt.Errorf("%w: item %d price has more than 2 decimal places", ErrInvalidItem, i+1)
		case item.Price.GreaterThan(loyalty.MaxAmount):
			return fmt.Errorf("%w: item %d price exceeds %s", ErrInvalidItem, i+1, loyalty.MaxAmount.StringFixed(2))
		}
	}
	if Subtotal(items).GreaterThan(loyalty.MaxAmount) {
		return fmt.Errorf("%w: order total exceeds %s", ErrInvalidItem, loyalty.MaxAmount.StringFixed(2))
	}
	return nil
}

// PlaceOrder prices and persists an order. The reward discount is computed
// before anything is written, so an inapplicable reward rejects the order.
// The visit cascade and the reward claim run in the order's transaction.
func (p *OrderProcessor) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (PlaceOrderResult, error) {
	table := strings.TrimSpace(req.TableNumber)
	if table == "" {
		return PlaceOrderResult{}, ErrTableRequired
	}
	if err := validateItems(req.Items); err != nil {
		return PlaceOrderResult{}, err
	}
	if req.RewardID != nil && req.CustomerID == nil {
		return PlaceOrderResult{}, ErrRewardRequiresCustomer
	}

	fields := []observability.Field{{Key: "table_number", Value: table}}
	if req.CustomerID != nil {
		fields = append(fields, observability.Field{Key: "customer_id", Value: req.CustomerID.String()})
	}
	if req.RewardID != nil {
		fields = append(fields, observability.Field{Key: "reward_id", Value: req.RewardID.String()})
	}
	ctx = observability.WithFields(ctx, fields...)

	subtotal := Subtotal(req.Items)
	discount := decimal.Zero
	if req.RewardID != nil {
		quote, err := p.quoter.PreviewDiscount(ctx, *req.RewardID, req.CustomerID, subtotal)
		if err != nil {
			return PlaceOrderResult{}, err
		}
		discount = quote.Discount
	}

	cfg, err := p.settings.Load(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to load settings", err)
		return PlaceOrderResult{}, err
	}

	var result PlaceOrderResult
	err = p.store.InTx(ctx, func(q store.LoyaltyQueries) error {
		order, err := q.CreateOrder(ctx, store.CreateOrderParams{
			CustomerID:     req.CustomerID,
			TableNumber:    table,
			Items:          store.OrderItems(req.Items),
			OriginalAmount: subtotal,
			DiscountAmount: discount,
			TotalAmount:    subtotal.Sub(discount),
			RewardID:       req.RewardID,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to create order", err)
			return err
		}
		ctx := observability.WithFields(ctx, observability.Field{Key: "order_id", Value: order.ID.String()})

		if req.CustomerID != nil {
			notes := fmt.Sprintf("Order at table %s (order %s)", table, order.ID)
			outcome, err := p.visits.RecordVisitTx(ctx, q, cfg, loyaltyProcessor.VisitInput{
				CustomerID: *req.CustomerID,
				OrderID:    &order.ID,
				Notes:      &notes,
			})
			if err != nil {
				return err
			}
			result.Visit = &outcome
		}

		if req.RewardID != nil {
			won, err := q.ClaimReward(ctx, *req.RewardID, &order.ID, p.now())
			if err != nil {
				p.logger.Error(ctx, "failed to claim reward", err)
				return err
			}
			if won {
				p.logger.Info(ctx, "reward claimed by order")
				result.RewardClaimed = true
			} else {
				p.logger.Info(ctx, "reward claim lost, charging full amount")
				order, err = q.ClearOrderDiscount(ctx, order.ID)
				if err != nil {
					p.logger.Error(ctx, "failed to clear order discount", err)
					return err
				}
			}
		}

		result.Order = order
		return nil
	})
	if err != nil {
		return PlaceOrderResult{}, err
	}

	evts := []events.Event{events.OrderCreated(result.Order)}
	if result.Visit != nil {
		evts = append(evts, result.Visit.Events()...)
	}
	if result.RewardClaimed {
		evts = append(evts, events.RewardClaimed(*req.RewardID, *req.CustomerID, &result.Order.ID))
	}
	p.events.Publish(ctx, evts...)

	return result, nil
}

// NextStatus returns the status an order moves to from status
func NextStatus(status string) (string, bool) {
	switch status {
	case store.OrderStatusPending:
		return store.OrderStatusPreparing, true
	case store.OrderStatusPreparing:
		return store.OrderStatusDelivered, true
	default:
		return "", false
	}
}

func validStatus(status string) bool {
	switch status {
	case store.OrderStatusPending, store.OrderStatusPreparing, store.OrderStatusDelivered:
		return true
	}
	return false
}

// AdvanceStatus moves an order one step forward. An empty to means the next
// step; any other target must be exactly the next step.
func (p *OrderProcessor) AdvanceStatus(ctx context.Context, orderID uuid.UUID, to string) (store.Order, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: orderID.String()})

	current, err := p.GetOrder(ctx, orderID)
	if err != nil {
		return store.Order{}, err
	}

	next, ok := NextStatus(current.Status)
	if !ok {
		return store.Order{}, ErrInvalidTransition
	}
	if to == "" {
		to = next
	}
	if !validStatus(to) {
		return store.Order{}, ErrInvalidStatus
	}
	if to != next {
		return store.Order{}, ErrInvalidTransition
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "from_status", Value: current.Status},
		observability.Field{Key: "to_status", Value: to},
	)

	order, err := p.store.UpdateOrderStatus(ctx, orderID, current.Status, to, p.now())
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			// Another update moved the order first.
			return store.Order{}, ErrInvalidTransition
		}
		p.logger.Error(ctx, "failed to update order status", err)
		return store.Order{}, err
	}

	p.logger.Info(ctx, "order status updated")
	p.events.Publish(ctx, events.OrderStatusChanged(order, current.Status))
	return order, nil
}

// GetOrder retrieves an order by id
func (p *OrderProcessor) GetOrder(ctx context.Context, orderID uuid.UUID) (store.Order, error) {
	order, err := p.store.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Order{}, ErrOrderNotFound
		}
		p.logger.Error(ctx, "failed to get order", err)
		return store.Order{}, err
	}
	return order, nil
}

func pageBounds(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return limit, (page - 1) * limit
}

// ListByCustomer returns a customer's orders, newest first
func (p *OrderProcessor) ListByCustomer(ctx context.Context, customerID uuid.UUID, page, limit int) ([]store.Order, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "customer_id", Value: customerID.String()})

	limit, offset := pageBounds(page, limit)
	orders, err := p.store.ListOrdersByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list customer orders", err)
		return nil, err
	}
	if orders == nil {
		orders = []store.Order{}
	}
	return orders, nil
}

// ListByStatus returns orders in any of statuses for the kitchen queue. No
// statuses means every order not yet delivered.
func (p *OrderProcessor) ListByStatus(ctx context.Context, statuses []string, page, limit int) ([]store.Order, error) {
	if len(statuses) == 0 {
		statuses = []string{store.OrderStatusPending, store.OrderStatusPreparing}
	}
	for _, s := range statuses {
		if !validStatus(s) {
			return nil, ErrInvalidStatus
		}
	}

	limit, offset := pageBounds(page, limit)
	orders, err := p.store.ListOrdersByStatus(ctx, statuses, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list orders by status", err)
		return nil, err
	}
	if orders == nil {
		orders = []store.Order{}
	}
	return orders, nil
}
