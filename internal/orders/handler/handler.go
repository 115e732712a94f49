package handler

import (
	"net/http"
	"strconv"
	"strings"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/authz"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/orders/processor"
	"loyalty-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Handler struct {
	orders OrderService
	logger *observability.Logger
}

func New(orders OrderService, logger *observability.Logger) Handler {
	return Handler{orders: orders, logger: logger}
}

// OrderItemRequest is one line of an order
type OrderItemRequest struct {
	Name     string          `json:"name" binding:"required,max=255"`
	Quantity int             `json:"quantity" binding:"required,min=1"`
	Price    decimal.Decimal `json:"price"`
}

// PlaceOrderRequest represents the HTTP request for placing an order
type PlaceOrderRequest struct {
	CustomerID  *uuid.UUID         `json:"customer_id,omitempty"`
	TableNumber string             `json:"table_number" binding:"required,max=32"`
	Items       []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	RewardID    *uuid.UUID         `json:"reward_id,omitempty"`
}

// UpdateStatusRequest represents the HTTP request for advancing an order.
// An empty status moves the order to its next step.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"omitempty,oneof=pending preparing delivered"`
}

// VisitSummary is the loyalty effect of an order placed for a customer
type VisitSummary struct {
	TotalVisits    int            `json:"total_visits"`
	CurrentTier    string         `json:"current_tier"`
	TierChanged    bool           `json:"tier_changed"`
	RewardsGranted []store.Reward `json:"rewards_granted"`
}

// PlaceOrderResponse is the stored order and what it triggered
type PlaceOrderResponse struct {
	Order         store.Order   `json:"order"`
	RewardClaimed bool          `json:"reward_claimed"`
	Visit         *VisitSummary `json:"visit,omitempty"`
}

// HandlePlaceOrder places an order. Customers order for themselves; staff
// may order for any customer or for a walk-in without one.
func (h *Handler) HandlePlaceOrder(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.getCaller(c)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	customerID := req.CustomerID
	if !caller.IsStaff() {
		if customerID == nil {
			customerID = &caller.UserID
		}
		if *customerID != caller.UserID {
			apierrors.RespondWithError(c, apierrors.Forbidden("Customers can only place orders for themselves"))
			return
		}
	}

	items := make([]store.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, store.OrderItem{Name: item.Name, Quantity: item.Quantity, Price: item.Price})
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "placed_by", Value: caller.UserID.String()})

	result, err := h.orders.PlaceOrder(ctx, processor.PlaceOrderRequest{
		CustomerID:  customerID,
		TableNumber: req.TableNumber,
		Items:       items,
		RewardID:    req.RewardID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	resp := PlaceOrderResponse{Order: result.Order, RewardClaimed: result.RewardClaimed}
	if result.Visit != nil {
		rewards := result.Visit.Rewards
		if rewards == nil {
			rewards = []store.Reward{}
		}
		resp.Visit = &VisitSummary{
			TotalVisits:    result.Visit.Stats.TotalVisits,
			CurrentTier:    result.Visit.Stats.CurrentTier,
			TierChanged:    result.Visit.TierChanged,
			RewardsGranted: rewards,
		}
	}
	c.JSON(http.StatusCreated, resp)
}

// HandleUpdateStatus advances an order through pending, preparing, delivered
func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	orderID, ok := h.getOrderID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.RespondWithValidationError(c, err)
			return
		}
	}

	order, err := h.orders.AdvanceStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// HandleGetOrder returns an order to its customer or to staff
func (h *Handler) HandleGetOrder(c *gin.Context) {
	caller, ok := h.getCaller(c)
	if !ok {
		return
	}
	orderID, ok := h.getOrderID(c)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if !caller.IsStaff() && (order.CustomerID == nil || *order.CustomerID != caller.UserID) {
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeOrderNotFound, "Order not found"))
		return
	}
	c.JSON(http.StatusOK, order)
}

// HandleListCustomerOrders lists a customer's order history
func (h *Handler) HandleListCustomerOrders(c *gin.Context) {
	caller, ok := h.getCaller(c)
	if !ok {
		return
	}
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid customer_id format"))
		return
	}
	if !caller.CanActAs(customerID) {
		apierrors.RespondWithError(c, apierrors.Forbidden("You can only view your own orders"))
		return
	}

	page, limit := pageParams(c)
	orders, err := h.orders.ListByCustomer(c.Request.Context(), customerID, page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// HandleListOrders is the kitchen queue. ?status= takes a comma-separated
// list and defaults to every order not yet delivered.
func (h *Handler) HandleListOrders(c *gin.Context) {
	var statuses []string
	for _, raw := range c.QueryArray("status") {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}

	page, limit := pageParams(c)
	orders, err := h.orders.ListByStatus(c.Request.Context(), statuses, page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}

func (h *Handler) getCaller(c *gin.Context) (authz.Caller, bool) {
	caller, ok := authz.CallerFrom(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return authz.Caller{}, false
	}
	return caller, true
}

func (h *Handler) getOrderID(c *gin.Context) (uuid.UUID, bool) {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid order_id format"))
		return uuid.UUID{}, false
	}
	return orderID, true
}
