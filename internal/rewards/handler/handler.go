package handler

import (
	"net/http"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/authz"
	"loyalty-server/internal/loyalty"
	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Handler struct {
	rewards RewardService
	logger  *observability.Logger
}

func New(rewards RewardService, logger *observability.Logger) Handler {
	return Handler{
		rewards: rewards,
		logger:  logger,
	}
}

// PreviewRequest represents the HTTP request for pricing a reward against a subtotal
type PreviewRequest struct {
	Subtotal decimal.Decimal `json:"subtotal"`
}

// HandleListAvailable lists a customer's redeemable rewards, most valuable first
func (h *Handler) HandleListAvailable(c *gin.Context) {
	customerID, ok := h.getCustomerID(c)
	if !ok {
		return
	}

	rewards, err := h.rewards.ListAvailable(c.Request.Context(), customerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// HandleListRewards lists every reward a customer earned, claimed or not
func (h *Handler) HandleListRewards(c *gin.Context) {
	customerID, ok := h.getCustomerID(c)
	if !ok {
		return
	}

	rewards, err := h.rewards.ListRewards(c.Request.Context(), customerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// HandleGetReward returns one reward to its owner or to staff
func (h *Handler) HandleGetReward(c *gin.Context) {
	caller, ok := h.getCaller(c)
	if !ok {
		return
	}
	rewardID, ok := h.getRewardID(c)
	if !ok {
		return
	}

	reward, err := h.rewards.GetReward(c.Request.Context(), rewardID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if !caller.CanActAs(reward.CustomerID) {
		// Indistinguishable from a missing reward.
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeRewardNotFound, "Reward not found"))
		return
	}
	c.JSON(http.StatusOK, reward)
}

// HandlePreview computes the discount a reward gives on a subtotal. Customers
// can only preview their own rewards.
func (h *Handler) HandlePreview(c *gin.Context) {
	caller, ok := h.getCaller(c)
	if !ok {
		return
	}
	rewardID, ok := h.getRewardID(c)
	if !ok {
		return
	}

	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	if !loyalty.StoresExactly(req.Subtotal) {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidSubtotal,
			"Subtotal must have at most 2 decimal places and not exceed "+loyalty.MaxAmount.StringFixed(2)))
		return
	}

	var owner *uuid.UUID
	if !caller.IsStaff() {
		owner = &caller.UserID
	}

	quote, err := h.rewards.PreviewDiscount(c.Request.Context(), rewardID, owner, req.Subtotal)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// HandleRedeem claims a reward outside of an order
func (h *Handler) HandleRedeem(c *gin.Context) {
	rewardID, ok := h.getRewardID(c)
	if !ok {
		return
	}

	reward, err := h.rewards.Redeem(c.Request.Context(), rewardID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reward)
}

func (h *Handler) getCaller(c *gin.Context) (authz.Caller, bool) {
	caller, ok := authz.CallerFrom(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return authz.Caller{}, false
	}
	return caller, true
}

// getCustomerID parses the customer path parameter and checks the caller may
// act for that customer
func (h *Handler) getCustomerID(c *gin.Context) (uuid.UUID, bool) {
	caller, ok := h.getCaller(c)
	if !ok {
		return uuid.UUID{}, false
	}
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid customer_id format"))
		return uuid.UUID{}, false
	}
	if !caller.CanActAs(customerID) {
		apierrors.RespondWithError(c, apierrors.Forbidden("You can only view your own rewards"))
		return uuid.UUID{}, false
	}
	return customerID, true
}

func (h *Handler) getRewardID(c *gin.Context) (uuid.UUID, bool) {
	rewardID, err := uuid.Parse(c.Param("reward_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid reward_id format"))
		return uuid.UUID{}, false
	}
	return rewardID, true
}
