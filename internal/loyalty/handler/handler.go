package handler

import (
	"net/http"
	"strconv"
	"strings"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/authz"
	loyaltyProcessor "loyalty-server/internal/loyalty/processor"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	visits VisitService
	logger *observability.Logger
}

func New(visits VisitService, logger *observability.Logger) Handler {
	return Handler{visits: visits, logger: logger}
}

// RecordVisitRequest represents a visit logged by staff at the counter
type RecordVisitRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Notes      *string   `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// RecordVisitResponse summarizes what the visit changed
type RecordVisitResponse struct {
	Visit          store.Visit    `json:"visit"`
	TotalVisits    int            `json:"total_visits"`
	CurrentTier    string         `json:"current_tier"`
	PreviousTier   string         `json:"previous_tier"`
	TierChanged    bool           `json:"tier_changed"`
	RewardsGranted []store.Reward `json:"rewards_granted"`
}

// HandleRecordVisit logs a visit on behalf of the calling staff member
func (h *Handler) HandleRecordVisit(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := authz.CallerFrom(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	var req RecordVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	if req.Notes != nil && strings.TrimSpace(*req.Notes) == "" {
		req.Notes = nil
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "staff_id", Value: caller.UserID.String()})

	staffID := caller.UserID
	outcome, err := h.visits.RecordVisit(ctx, loyaltyProcessor.VisitInput{
		CustomerID: req.CustomerID,
		StaffID:    &staffID,
		Notes:      req.Notes,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	rewards := outcome.Rewards
	if rewards == nil {
		rewards = []store.Reward{}
	}
	c.JSON(http.StatusCreated, RecordVisitResponse{
		Visit:          outcome.Visit,
		TotalVisits:    outcome.Stats.TotalVisits,
		CurrentTier:    outcome.Stats.CurrentTier,
		PreviousTier:   string(outcome.PreviousTier),
		TierChanged:    outcome.TierChanged,
		RewardsGranted: rewards,
	})
}

// HandleListVisits returns a customer's visit history
func (h *Handler) HandleListVisits(c *gin.Context) {
	caller, ok := authz.CallerFrom(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid customer_id format"))
		return
	}
	if !caller.CanActAs(customerID) {
		apierrors.RespondWithError(c, apierrors.Forbidden("You can only view your own visits"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	visits, err := h.visits.ListVisits(c.Request.Context(), customerID, limit, (page-1)*limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if visits == nil {
		visits = []store.Visit{}
	}
	c.JSON(http.StatusOK, gin.H{"visits": visits})
}

// HandleEvaluateMilestone re-runs the milestone step for a customer's current
// visit count. Granting is idempotent.
func (h *Handler) HandleEvaluateMilestone(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid customer_id format"))
		return
	}

	reward, err := h.visits.EvaluateMilestone(c.Request.Context(), customerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"granted": reward != nil, "reward": reward})
}
