package handler

import (
	"net/http"
	"strconv"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/authz"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/referral/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	referrals ReferralService
	logger    *observability.Logger
	baseURL   string
}

func New(referrals ReferralService, logger *observability.Logger, baseURL string) Handler {
	return Handler{
		referrals: referrals,
		logger:    logger,
		baseURL:   baseURL,
	}
}

// HandleListReferrals handles GET /api/profiles/me/referrals
func (h *Handler) HandleListReferrals(c *gin.Context) {
	caller, ok := authz.CallerFrom(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	response, err := h.referrals.ListReferrals(c.Request.Context(), caller.UserID, processor.ListReferralsRequest{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HandleGetReferralLink handles GET /api/profiles/me/referral-link
func (h *Handler) HandleGetReferralLink(c *gin.Context) {
	caller, ok := authz.CallerFrom(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	link, err := h.referrals.GetReferralLink(c.Request.Context(), caller.UserID, h.baseURL)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}
