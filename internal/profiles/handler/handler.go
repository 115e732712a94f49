package handler

import (
	"net/http"
	"strconv"
	"time"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/authz"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/profiles/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type Handler struct {
	profiles ProfileService
	logger   *observability.Logger
}

func New(profiles ProfileService, logger *observability.Logger) Handler {
	return Handler{profiles: profiles, logger: logger}
}

// CreateProfileRequest represents the HTTP request sent right after signup
type CreateProfileRequest struct {
	Email        string  `json:"email" binding:"omitempty,email"`
	FullName     *string `json:"full_name,omitempty" binding:"omitempty,max=255"`
	Phone        *string `json:"phone,omitempty" binding:"omitempty,max=32"`
	DateOfBirth  *string `json:"date_of_birth,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ReferralCode *string `json:"referral_code,omitempty"`
}

// UpdateProfileRequest represents the HTTP request for editing contact details
type UpdateProfileRequest struct {
	FullName    *string `json:"full_name,omitempty" binding:"omitempty,max=255"`
	Phone       *string `json:"phone,omitempty" binding:"omitempty,max=32"`
	DateOfBirth *string `json:"date_of_birth,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// RoleRequest represents the HTTP request for granting a role
type RoleRequest struct {
	Role string `json:"role" binding:"required,oneof=staff admin"`
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	// Already checked by the datetime binding.
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

// HandleCreateProfile creates the caller's profile. The email defaults to
// the one in the token.
func (h *Handler) HandleCreateProfile(c *gin.Context) {
	caller, ok := h.getCaller(c)
	if !ok {
		return
	}

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	email := req.Email
	if email == "" {
		email = caller.Email
	}

	profile, err := h.profiles.CreateProfile(c.Request.Context(), processor.CreateProfileRequest{
		UserID:       caller.UserID,
		Email:        email,
		FullName:     req.FullName,
		Phone:        req.Phone,
		DateOfBirth:  parseDate(req.DateOfBirth),
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// HandleGetMe returns the caller's profile
func (h *Handler) HandleGetMe(c *gin.Context) {
	caller, ok := h.getCaller(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), caller.UserID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// HandleUpdateMe edits the caller's contact details
func (h *Handler) HandleUpdateMe(c *gin.Context) {
	caller, ok := h.getCaller(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), caller.UserID, processor.UpdateProfileRequest{
		FullName:    req.FullName,
		Phone:       req.Phone,
		DateOfBirth: parseDate(req.DateOfBirth),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// HandleGetMyStats returns the caller's visit count and tier progress
func (h *Handler) HandleGetMyStats(c *gin.Context) {
	caller, ok := h.getCaller(c)
	if !ok {
		return
	}
	h.respondStats(c, caller.UserID)
}

// HandleGetCustomerStats returns a customer's progress. Customers may only
// read their own.
func (h *Handler) HandleGetCustomerStats(c *gin.Context) {
	caller, ok := h.getCaller(c)
	if !ok {
		return
	}
	customerID, ok := h.getUUIDParam(c, "customer_id")
	if !ok {
		return
	}
	if !caller.CanActAs(customerID) {
		apierrors.RespondWithError(c, apierrors.Forbidden("You can only view your own stats"))
		return
	}
	h.respondStats(c, customerID)
}

func (h *Handler) respondStats(c *gin.Context, customerID uuid.UUID) {
	stats, err := h.profiles.GetProfileStats(c.Request.Context(), customerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// HandleListProfiles lists profiles for staff lookups
func (h *Handler) HandleListProfiles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	profiles, err := h.profiles.ListProfiles(c.Request.Context(), page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// HandleAddRole grants staff or admin to a profile
func (h *Handler) HandleAddRole(c *gin.Context) {
	caller, ok := h.getCaller(c)
	if !ok {
		return
	}
	profileID, ok := h.getUUIDParam(c, "profile_id")
	if !ok {
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	profile, err := h.profiles.AddRole(c.Request.Context(), profileID, req.Role, caller.UserID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// HandleRemoveRole revokes staff or admin from a profile
func (h *Handler) HandleRemoveRole(c *gin.Context) {
	caller, ok := h.getCaller(c)
	if !ok {
		return
	}
	profileID, ok := h.getUUIDParam(c, "profile_id")
	if !ok {
		return
	}
	profile, err := h.profiles.RemoveRole(c.Request.Context(), profileID, c.Param("role"), caller.UserID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) getCaller(c *gin.Context) (authz.Caller, bool) {
	caller, ok := authz.CallerFrom(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return authz.Caller{}, false
	}
	return caller, true
}

func (h *Handler) getUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid "+name+" format"))
		return uuid.UUID{}, false
	}
	return id, true
}
