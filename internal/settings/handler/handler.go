package handler

import (
	"encoding/json"
	"net/http"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/authz"
	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	settings SettingsService
	logger   *observability.Logger
}

func New(settingsService SettingsService, logger *observability.Logger) Handler {
	return Handler{settings: settingsService, logger: logger}
}

// HandleGetSettings returns the effective settings and the stored overrides
func (h *Handler) HandleGetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	effective, err := h.settings.Load(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	stored, err := h.settings.Stored(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"effective": effective, "stored": stored})
}

// HandleUpdateSetting stores the request body as the value of :key
func (h *Handler) HandleUpdateSetting(c *gin.Context) {
	caller, ok := authz.CallerFrom(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	var value json.RawMessage
	if err := c.ShouldBindJSON(&value); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	setting, err := h.settings.Update(c.Request.Context(), c.Param("key"), value, caller.UserID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

// HandleResetSetting drops the stored value of :key so the default applies
func (h *Handler) HandleResetSetting(c *gin.Context) {
	if err := h.settings.Reset(c.Request.Context(), c.Param("key")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
