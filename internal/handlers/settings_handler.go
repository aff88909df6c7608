package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneta/internal/errors"
	"moneta/internal/money"
	"moneta/internal/services"
)

// SettingsHandler handles per-user settings requests.
type SettingsHandler struct {
	settingsService services.SettingsServicer
	auditService    services.AuditServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer, auditService services.AuditServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, auditService: auditService}
}

// UpdateSettingsRequest represents the partial settings update payload.
type UpdateSettingsRequest struct {
	Currency             *string `json:"currency" binding:"omitempty,iso4217"`
	Language             *string `json:"language" binding:"omitempty,min=2,max=10"`
	Theme                *string `json:"theme" binding:"omitempty,theme"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
}

// GetSettings returns the user's settings, falling back to defaults when the
// user has never customized anything.
// @Summary     Get settings
// @Description Get the authenticated user's settings
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.UserSettings "User settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.settingsService.GetSettings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"settings":        settings,
		"currency_symbol": money.Symbol(settings.Currency),
	})
}

// UpdateSettings applies a partial settings update.
// @Summary     Update settings
// @Description Update the authenticated user's settings; omitted fields keep their values
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingsRequest true "Updated settings fields"
// @Success     200 {object} models.UserSettings "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.settingsService.UpdateSettings(userID, services.SettingsUpdate{
		Currency:             req.Currency,
		Language:             req.Language,
		Theme:                req.Theme,
		NotificationsEnabled: req.NotificationsEnabled,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SETTINGS", "user_settings", settings.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{
		"settings":        settings,
		"currency_symbol": money.Symbol(settings.Currency),
	})
}
