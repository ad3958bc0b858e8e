package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/dto"
	"github.com/birikimsoft/defter_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles the key-value settings endpoints.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func registerSettingsRoutes(rg *gin.RouterGroup, ss portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settingsService: ss}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.saveSetting)
	}
}

// getSettings returns every stored setting plus the effective corporate-tax
// default.
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.AllSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, dto.SettingsResponse{
		Settings:            settings,
		CorporateTaxDefault: h.settingsService.CorporateTaxDefault(c.Request.Context()),
	})
}

func (h *settingsHandler) saveSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveSetting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.settingsService.SaveSetting(c.Request.Context(), req.Key, req.Value); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save setting", slog.String("key", req.Key), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting"})
		return
	}
	c.Status(http.StatusNoContent)
}
