package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/dto"
	"github.com/birikimsoft/defter_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// historyHandler serves the operation log.
type historyHandler struct {
	historyService portssvc.HistorySvcFacade
}

func registerHistoryRoutes(rg *gin.RouterGroup, hs portssvc.HistorySvcFacade) {
	h := &historyHandler{historyService: hs}

	history := rg.Group("/history")
	{
		history.GET("", h.recentHistory)
		history.GET("/range", h.historyByRange)
		history.DELETE("", h.purgeHistory)
	}
}

// recentHistory returns the newest log entries, ?limit caps the count.
func (h *historyHandler) recentHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	records, err := h.historyService.RecentHistory(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to load history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, dto.ToHistoryResponse(records))
}

// historyByRange returns entries between ?from and ?to (DD.MM.YYYY, inclusive).
func (h *historyHandler) historyByRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.HistoryRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be DD.MM.YYYY dates"})
		return
	}

	records, err := h.historyService.HistoryByDateRange(c.Request.Context(), req.From, req.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to query history range", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query history"})
		return
	}
	c.JSON(http.StatusOK, dto.ToHistoryResponse(records))
}

// purgeHistory deletes entries older than ?days, 90 when omitted.
func (h *historyHandler) purgeHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	days, err := strconv.Atoi(c.DefaultQuery("days", "90"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
		return
	}

	deleted, err := h.historyService.PurgeHistory(c.Request.Context(), days)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to purge history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purge history"})
		return
	}
	c.JSON(http.StatusOK, dto.PurgeHistoryResponse{Deleted: deleted})
}
