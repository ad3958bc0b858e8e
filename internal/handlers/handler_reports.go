package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/dto"
	"github.com/birikimsoft/defter_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles the periodic tax report endpoints.
type reportHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func registerReportRoutes(rg *gin.RouterGroup, ps portssvc.PeriodSvcFacade) {
	h := &reportHandler{periodService: ps}

	reports := rg.Group("/reports")
	{
		reports.GET("/years", h.getYearRange)
		reports.GET("/:year", h.getYearCalculations)
		reports.GET("/:year/summary", h.getYearlySummary)
	}
}

// getYearRange lists every year that has invoices or general expenses.
func (h *reportHandler) getYearRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	years, err := h.periodService.YearRange(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute year range", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list report years"})
		return
	}
	c.JSON(http.StatusOK, dto.YearRangeResponse{Years: years})
}

// getYearCalculations returns the monthly, quarterly and yearly figures for
// one year.
func (h *reportHandler) getYearCalculations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := parseYearParam(c)
	if !ok {
		return
	}

	calc, err := h.periodService.CalculationsForYear(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to calculate report", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate report"})
		return
	}
	c.JSON(http.StatusOK, dto.ToYearCalculationsResponse(calc))
}

// getYearlySummary returns just the year's bottom line.
func (h *reportHandler) getYearlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := parseYearParam(c)
	if !ok {
		return
	}

	summary, err := h.periodService.YearlySummary(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to calculate summary", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate summary"})
		return
	}
	c.JSON(http.StatusOK, dto.ToYearlySummaryResponse(*summary))
}

func parseYearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1900 || year > 2200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return 0, false
	}
	return year, true
}
