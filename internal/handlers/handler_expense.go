package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/dto"
	"github.com/birikimsoft/defter_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles the per-year general-expense and corporate-tax tables.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func registerExpenseRoutes(rg *gin.RouterGroup, es portssvc.ExpenseSvcFacade) {
	h := &expenseHandler{expenseService: es}

	expenses := rg.Group("/expenses")
	{
		expenses.GET("/:year", h.getYearlyExpenses)
		expenses.PUT("/:year", h.saveYearlyExpenses)
	}

	tax := rg.Group("/corporate-tax")
	{
		tax.GET("/:year", h.getCorporateTax)
		tax.PUT("/:year", h.saveCorporateTax)
	}
}

func (h *expenseHandler) getYearlyExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := parseYearParam(c)
	if !ok {
		return
	}

	expenses, err := h.expenseService.GetYearlyExpenses(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to load yearly expenses", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load expenses"})
		return
	}
	c.JSON(http.StatusOK, dto.ToYearlyExpensesResponse(expenses))
}

func (h *expenseHandler) saveYearlyExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := parseYearParam(c)
	if !ok {
		return
	}

	var req dto.YearlyAmountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveYearlyExpenses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expenses := domain.GeneralExpenses{Year: year, Months: req.Amounts()}
	if err := h.expenseService.SaveYearlyExpenses(c.Request.Context(), expenses); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save yearly expenses", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save expenses"})
		return
	}
	c.JSON(http.StatusOK, dto.ToYearlyExpensesResponse(&expenses))
}

func (h *expenseHandler) getCorporateTax(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := parseYearParam(c)
	if !ok {
		return
	}

	rates, err := h.expenseService.GetCorporateTax(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to load corporate tax", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load corporate tax"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCorporateTaxResponse(rates))
}

func (h *expenseHandler) saveCorporateTax(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := parseYearParam(c)
	if !ok {
		return
	}

	var req dto.YearlyAmountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveCorporateTax", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rates := domain.CorporateTaxRates{Year: year, Percents: req.Amounts()}
	if err := h.expenseService.SaveCorporateTax(c.Request.Context(), rates); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save corporate tax", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save corporate tax"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCorporateTaxResponse(&rates))
}
