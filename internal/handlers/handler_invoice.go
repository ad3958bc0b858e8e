package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	portsrepo "github.com/birikimsoft/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/dto"
	"github.com/birikimsoft/defter_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests for both invoice partitions, keyed by
// the :kind path segment (outgoing | incoming).
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func registerInvoiceRoutes(rg *gin.RouterGroup, is portssvc.InvoiceSvcFacade) {
	h := &invoiceHandler{invoiceService: is}

	invoices := rg.Group("/invoices/:kind")
	{
		invoices.GET("", h.listInvoices)
		invoices.POST("", h.createInvoice)
		invoices.GET("/count", h.countInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
		invoices.POST("/bulk-delete", h.deleteInvoices)
	}
}

func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := domain.InvoiceKind(c.Param("kind"))

	opts := portsrepo.InvoiceListOptions{OrderBy: c.Query("orderBy")}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "0")); err == nil {
		opts.Limit = limit
	}
	if offset, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil {
		opts.Offset = offset
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), kind, opts)
	if err != nil {
		respondInvoiceError(c, logger, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := domain.InvoiceKind(c.Param("kind"))

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	inv, err := h.invoiceService.GetInvoice(c.Request.Context(), kind, id)
	if err != nil {
		respondInvoiceError(c, logger, err, "Failed to get invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

func (h *invoiceHandler) countInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := domain.InvoiceKind(c.Param("kind"))

	count, err := h.invoiceService.CountInvoices(c.Request.Context(), kind)
	if err != nil {
		respondInvoiceError(c, logger, err, "Failed to count invoices")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := domain.InvoiceKind(c.Param("kind"))

	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	inv, err := h.invoiceService.CreateInvoice(c.Request.Context(), kind, req)
	if err != nil {
		respondInvoiceError(c, logger, err, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := domain.InvoiceKind(c.Param("kind"))

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	inv, err := h.invoiceService.UpdateInvoice(c.Request.Context(), kind, id, req)
	if err != nil {
		respondInvoiceError(c, logger, err, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := domain.InvoiceKind(c.Param("kind"))

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), kind, id); err != nil {
		respondInvoiceError(c, logger, err, "Failed to delete invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *invoiceHandler) deleteInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := domain.InvoiceKind(c.Param("kind"))

	var req dto.DeleteInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DeleteInvoices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	deleted, err := h.invoiceService.DeleteInvoices(c.Request.Context(), kind, req.IDs)
	if err != nil {
		respondInvoiceError(c, logger, err, "Failed to delete invoices")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID"})
		return 0, false
	}
	return id, true
}

func respondInvoiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
