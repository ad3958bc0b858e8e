package handlers

import (
	"net/http"
	"time"

	"log/slog"

	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/dto"
	"github.com/birikimsoft/defter_backend/internal/middleware"
	"github.com/birikimsoft/defter_backend/internal/utils/dateutil"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to exchange rates.
type rateHandler struct {
	rateService portssvc.RateResolverSvcFacade
	bulkService portssvc.BulkRateSvcFacade
	converter   portssvc.ConverterSvcFacade
}

func newRateHandler(rs portssvc.RateResolverSvcFacade, bs portssvc.BulkRateSvcFacade, cs portssvc.ConverterSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs, bulkService: bs, converter: cs}
}

// registerRateRoutes registers routes related to exchange rates and conversion.
func registerRateRoutes(rg *gin.RouterGroup, rs portssvc.RateResolverSvcFacade, bs portssvc.BulkRateSvcFacade, cs portssvc.ConverterSvcFacade) {
	h := newRateHandler(rs, bs, cs)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getCurrentRates)
		rates.GET("/historical/:date", h.getHistoricalRate)
		rates.POST("/bulk", h.bulkRates)
	}
	rg.GET("/convert", h.convert)
}

// getCurrentRates returns the current snapshot. ?force=true bypasses the
// session cache and re-resolves the tier chain.
func (h *rateHandler) getCurrentRates(c *gin.Context) {
	force := c.Query("force") == "true"
	snap := h.rateService.Current(c.Request.Context(), force)
	c.JSON(http.StatusOK, dto.ToRateSnapshotResponse(snap))
}

// getHistoricalRate returns the banknote selling prices for one date
// (DD.MM.YYYY), walking back to the nearest business day.
func (h *rateHandler) getHistoricalRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date := dateutil.ParseDisplayDate(c.Param("date"))
	if date == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be DD.MM.YYYY"})
		return
	}

	pair := h.rateService.FetchHistorical(c.Request.Context(), *date)
	if pair == nil {
		logger.Warn("No historical rate found", slog.String("date", c.Param("date")))
		c.JSON(http.StatusNotFound, gin.H{"error": "No rates available for date"})
		return
	}

	c.JSON(http.StatusOK, dto.RatePairResponse{USD: pair.USD, EUR: pair.EUR})
}

// bulkRates resolves selling prices for many dates at once. Dates that
// cannot be resolved are absent from the response map.
func (h *rateHandler) bulkRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bulk rates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var dates []time.Time
	for _, raw := range req.Dates {
		if d := dateutil.ParseDisplayDate(raw); d != nil {
			dates = append(dates, *d)
		}
	}

	resolved := h.bulkService.ResolveMany(c.Request.Context(), dates)

	resp := dto.BulkRatesResponse{Rates: make(map[string]dto.RatePairResponse, len(resolved))}
	for iso, pair := range resolved {
		resp.Rates[iso] = dto.RatePairResponse{USD: pair.USD, EUR: pair.EUR}
	}
	c.JSON(http.StatusOK, resp)
}

// convert converts an amount between TRY and the foreign currencies using
// the current snapshot.
func (h *rateHandler) convert(c *gin.Context) {
	var query struct {
		Amount float64 `form:"amount" binding:"required"`
		From   string  `form:"from"`
		To     string  `form:"to"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	converted := h.converter.Convert(c.Request.Context(), query.Amount, query.From, query.To)
	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:    query.Amount,
		From:      query.From,
		To:        query.To,
		Converted: converted,
	})
}
