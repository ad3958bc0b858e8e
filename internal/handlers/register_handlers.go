package handlers

import (
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/middleware"
	"github.com/birikimsoft/defter_backend/internal/notify"
	"github.com/birikimsoft/defter_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	notices *notify.Center,
) {
	registerCustomValidators()

	r.GET("/", getHome)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services, notices)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	notices *notify.Center,
) {
	rate, err := limiter.NewRateFromFormatted(cfg.APIRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("120-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	v1 := r.Group("/api/v1", middleware.RateLimit(ipLimiter))

	registerRateRoutes(v1, services.Rates, services.BulkRates, services.Converter)
	registerNotificationRoutes(v1, notices)
	registerReportRoutes(v1, services.Period)
	registerInvoiceRoutes(v1, services.Invoice)
	registerExpenseRoutes(v1, services.Expense)
	registerSettingsRoutes(v1, services.Settings)
	registerHistoryRoutes(v1, services.History)
}
