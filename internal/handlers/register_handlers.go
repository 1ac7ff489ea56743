package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	docs "github.com/stitchworks/trim_inventory_app/cmd/docs"
	portssvc "github.com/stitchworks/trim_inventory_app/internal/core/ports/services"
	"github.com/stitchworks/trim_inventory_app/internal/middleware"
	"github.com/stitchworks/trim_inventory_app/pkg/config"
)

// RegisterRoutes wires every HTTP route onto the engine: the public health
// and login endpoints, the token-protected /api group, and (outside
// production) the swagger UI.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", healthCheck)

	registerAuthRoutes(r, cfg)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		registerMaterialRoutes(api, services.Material, services.Ledger)
		registerTransactionRoutes(api, services.Ledger)
		registerStatsRoutes(api, services.Stats)
	}

	if !cfg.IsProduction {
		setupSwaggerRoutes(r)
	}
}

// registerAuthRoutes mounts the login endpoint with a per-IP rate limit so
// the shared passcode cannot be brute-forced.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config) {
	rate := limiter.Rate{Period: time.Minute, Limit: 5}
	loginLimiter := limiter.New(memory.NewStore(), rate)

	h := newAuthHandler(cfg)
	r.POST("/api/auth/login", middleware.RateLimit(loginLimiter), h.login)
}

func setupSwaggerRoutes(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck godoc
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
