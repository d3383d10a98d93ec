package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/confiance/investment-api/internal/config"
	"github.com/confiance/investment-api/internal/database"
	"github.com/confiance/investment-api/internal/investment"
	"github.com/confiance/investment-api/internal/recommendation"
	"github.com/confiance/investment-api/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// init configures the application logging based on environment settings
// In development mode, it enables pretty printing with timestamps
// Debug logging can be enabled via DEBUG environment variable
func init() {
	// Configure pretty logging for development
	if os.Getenv("ENV") != "production" {
		output := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		zlog.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	// Set global log level
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("DEBUG") == "true" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// main initializes and runs the investment API server with graceful shutdown
// support
func main() {
	cfg := config.Load()

	// Initialize database
	db, err := database.NewDatabase(cfg.DatabasePath)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to initialize database")
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := gin.Default()

	// Initialize services and handlers
	recommendationService := recommendation.NewService(db, cfg)
	recommendationHandlers := recommendation.NewGinHandlers(recommendationService, cfg)

	investmentService := investment.NewService(db, cfg)
	investmentHandlers := investment.NewGinHandlers(investmentService, cfg)

	// Setup middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.UserID())
	router.Use(middleware.RateLimit())

	// Setup API routes
	setupRoutes(router, recommendationHandlers, investmentHandlers)

	// Create server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown setup
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("listen")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info().Msg("Shutting down server...")

	// Give outstanding operations 5 seconds to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	zlog.Info().Msg("Server exiting")
}

// setupRoutes configures all API endpoints and their handlers
// Routes are grouped by resource: recommendations carry the full lifecycle
// and query surface, investments expose a minimal create/get/list.
func setupRoutes(
	router *gin.Engine,
	recommendationHandlers *recommendation.GinHandlers,
	investmentHandlers *investment.GinHandlers,
) {
	v1 := router.Group("/api/v1")
	{
		recommendations := v1.Group("/recommendations")
		{
			recommendations.POST("", recommendationHandlers.CreateHandler())
			recommendations.GET("", recommendationHandlers.ListHandler())
			recommendations.GET("/filter", recommendationHandlers.FilterHandler())
			recommendations.GET("/open", recommendationHandlers.OpenHandler())
			recommendations.GET("/date-range", recommendationHandlers.DateRangeHandler())
			recommendations.GET("/market/:market", recommendationHandlers.MarketHandler())
			recommendations.GET("/ticker/:symbol", recommendationHandlers.TickerHandler())
			recommendations.GET("/:id", recommendationHandlers.GetHandler())
			recommendations.PUT("/:id", recommendationHandlers.UpdateHandler())
			recommendations.DELETE("/:id", recommendationHandlers.DeleteHandler())
		}

		investments := v1.Group("/investments")
		{
			investments.POST("", investmentHandlers.CreateHandler())
			investments.GET("", investmentHandlers.ListHandler())
			investments.GET("/:id", investmentHandlers.GetHandler())
		}
	}
}
