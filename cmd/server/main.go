package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/light-bringer/pricing-service/internal/services"
)

// Config holds server configuration loaded from environment variables.
type Config struct {
	SpannerDB string
	HTTPPort  string
	CacheTTL  time.Duration
}

func loadConfig() Config {
	ttlSeconds := 30
	if raw := os.Getenv("PRICING_CACHE_TTL_SECONDS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			ttlSeconds = parsed
		}
	}

	return Config{
		SpannerDB: getEnvOrDefault("SPANNER_DB", "projects/test-project/instances/dev-instance/databases/pricing-db"),
		HTTPPort:  getEnvOrDefault("HTTP_PORT", "8080"),
		CacheTTL:  time.Duration(ttlSeconds) * time.Second,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "pricing").Logger()

	if err := run(logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to run server")
	}
}

func run(logger zerolog.Logger) error {
	ctx := context.Background()
	config := loadConfig()

	logger.Info().
		Str("spanner_db", config.SpannerDB).
		Str("http_port", config.HTTPPort).
		Dur("cache_ttl", config.CacheTTL).
		Msg("starting pricing service")

	serviceOpts, err := services.NewServiceOptions(ctx, config.SpannerDB, config.CacheTTL, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	serviceOpts.PricingHandler.Register(e)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	go func() {
		if err := e.Start(":" + config.HTTPPort); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server stopped")
		}
	}()
	logger.Info().Str("port", config.HTTPPort).Msg("http server listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
