package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wealthview/internal/config"
	delivery "wealthview/internal/delivery/http"
	"wealthview/internal/dto"
	"wealthview/internal/notifier"
	"wealthview/internal/repository"
	"wealthview/internal/service"
	"wealthview/pkg/logger"
	redisPkg "wealthview/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the wealthview API server",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting wealthview", logger.StringField("env", cfg.App.Env))

	// Profile storage: a single JSON blob, in Redis when configured and a
	// local file otherwise.
	var profileRepo repository.ProfileRepository
	if cfg.Redis.Enabled {
		redisClient, err := redisPkg.NewClient(redisPkg.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
		profileRepo = repository.NewRedisProfileRepository(redisClient, cfg.Profile.RedisKey)
	} else {
		profileRepo = repository.NewFileProfileRepository(cfg.Profile.FilePath)
	}

	advisories := notifier.Notifier(notifier.NewLogNotifier(appLogger))
	if cfg.Telegram.Enabled {
		telegramNotifier, err := notifier.NewTelegramNotifier(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
		advisories = notifier.NewMultiNotifier(advisories, telegramNotifier)
	}

	avRepo := repository.NewAlphaVantageRepository(cfg, appLogger)

	synthesizer := service.NewSynthesizer()
	searchSvc := service.NewSearchService(avRepo, advisories, appLogger)
	quoteSvc := service.NewQuoteService(synthesizer, avRepo, advisories, appLogger)
	profileSvc := service.NewProfileService(profileRepo, appLogger)
	portfolioSvc := service.NewPortfolioService(quoteSvc, appLogger)
	insightsSvc := service.NewInsightsService(profileSvc, appLogger)
	marketSvc := service.NewMarketService(quoteSvc, appLogger)

	refreshInterval, err := time.ParseDuration(cfg.Watcher.RefreshInterval)
	if err != nil {
		appLogger.Fatal("Invalid watcher refresh interval", logger.ErrorField(err))
	}
	watcher := service.NewWatcher(quoteSvc, refreshInterval, appLogger)

	if err := marketSvc.Start(ctx, cfg.Market.RefreshSchedule); err != nil {
		appLogger.Fatal("Failed to start market refresh", logger.ErrorField(err))
	}
	defer marketSvc.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})

	apiV1 := e.Group("/api/v1")

	stockHandler := delivery.NewStockHandler(searchSvc, quoteSvc, watcher, appLogger)
	stockHandler.RegisterRoutes(apiV1.Group("/stocks"))

	profileHandler := delivery.NewProfileHandler(profileSvc, appLogger)
	profileHandler.RegisterRoutes(apiV1.Group("/profile"))

	dashboardHandler := delivery.NewDashboardHandler(portfolioSvc, insightsSvc, marketSvc, appLogger)
	dashboardHandler.RegisterRoutes(apiV1)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.StringField("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "wealthview",
		Short: "A CLI for the wealthview dashboard API",
	}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing wealthview CLI: %s\n", err)
		os.Exit(1)
	}
}
