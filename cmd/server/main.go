package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RafaLima14028/CoinFlow/internal/adapter/awesomeapi"
	"github.com/RafaLima14028/CoinFlow/internal/adapter/chartjs"
	httpRouter "github.com/RafaLima14028/CoinFlow/internal/adapter/http"
	"github.com/RafaLima14028/CoinFlow/internal/adapter/prefs"
	"github.com/RafaLima14028/CoinFlow/internal/config"
	"github.com/RafaLima14028/CoinFlow/internal/domain/model"
	"github.com/RafaLima14028/CoinFlow/internal/metrics"
	"github.com/RafaLima14028/CoinFlow/internal/service"
	"github.com/RafaLima14028/CoinFlow/pkg/logger"
)

func main() {
	log := logger.NewLogger(os.Getenv("LOG_LEVEL"))
	log.Info("Starting CoinFlow service")

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appMetrics := metrics.NewMetrics()

	store, err := prefs.NewSQLiteStore(cfg.Preferences.DBPath, log)
	if err != nil {
		log.Error("Failed to open preference store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	rateClient := awesomeapi.NewClient(cfg.RatesAPI.BaseURL, cfg.RatesAPITimeout, log)
	chartRenderer := chartjs.NewRenderer()

	converter := service.NewConversionService(rateClient, log, appMetrics)
	history := service.NewHistoryService(rateClient, chartRenderer, log, appMetrics)
	catalog := service.NewCatalogService(rateClient, log, appMetrics)
	preferences := service.NewPreferencesService(store, model.Theme(cfg.Preferences.DefaultTheme), log, appMetrics)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	preferences.Load(startupCtx)
	if err := catalog.Populate(startupCtx); err != nil {
		// The currency selectors stay empty until a later request
		// repopulates; the widget surfaces the error in its result region.
		log.Error("Catalog population failed at startup", "error", err)
	}
	cancelStartup()

	handler := httpRouter.NewHandler(converter, history, catalog, preferences, cfg, log)
	router := httpRouter.NewRouter(handler, log, appMetrics)
	routes := router.SetupRoutes()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      routes,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
