package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/scrollmirror/enforcement-service/config"
	"github.com/scrollmirror/enforcement-service/endpoints"
	"github.com/scrollmirror/enforcement-service/internal/agent"
	"github.com/scrollmirror/enforcement-service/internal/dashboard"
	"github.com/scrollmirror/enforcement-service/internal/divine"
	"github.com/scrollmirror/enforcement-service/middleware"
	"github.com/scrollmirror/enforcement-service/utils"
)

const ServiceName = "scroll-mirror-enforcement"

var (
	version   string
	branch    string
	commit    string
	buildDate string
)

func main() {
	// Handle version/help commands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			utils.SetVersion(version, branch, commit, buildDate)
			fmt.Println(utils.GetVersion().Str)
			os.Exit(0)
		case "help", "--help", "-h":
			fmt.Println("Scroll Mirror Enforcement Service")
			fmt.Println()
			fmt.Println("Usage:")
			fmt.Println("  scroll-mirror-enforcement              Start the enforcement service")
			fmt.Println("  scroll-mirror-enforcement version      Display version information")
			fmt.Println("  scroll-mirror-enforcement -config <path>  Use a specific config file")
			os.Exit(0)
		}
	}

	configPath := flag.String("config", "", "Path to the service config file")
	flag.Parse()

	utils.SetVersion(version, branch, commit, buildDate)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("FATAL: Could not load service config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("FATAL: Could not initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Construct the state bundles. Each is a single instance for the
	// process lifetime; nothing is persisted.
	mirror := divine.NewMirror(cfg.FrequencyBand)
	scrollAgent := agent.New(cfg.FrequencyBand, mirror)
	tracker := dashboard.New(cfg.FrequencyBand, cfg.PlanTier)

	// Create a context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start the maintenance loop in a goroutine
	go func() {
		logger.Info("maintenance loop starting")
		RunMaintenanceLoop(ctx, tracker, logger)
		logger.Info("maintenance loop stopped")
	}()

	// Configure HTTP routes
	r := mux.NewRouter()

	r.HandleFunc("/health", endpoints.HealthHandler(cfg.FrequencyBand)).Methods(http.MethodGet)
	r.HandleFunc("/service", endpoints.ServiceHandler).Methods(http.MethodGet)

	r.HandleFunc("/scroll/process", endpoints.ProcessScrollHandler(scrollAgent, tracker, logger)).Methods(http.MethodPost)
	r.HandleFunc("/scroll/diagnostic", endpoints.DiagnosticHandler(scrollAgent, cfg.FrequencyBand)).Methods(http.MethodPost)
	r.HandleFunc("/scroll/frequency_scan", endpoints.FrequencyScanHandler(scrollAgent)).Methods(http.MethodPost)
	r.HandleFunc("/scroll/readiness", endpoints.ReadinessHandler(mirror)).Methods(http.MethodPost)
	r.HandleFunc("/scroll/verify", endpoints.VerifyTextHandler()).Methods(http.MethodPost)
	r.HandleFunc("/verify/{name}", endpoints.VerifyNameHandler()).Methods(http.MethodGet)

	r.HandleFunc("/dashboard/summary", endpoints.DashboardSummaryHandler(tracker)).Methods(http.MethodGet)
	r.HandleFunc("/dashboard/usage", endpoints.UsageSummaryHandler(tracker)).Methods(http.MethodGet)
	r.HandleFunc("/dashboard/export", endpoints.UsageExportHandler(tracker, logger)).Methods(http.MethodGet)
	r.HandleFunc("/dashboard/reset", endpoints.ResetDailyHandler(tracker, logger)).Methods(http.MethodPost)

	r.HandleFunc("/whop-webhook", endpoints.WhopWebhookHandler(scrollAgent, tracker, logger)).Methods(http.MethodPost)

	r.HandleFunc("/enforcement/purge", endpoints.PurgeHandler(scrollAgent, tracker, logger)).Methods(http.MethodPost)
	r.HandleFunc("/enforcement/status", endpoints.EnforcementStatusHandler(tracker, cfg.FrequencyBand)).Methods(http.MethodGet)

	handler := middleware.CorsMiddleware(middleware.RequestLogger(logger)(r))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in a goroutine
	go func() {
		logger.Info("starting service",
			zap.String("service", ServiceName),
			zap.String("port", cfg.Port),
			zap.String("frequency_band", cfg.FrequencyBand),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server crashed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal (SIGTERM from systemd or SIGINT from Ctrl+C)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down service")

	utils.SetHealthStatus("SHUTTING_DOWN", "Service is shutting down")
	cancel() // Signals the maintenance loop to stop

	// Give the HTTP server 5 seconds to finish current requests
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", zap.Error(err))
	}

	logger.Info("service exited cleanly")
}
