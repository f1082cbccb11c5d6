package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"ecolithswap-backend/internal/api/rest"
	"ecolithswap-backend/internal/config"
	"ecolithswap-backend/internal/jobs"
	"ecolithswap-backend/internal/logger"
	"ecolithswap-backend/internal/repository/postgres"
	"ecolithswap-backend/internal/repository/redis"
	"ecolithswap-backend/internal/scheduler"
	"ecolithswap-backend/internal/security"
	"ecolithswap-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EcolithSwap server...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Token denylist backed by Redis
	denylist, err := redis.NewTokenDenylist(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokens := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	emailService := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	rentalService := service.NewRentalService(
		store.RentalRepository,
		store.BatteryRepository,
		store.StationRepository,
		store.UserRepository,
		emailService,
		service.RentalRates{
			HourlyRate: cfg.Rental.DefaultHourlyRate,
			BaseCost:   cfg.Rental.DefaultBaseCost,
		},
	)

	svcs := rest.Services{
		Auth:      service.NewAuthService(store.UserRepository, denylist, tokens),
		Users:     service.NewUserService(store.UserRepository),
		Stations:  service.NewStationService(store.StationRepository),
		Batteries: service.NewBatteryService(store.BatteryRepository, store.StationRepository),
		Rentals:   rentalService,
		Waste:     service.NewWasteService(store.WasteLogRepository, store.StationRepository, store.UserRepository, emailService),
		Payments:  service.NewPaymentService(store.PaymentRepository, store.RentalRepository, store.StatsRepository),
		Dashboard: service.NewDashboardService(store.StatsRepository),
	}

	// Scheduled jobs run inside the server process
	jobRunner := jobs.NewJobRunner(store, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// HTTP server
	router := rest.NewRouter(svcs, tokens)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
