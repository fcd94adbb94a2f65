package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lightning-wallet-daemon/config"
	"lightning-wallet-daemon/internal/adapter/backend/httpapi"
	pgBackend "lightning-wallet-daemon/internal/adapter/backend/postgres"
	httpHandler "lightning-wallet-daemon/internal/adapter/http/handler"
	"lightning-wallet-daemon/internal/adapter/keystore"
	"lightning-wallet-daemon/internal/adapter/node"
	"lightning-wallet-daemon/internal/adapter/notify"
	"lightning-wallet-daemon/internal/adapter/oracle"
	redisStorage "lightning-wallet-daemon/internal/adapter/storage/redis"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/internal/service"
	"lightning-wallet-daemon/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("network", cfg.Bitcoin.Network).
		Int("port", cfg.Server.Port).
		Msg("Starting Lightning Wallet Daemon")

	ctx := context.Background()

	// Node RPC bridge
	bridge := node.NewBridge(cfg.Node.BridgeURL, cfg.Node.Timeout, log)

	// Secure key store for seed and wallet password
	keys, err := keystore.NewFileStore(cfg.KeyStore.Path, cfg.KeyStore.Passphrase)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open key store")
	}

	// Chain height oracle
	heightOracle, err := oracle.NewBlockCypher(cfg.Bitcoin.Network, cfg.Node.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure height oracle")
	}

	// Remote ledger backend. The HTTP client always carries the session
	// identity; postgres mode keeps documents and the fiat ledger local.
	client := httpapi.NewClient(httpapi.Config{
		BaseURL:      cfg.Backend.BaseURL,
		AuthSecret:   cfg.Backend.AuthSecret,
		UserID:       cfg.Backend.UserID,
		TokenExpiry:  cfg.Backend.TokenExpiry,
		EmulatorHost: cfg.Backend.EmulatorHost,
		Timeout:      cfg.Backend.Timeout,
	}, log)

	var (
		docs   ports.DocumentStore  = client
		caller ports.FunctionCaller = client
	)
	healthCheckers := []ports.HealthChecker{node.NewHealthCheck(bridge)}

	if cfg.Backend.Mode == "postgres" {
		pool, err := pgBackend.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		store := pgBackend.NewStore(pool, cfg.Backend.UserID)
		docs = store
		caller = pgBackend.NewCallerOverlay(client, store)
		healthCheckers = append(healthCheckers, pgBackend.NewHealthCheck(pool))
	}

	// Optional Redis cache for exchange rates
	var rateCache ports.RateCache
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		rateCache = redisStorage.NewRateCache(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Navigation tracker backing incoming-payment alerts
	screens := httpHandler.NewScreenTracker()
	notifier := notify.NewLogNotifier(log)

	// Core services
	accountSvc := service.NewNodeAccountService(bridge, notifier, screens, cfg.Payment.Timeout, log)
	lifecycleSvc := service.NewLifecycleService(
		bridge, keys, heightOracle, caller, accountSvc,
		cfg.Unlock.ClosedMeansUnlocked, log,
	)
	ratesSvc := service.NewRateService(docs, rateCache, cfg.Redis.RateTTL, log)
	fiatSvc := service.NewFiatService(caller, docs, client, log)
	aggregateSvc := service.NewAggregateService(ratesSvc, fiatSvc, accountSvc, log)
	exchangeSvc := service.NewExchangeService(caller, accountSvc, log)
	channelSvc := service.NewChannelService(bridge, docs, caller, lifecycleSvc, log)
	onboardingSvc := service.NewOnboardingService(docs, client, log)
	onboardingSvc.Load(ctx)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Lifecycle:      lifecycleSvc,
		Account:        accountSvc,
		Fiat:           fiatSvc,
		Aggregate:      aggregateSvc,
		Exchange:       exchangeSvc,
		Channels:       channelSvc,
		Onboarding:     onboardingSvc,
		Screens:        screens,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
