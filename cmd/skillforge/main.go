// Package main is the entry point for the SkillForge API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillforge/internal/cache"
	"skillforge/internal/config"
	"skillforge/internal/database"
	"skillforge/internal/handlers"
	"skillforge/internal/mail"
	"skillforge/internal/router"
	"skillforge/internal/storage"
	"skillforge/internal/store"
	"skillforge/internal/token"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the default admin and the canonical site content snapshot
	// (no-op once data exists).
	if err := database.Seed(db); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey (content cache + draft store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	leadStore := store.NewLeadStore(db)
	stateStore := store.NewSiteStateStore(store.NewSiteConfigStore(db))

	stateCache := cache.NewStateCache(valkeyClient, cache.DefaultStateTTL)
	draftStore := cache.NewDraftStore(valkeyClient, cache.DefaultDraftTTL)

	signer := token.NewSigner(cfg.JWTSecret)

	// Email delivery: Resend when configured, otherwise log-only.
	var sender mail.Sender
	if cfg.ResendAPIKey != "" {
		sender = mail.NewResendSender(cfg.ResendAPIKey, cfg.MailFrom)
		slog.Info("email delivery via resend", "from", cfg.MailFrom)
	} else {
		sender = mail.NewNoopSender()
		slog.Warn("no email provider configured, sends will be logged only")
	}
	notifier := mail.NewNotifier(sender, stateStore)

	// Upload storage: S3 when configured, local disk otherwise.
	var uploader storage.Uploader
	var uploadsDir string
	s3Client, err := storage.NewS3(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if s3Client != nil {
		uploader = s3Client
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		local, err := storage.NewLocal(cfg.UploadsDir, cfg.PublicBaseURL)
		if err != nil {
			slog.Error("failed to initialize local storage", "error", err)
			os.Exit(1)
		}
		uploader = local
		uploadsDir = local.Dir()
		slog.Info("local upload storage", "dir", uploadsDir)
	}

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(stateStore, stateCache, leadStore, notifier)
	authHandlers := handlers.NewAuth(userStore, signer, sender, cfg.PublicBaseURL)
	adminHandlers := handlers.NewAdmin(draftStore, stateStore, stateCache, leadStore, userStore, uploader)

	// Set up the Chi router with all middleware and routes.
	r := router.New(signer, publicHandlers, authHandlers, adminHandlers, router.Options{
		Version:    version,
		UploadsDir: uploadsDir,
		LeadLimit:  cfg.LeadLimit,
	})

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "version", version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
