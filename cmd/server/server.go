package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/combat-companion/internal/config"
	"github.com/KirkDiggler/combat-companion/internal/handlers/web"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/dashboard"
)

var (
	listenAddr   string
	sessionStore string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the dashboard server",
	Long:  `Start the HTTP server that serves the combat dashboard and its JSON API.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&listenAddr, "addr", "", "listen address (overrides LISTEN_ADDR)")
	serverCmd.Flags().StringVar(&sessionStore, "store", "", "session store: memory or redis (overrides SESSION_STORE)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}
	if sessionStore != "" {
		cfg.SessionStore = sessionStore
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler, cleanup, err := newWebHandler(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("dashboard server starting",
			"addr", cfg.ListenAddr,
			"store", cfg.SessionStore,
			"server_api_key", cfg.HasServerAPIKey())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down dashboard server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timeout exceeded, forcing close", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func newWebHandler(ctx context.Context, cfg *config.Config) (*web.Handler, func(), error) {
	loaderSvc, err := newLoader(cfg)
	if err != nil {
		return nil, nil, err
	}
	advisorSvc, err := newAdvisor(cfg)
	if err != nil {
		return nil, nil, err
	}
	sessions, cleanup, err := newSessionRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	dashboardSvc, err := dashboard.NewOrchestrator(&dashboard.Config{
		SessionRepo:  sessions,
		Loader:       loaderSvc,
		Advisor:      advisorSvc,
		ServerAPIKey: cfg.HasServerAPIKey(),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create dashboard: %w", err)
	}

	handler, err := web.New(&web.Config{
		Dashboard:          dashboardSvc,
		DefaultCharacterID: cfg.DefaultCharacterID,
		SessionMaxAge:      cfg.SessionTTL,
		SecureCookies:      cfg.SecureCookies,
		AllowOrigins:       cfg.CORSOrigins,
		Logger:             slog.Default(),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create web handler: %w", err)
	}

	return handler, cleanup, nil
}
