package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/indikart/indikart-backend/internal/backend"
	"github.com/indikart/indikart-backend/internal/config"
	"github.com/indikart/indikart-backend/internal/kv"
	"github.com/indikart/indikart-backend/internal/logging"
	"github.com/indikart/indikart-backend/internal/modules/assistant"
	"github.com/indikart/indikart-backend/internal/modules/auth"
	"github.com/indikart/indikart-backend/internal/modules/catalog"
	"github.com/indikart/indikart-backend/internal/modules/customer"
	"github.com/indikart/indikart-backend/internal/modules/dashboard"
	"github.com/indikart/indikart-backend/internal/modules/order"
	"github.com/indikart/indikart-backend/internal/modules/settings"
	"github.com/indikart/indikart-backend/internal/modules/storefront"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	b, err := backend.Open(ctx, cfg.DatabaseURL, logger.Named("backend"))
	if err != nil {
		return err
	}
	defer b.Close()

	store, err := openKV(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	authService, err := newAuthService(cfg)
	if err != nil {
		return err
	}

	// ── Services ────────────────────────────────────────────
	catalogService := catalog.NewService(b.Products)
	orderService := order.NewService(b.Orders)
	customerService := customer.NewService(b.Customers)
	settingsService := settings.NewService(b.Settings)
	dashboardService := dashboard.NewService(b.Orders, b.Customers)

	sessions := storefront.NewSessionManager(catalogService, orderService, store, storefront.Options{
		NotificationTTL:      cfg.NotificationTTL,
		CheckoutSuccessDelay: cfg.CheckoutSuccessDelay,
		SearchDebounce:       cfg.SearchDebounce,
		SessionIdleTTL:       cfg.SessionIdleTTL,
	}, logger.Named("storefront"))
	defer sessions.Close()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logging.Middleware(logger.Named("http")))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	auth.NewHandler(authService).RegisterRoutes(router)

	router.Route("/api/v1/store", func(r chi.Router) {
		storefront.NewHandler(sessions, catalogService).RegisterRoutes(r)
	})

	router.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(auth.Middleware(authService))
		catalog.NewHandler(catalogService).RegisterRoutes(r)
		order.NewHandler(orderService).RegisterRoutes(r)
		customer.NewHandler(customerService).RegisterRoutes(r)
		settings.NewHandler(settingsService).RegisterRoutes(r)
		dashboard.NewHandler(dashboardService).RegisterRoutes(r)
		assistant.NewHandler(newGenerator(ctx, cfg)).RegisterRoutes(r)
	})

	// ── Start Server ─────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("IndiKart API server starting",
			zap.String("addr", srv.Addr),
			zap.String("backend", b.Mode),
			zap.String("kv", cfg.KVBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// ── helpers ───────────────────────────────────────────────────────────────────

func openKV(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	path := cfg.KVPath
	if cfg.KVBackend == kv.BackendSQLite {
		path = filepath.Join(cfg.KVPath, "kv.db")
	}
	return kv.Open(ctx, kv.Options{
		Backend:  cfg.KVBackend,
		Path:     path,
		RedisURL: cfg.RedisURL,
	})
}

func newAuthService(cfg *config.Config) (auth.Service, error) {
	if !cfg.AdminEnabled() {
		logger.Warn("ADMIN_EMAIL / ADMIN_PASSWORD not set, admin login disabled")
		return auth.NewService(auth.Admin{}, []byte(cfg.JWTSecret))
	}
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 {
		var err error
		hash, err = auth.HashPassword(cfg.AdminPassword, bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
	}
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set, admin tokens will not survive a restart")
	}
	return auth.NewService(auth.Admin{Email: cfg.AdminEmail, PasswordHash: hash}, []byte(cfg.JWTSecret))
}

func newGenerator(ctx context.Context, cfg *config.Config) assistant.Generator {
	if cfg.GeminiAPIKey == "" {
		logger.Info("GEMINI_API_KEY not set, using template copy for the assistant")
		return assistant.NewStaticGenerator()
	}
	model, err := assistant.NewGeminiModel(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Warn("gemini unavailable, using template copy", zap.Error(err))
		return assistant.NewStaticGenerator()
	}
	return assistant.NewGenerator(model, logger.Named("assistant"))
}
