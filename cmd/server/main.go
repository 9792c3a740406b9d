package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shutterfolio/backend/internal/config"
	"github.com/shutterfolio/backend/internal/handler"
	"github.com/shutterfolio/backend/internal/logging"
	"github.com/shutterfolio/backend/internal/repository"
	"github.com/shutterfolio/backend/internal/service"
	"github.com/shutterfolio/backend/pkg/auth"
	"github.com/shutterfolio/backend/pkg/identity"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	store, err := repository.Open(context.Background(), repository.OpenOptions{
		Backend:              cfg.StoreBackend,
		DatabaseURL:          cfg.DatabaseURL,
		SQLitePath:           cfg.SQLitePath,
		FirestoreProjectID:   cfg.FirestoreProjectID,
		FirestoreCredentials: cfg.FirestoreCredentials,
	})
	if err != nil {
		logging.Fatal("failed to open store", "backend", cfg.StoreBackend, "error", err)
	}
	defer store.Close()

	images := service.NewImageHosts(cfg.ImageHosts...)
	portfolioService := service.NewPortfolioService(store.Portfolio, images)
	contactService := service.NewContactService(store.Contacts)
	reviewService := service.NewReviewService(store.Reviews)

	// 認証プロバイダ: firebase は Identity Toolkit、local は admins テーブル + bcrypt
	var authService service.AuthService
	switch cfg.AuthProvider {
	case service.AuthProviderFirebase:
		authService = service.NewFirebaseAuthService(identity.NewClient(cfg.FirebaseAPIKey))
	case service.AuthProviderLocal:
		if store.Admins == nil {
			logging.Fatal("local auth provider needs an admins table", "backend", cfg.StoreBackend)
		}
		authService = service.NewLocalAuthService(store.Admins)
	}

	sessionSecret := auth.SessionSecretBytes(cfg.SessionSecret)

	h := handler.New(store.DB, cfg.StoreBackend, cfg.FrontendURL)
	authHandler := handler.NewAuthHandler(authService, handler.AuthConfig{
		SessionSecret: sessionSecret,
		SecureCookie:  cfg.IsProduction(),
	})
	providersHandler := handler.NewProvidersHandler(handler.ProvidersConfig{
		Provider:     cfg.AuthProvider,
		AuthRequired: cfg.AuthRequired,
	})
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)
	contactHandler := handler.NewContactHandler(contactService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	siteHandler := handler.NewSiteHandler(cfg.PublicSiteURL, cfg.LegalDocsDir, images)

	contactLimiter := handler.NewRateLimiter(cfg.ContactRateLimit)
	loginLimiter := handler.NewRateLimiter(handler.DefaultRateLimit)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /robots.txt", siteHandler.Robots)
	mux.HandleFunc("GET /api/legal/{type}", siteHandler.Legal)
	mux.HandleFunc("GET /api/images/allowed-hosts", siteHandler.AllowedImageHosts)

	// 公開 API
	mux.HandleFunc("GET /api/portfolio", portfolioHandler.List)
	mux.HandleFunc("GET /api/portfolio/featured", portfolioHandler.Featured)
	mux.HandleFunc("GET /api/reviews", reviewHandler.List)
	mux.Handle("POST /api/contact", contactLimiter.Middleware(http.HandlerFunc(contactHandler.Submit)))

	// 認証
	mux.HandleFunc("GET /api/auth/providers", providersHandler.Providers)
	mux.Handle("POST /api/auth/login", loginLimiter.Middleware(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/session", authHandler.Session)

	// 管理 API（セッション必須。AUTH_REQUIRED=false の開発環境では DevAuth）
	wrapAuth := func(next http.HandlerFunc) http.Handler {
		if cfg.AuthRequired {
			return auth.RequireAuth(sessionSecret)(next)
		}
		return auth.DevAuth(next)
	}
	mux.Handle("GET /api/admin/contacts", wrapAuth(contactHandler.AdminList))
	mux.Handle("DELETE /api/admin/contacts/{id}", wrapAuth(contactHandler.Delete))
	mux.Handle("GET /api/admin/portfolio", wrapAuth(portfolioHandler.List))
	mux.Handle("POST /api/admin/portfolio", wrapAuth(portfolioHandler.Create))
	mux.Handle("DELETE /api/admin/portfolio/{id}", wrapAuth(portfolioHandler.Delete))
	mux.Handle("GET /api/admin/reviews", wrapAuth(reviewHandler.List))
	mux.Handle("POST /api/admin/reviews", wrapAuth(reviewHandler.Create))
	mux.Handle("DELETE /api/admin/reviews/{id}", wrapAuth(reviewHandler.Delete))

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening",
			"addr", server.Addr,
			"store", cfg.StoreBackend,
			"auth_provider", cfg.AuthProvider,
			"auth_required", cfg.AuthRequired,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
