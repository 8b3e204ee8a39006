package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fhuszti/uploads-ms-go/internal/cache"
	"github.com/fhuszti/uploads-ms-go/internal/config"
	"github.com/fhuszti/uploads-ms-go/internal/db"
	"github.com/fhuszti/uploads-ms-go/internal/handler/api"
	"github.com/fhuszti/uploads-ms-go/internal/identity"
	"github.com/fhuszti/uploads-ms-go/internal/logger"
	cMiddleware "github.com/fhuszti/uploads-ms-go/internal/middleware"
	"github.com/fhuszti/uploads-ms-go/internal/port"
	"github.com/fhuszti/uploads-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/uploads-ms-go/internal/storage"
	"github.com/fhuszti/uploads-ms-go/internal/transcoder"
	uploadSvc "github.com/fhuszti/uploads-ms-go/internal/usecase/upload"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	strg := initStorage(ctx, cfg)

	verifier := initVerifier(ctx, cfg)

	uploadRepo := mariadb.NewUploadRepository(database.DB)
	trans := transcoder.NewFFmpeg(cfg.FFmpegPath)
	orchestrator := uploadSvc.NewOrchestrator(uploadRepo, strg, trans, db.NewUUID, cfg.TempDir)

	r := initRouter(ctx)
	r.With(cMiddleware.WithBearerAuth(verifier)).
		Post("/api/upload", api.UploadHandler(orchestrator, cfg.TempDir, !cfg.IsProduction()))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.MinioBucket,
		cfg.MinioPublicBaseURL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	if err := strg.InitBucket(cfg.MinioBucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MinioBucket, err)
		os.Exit(1)
	}

	return strg
}

func initVerifier(ctx context.Context, cfg *config.Settings) port.IdentityVerifier {
	if cfg.IdentityURL == "" {
		logger.Warn(ctx, "⚠️  No identity service configured — falling back to local JWT verification")
		return identity.NewJWTVerifier(cfg.JWTSecret)
	}

	verifier := port.IdentityVerifier(identity.NewRemoteVerifier(cfg.IdentityURL, cfg.IdentityAPIKey))
	if cfg.RedisAddr != "" {
		verifier = identity.NewCachedVerifier(verifier, cache.NewTokenCache(cfg.RedisAddr, cfg.RedisPassword))
		logger.Info(ctx, "✅  Redis token cache enabled")
	} else {
		logger.Warn(ctx, "⚠️  Redis not configured — token caching is disabled")
	}
	return verifier
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
