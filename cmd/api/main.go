package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/dance-school/internal/audit"
	"github.com/BruksfildServices01/dance-school/internal/auth"
	"github.com/BruksfildServices01/dance-school/internal/config"
	dbpkg "github.com/BruksfildServices01/dance-school/internal/db"
	"github.com/BruksfildServices01/dance-school/internal/logger"
	"github.com/BruksfildServices01/dance-school/internal/routes"
	"github.com/BruksfildServices01/dance-school/internal/storage"
	"github.com/BruksfildServices01/dance-school/internal/validation"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = dbpkg.Close(db) }()

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL)
	if err != nil {
		log.Fatalf("token issuer: %v", err)
	}
	hasher := auth.NewHasher(cfg.BcryptCost)

	dispatcher := audit.NewDispatcher(audit.New(db), log)
	defer dispatcher.Close()

	deps := routes.Dependencies{
		DB:     db,
		Config: cfg,
		Logger: log,
		Tokens: tokens,
		Hasher: hasher,
		Audit:  dispatcher,
	}

	// Redis
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.WithError(err).Warn("redis unreachable, login rate limiting fails open")
		}
		cancel()
		deps.Redis = rdb
	}

	// S3
	store, err := storage.NewS3Store(cfg)
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		log.Info("S3_BUCKET not set, image uploads disabled")
	case err != nil:
		log.Fatalf("object storage: %v", err)
	default:
		deps.Uploads = store
	}

	validation.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Infof("server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	log.Info("server exited")
}
