package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/authgate/authentication-gateway/internal/api"
	"github.com/authgate/authentication-gateway/internal/core/domain"
	"github.com/authgate/authentication-gateway/internal/core/ports"
	"github.com/authgate/authentication-gateway/internal/core/service"
	"github.com/authgate/authentication-gateway/internal/infrastructure/config"
	mongodb "github.com/authgate/authentication-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/authgate/authentication-gateway/internal/infrastructure/db/redis"
	"github.com/authgate/authentication-gateway/internal/infrastructure/provider"
	"github.com/authgate/authentication-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	store := mongodb.NewAccountRepository(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	if err := mongodb.SeedAdmin(ctx, store, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password, log); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()

	// Provider calls carry no engine-level deadline; the shared client's
	// timeout is the outer bound on a stalled provider.
	httpClient := &http.Client{Timeout: 10 * time.Second}
	validators := map[string]ports.ProviderValidator{
		domain.ProviderGoogle:   provider.NewGoogleValidator(cfg.Google.TokenAudience, log),
		domain.ProviderFacebook: provider.NewFacebookValidator(cfg.Facebook.ClientID, cfg.Facebook.ClientSecret, httpClient, redisdb.NewAppTokenCache(rdb), log),
	}

	issuer := service.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TTL)
	authService := service.NewAuthService(store, validators, issuer, log)

	e := api.NewRouter(api.Dependencies{
		AuthService: authService,
		Store:       store,
		Mongo:       db,
		Redis:       rdb,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("authentication gateway started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
