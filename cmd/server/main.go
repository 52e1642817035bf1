package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/hongminglow/userauth-be/internal/auth"
	"github.com/hongminglow/userauth-be/internal/config"
	"github.com/hongminglow/userauth-be/internal/server"
	"github.com/hongminglow/userauth-be/internal/storage"
	"github.com/hongminglow/userauth-be/internal/storage/postgres"
	"github.com/hongminglow/userauth-be/internal/storage/sqlite"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found; relying on existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("init storage")
	}
	defer store.Close()

	srv := server.New(cfg, store, newAuthenticator(cfg), logger)

	go func() {
		logger.Info().
			Str("addr", cfg.HTTPAddress()).
			Str("driver", cfg.StorageDriver).
			Str("auth_mode", cfg.AuthMode).
			Msg("userauth backend listening")
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.UserStore, error) {
	if cfg.StorageDriver == config.DriverPostgres {
		return postgres.NewUserStore(ctx, cfg.DatabaseURL)
	}
	return sqlite.Open(cfg.SQLitePath)
}

func newAuthenticator(cfg config.Config) auth.Authenticator {
	if cfg.AuthMode == config.ModeSession {
		return auth.NewSessionManager(cfg.CredentialTTL)
	}
	return auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.CredentialTTL)
}
