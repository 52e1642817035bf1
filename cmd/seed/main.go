// Command seed creates the users table and inserts demo accounts with
// bcrypt-hashed passwords. Existing usernames are left untouched.
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/userauth-be/internal/config"
	"github.com/hongminglow/userauth-be/internal/models"
	"github.com/hongminglow/userauth-be/internal/storage"
	"github.com/hongminglow/userauth-be/internal/storage/postgres"
	"github.com/hongminglow/userauth-be/internal/storage/sqlite"
)

type seedUser struct {
	username string
	password string
	email    string
}

var defaultUsers = []seedUser{
	{"username1", "pass1", "user1@example.com"},
	{"username2", "pass2", "user2@example.com"},
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	username := flag.String("username", "", "seed a single user instead of the demo set")
	password := flag.String("password", "", "password for -username")
	email := flag.String("email", "", "email for -username")
	flag.Parse()

	_ = godotenv.Load()
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

	users := defaultUsers
	if *username != "" {
		if *password == "" {
			logger.Fatal().Msg("-password is required with -username")
		}
		users = []seedUser{{*username, *password, *email}}
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			logger.Fatal().Err(err).Str("username", u.username).Msg("hash password")
		}
		created, err := store.CreateUser(ctx, models.User{
			Username:     u.username,
			Email:        u.email,
			PasswordHash: string(hash),
		})
		if err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				logger.Info().Str("username", u.username).Msg("already exists, skipped")
				continue
			}
			logger.Fatal().Err(err).Str("username", u.username).Msg("insert user")
		}
		logger.Info().Int64("id", created.ID).Str("username", created.Username).Msg("seeded")
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.UserStore, error) {
	if cfg.StorageDriver == config.DriverPostgres {
		return postgres.NewUserStore(ctx, cfg.DatabaseURL)
	}
	return sqlite.Open(cfg.SQLitePath)
}
