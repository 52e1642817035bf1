package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hongminglow/userauth-be/internal/models"
	"github.com/hongminglow/userauth-be/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage.UserStore interface at compile time.
var _ storage.UserStore = (*Store)(nil)

// Store provides Postgres-backed persistence for users.
type Store struct {
	pool *pgxpool.Pool
}

// NewUserStore connects a pool and ensures the users table exists.
func NewUserStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	const stmt = `CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		email TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`
	if _, err := s.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (username, password_hash, email)
		VALUES ($1, $2, $3)
		RETURNING id, username, password_hash, email, created_at;
	`
	row := s.pool.QueryRow(ctx, query, user.Username, user.PasswordHash, user.Email)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return created, nil
}

// FindByUsername fetches a user by exact username.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	const query = `
		SELECT id, username, password_hash, email, created_at
		FROM users
		WHERE username = $1;
	`
	row := s.pool.QueryRow(ctx, query, username)
	return scanUser(row)
}

// FindByID fetches a user by primary key.
func (s *Store) FindByID(ctx context.Context, id int64) (models.User, error) {
	const query = `
		SELECT id, username, password_hash, email, created_at
		FROM users
		WHERE id = $1;
	`
	row := s.pool.QueryRow(ctx, query, id)
	return scanUser(row)
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
