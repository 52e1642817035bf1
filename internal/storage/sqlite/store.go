// Package sqlite provides a SQLite-backed user store, used for local runs
// and tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/hongminglow/userauth-be/internal/models"
	"github.com/hongminglow/userauth-be/internal/storage"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var _ storage.UserStore = (*Store)(nil)

// Store persists users in a single SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the users table
// exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() {
	if s != nil && s.db != nil {
		_ = s.db.Close()
	}
}

func (s *Store) migrate() error {
	const stmt = `CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		email TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	createdAt := time.Now().UTC()
	const query = `INSERT INTO users (username, password_hash, email, created_at) VALUES (?, ?, ?, ?);`
	res, err := s.db.ExecContext(ctx, query, user.Username, user.PasswordHash, user.Email, toMillis(createdAt))
	if err != nil {
		var sqlErr *msqlite.Error
		if errors.As(err, &sqlErr) && sqlErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("last insert id: %w", err)
	}
	user.ID = id
	user.CreatedAt = createdAt
	return user, nil
}

// FindByUsername fetches a user by exact username.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	const query = `SELECT id, username, password_hash, email, created_at FROM users WHERE username = ?;`
	return scanUser(s.db.QueryRowContext(ctx, query, username))
}

// FindByID fetches a user by primary key.
func (s *Store) FindByID(ctx context.Context, id int64) (models.User, error) {
	const query = `SELECT id, username, password_hash, email, created_at FROM users WHERE id = ?;`
	return scanUser(s.db.QueryRowContext(ctx, query, id))
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var createdAt int64
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	user.CreatedAt = fromMillis(createdAt)
	return user, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
