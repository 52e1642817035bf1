package handlers

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/userauth-be/internal/auth"
	"github.com/hongminglow/userauth-be/internal/models"
	"github.com/hongminglow/userauth-be/internal/storage/sqlite"
)

type testEnv struct {
	handler http.Handler
	authn   auth.Authenticator
	users   map[string]models.User
}

// newTestEnv wires the real handlers against a throwaway SQLite store seeded
// with alice and bob.
func newTestEnv(t *testing.T, authn auth.Authenticator) testEnv {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(store.Close)

	users := make(map[string]models.User)
	for _, seed := range []struct{ username, password, email string }{
		{"alice", "wonderland", "a@x.com"},
		{"bob", "builder", "b@x.com"},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.MinCost)
		require.NoError(t, err)
		created, err := store.CreateUser(context.Background(), models.User{
			Username:     seed.username,
			Email:        seed.email,
			PasswordHash: string(hash),
		})
		require.NoError(t, err)
		users[seed.username] = created
	}

	logger := zerolog.Nop()
	mux := http.NewServeMux()
	NewHealthHandler(time.Now()).Register(mux)
	NewAuthHandler(store, authn, logger).Register(mux)
	NewUserHandler(store, authn, logger).Register(mux)

	return testEnv{handler: mux, authn: authn, users: users}
}

func userFromID(id int64) models.User {
	return models.User{ID: id}
}

func newTokenEnv(t *testing.T) (testEnv, *auth.TokenManager) {
	t.Helper()
	tm := auth.NewTokenManager("test-secret", "userauth-test", time.Hour)
	return newTestEnv(t, tm), tm
}
