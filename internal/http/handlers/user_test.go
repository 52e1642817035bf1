package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/userauth-be/internal/auth"
)

func TestGetUserSelf(t *testing.T) {
	env, tm := newTokenEnv(t)
	alice := env.users["alice"]
	token := issueToken(t, tm, alice.ID)

	apitest.Handler(env.handler).
		Get("/api/user/alice").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusOK).
		Body(fmt.Sprintf(`{"id": %d, "username": "alice", "email": "a@x.com"}`, alice.ID)).
		End()
}

func TestGetUserOtherIsForbidden(t *testing.T) {
	env, tm := newTokenEnv(t)
	token := issueToken(t, tm, env.users["alice"].ID)

	apitest.Handler(env.handler).
		Get("/api/user/bob").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusForbidden).
		Body(`{"error": "Forbidden"}`).
		End()
}

// The target username is never looked up, so a nonexistent target behaves
// exactly like another user's: 403, not 404.
func TestGetUserNonexistentTargetIsForbidden(t *testing.T) {
	env, tm := newTokenEnv(t)
	token := issueToken(t, tm, env.users["alice"].ID)

	apitest.Handler(env.handler).
		Get("/api/user/nobody").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusForbidden).
		Body(`{"error": "Forbidden"}`).
		End()
}

func TestGetUserWithoutCredential(t *testing.T) {
	env, _ := newTokenEnv(t)

	apitest.Handler(env.handler).
		Get("/api/user/alice").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestGetUserExpiredToken(t *testing.T) {
	env, _ := newTokenEnv(t)
	expired := auth.NewTokenManager("test-secret", "userauth-test", -time.Minute)
	token := issueToken(t, expired, env.users["alice"].ID)

	apitest.Handler(env.handler).
		Get("/api/user/alice").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestGetUserTamperedToken(t *testing.T) {
	env, tm := newTokenEnv(t)
	token := issueToken(t, tm, env.users["alice"].ID)

	apitest.Handler(env.handler).
		Get("/api/user/alice").
		Header("Authorization", "Bearer "+token+"x").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

// A credential whose subject no longer has a row yields 404, the only place
// NotFound is reachable.
func TestGetUserCallerRecordGone(t *testing.T) {
	env, tm := newTokenEnv(t)
	token, err := tm.Issue(httptest.NewRecorder(), userFromID(99999))
	require.NoError(t, err)

	apitest.Handler(env.handler).
		Get("/api/user/alice").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusNotFound).
		Body(`{"error": "User not found"}`).
		End()
}
