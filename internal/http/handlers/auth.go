package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/userauth-be/internal/auth"
	"github.com/hongminglow/userauth-be/internal/http/respond"
	"github.com/hongminglow/userauth-be/internal/models/dto"
	"github.com/hongminglow/userauth-be/internal/storage"
)

// invalidCredentialsMsg is shared by the unknown-user and wrong-password
// paths so the two are indistinguishable to a client.
const invalidCredentialsMsg = "Invalid username or password"

// AuthHandler owns the login and logout endpoints.
type AuthHandler struct {
	store  storage.UserStore
	authn  auth.Authenticator
	logger zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, authn auth.Authenticator, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{store: store, authn: authn, logger: logger}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", h.handleLogout)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.store.FindByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, invalidCredentialsMsg)
			return
		}
		h.logger.Error().Err(err).Msg("login: fetch user")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respond.Error(w, http.StatusUnauthorized, invalidCredentialsMsg)
		return
	}

	token, err := h.authn.Issue(w, user)
	if err != nil {
		h.logger.Error().Err(err).Msg("login: issue credential")
		respond.Error(w, http.StatusInternalServerError, "failed to issue credential")
		return
	}
	if token != "" {
		respond.JSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token})
		return
	}
	respond.JSON(w, http.StatusOK, dto.MessageResponse{Message: "login successful"})
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.authn.Revoke(w, r)
	w.WriteHeader(http.StatusNoContent)
}
