package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/hongminglow/userauth-be/internal/auth"
	"github.com/hongminglow/userauth-be/internal/http/respond"
	"github.com/hongminglow/userauth-be/internal/middleware"
	"github.com/hongminglow/userauth-be/internal/models/dto"
	"github.com/hongminglow/userauth-be/internal/storage"
)

// UserHandler serves the authenticated self-only user lookup.
type UserHandler struct {
	store  storage.UserStore
	authn  auth.Authenticator
	logger zerolog.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(store storage.UserStore, authn auth.Authenticator, logger zerolog.Logger) *UserHandler {
	return &UserHandler{store: store, authn: authn, logger: logger}
}

// Register attaches the user route behind the auth middleware.
func (h *UserHandler) Register(mux *http.ServeMux) {
	mux.Handle("GET /api/user/{username}", middleware.RequireAuth(h.authn, http.HandlerFunc(h.handleGetUser)))
}

// handleGetUser fetches the CALLER's record and compares its username to the
// path parameter. The target username is never looked up directly, so a
// request for any username other than the caller's own, existing or not,
// returns 403.
func (h *UserHandler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, auth.ErrUnauthenticated.Error())
		return
	}

	caller, err := h.store.FindByID(r.Context(), callerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error().Err(err).Int64("user_id", callerID).Msg("get user: fetch caller")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	if caller.Username != r.PathValue("username") {
		respond.Error(w, http.StatusForbidden, "Forbidden")
		return
	}

	respond.JSON(w, http.StatusOK, dto.UserResponse{
		ID:       caller.ID,
		Username: caller.Username,
		Email:    caller.Email,
	})
}
