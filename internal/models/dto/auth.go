package dto

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries the bearer token issued on a token-mode login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// MessageResponse is the body of a session-mode login.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public projection of a user record.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
