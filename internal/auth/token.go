package auth

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hongminglow/userauth-be/internal/models"
)

var _ Authenticator = (*TokenManager)(nil)

// TokenManager issues and validates signed JWTs for authenticated users.
// Tokens are stateless, so Revoke is a no-op: a token stays valid until it
// expires.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a manager with the provided secret, issuer, and
// token lifetime.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue signs a JWT whose subject is the user id.
func (t *TokenManager) Issue(_ http.ResponseWriter, user models.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   strconv.FormatInt(user.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Resolve validates the bearer token on the Authorization header and returns
// the subject user id.
func (t *TokenManager) Resolve(r *http.Request) (int64, error) {
	raw, ok := bearerToken(r)
	if !ok {
		return 0, ErrUnauthenticated
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, ErrUnauthenticated
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrUnauthenticated
	}
	return id, nil
}

// Revoke does nothing; bearer tokens cannot be invalidated server-side.
func (t *TokenManager) Revoke(http.ResponseWriter, *http.Request) {}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
