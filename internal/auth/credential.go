package auth

import (
	"errors"
	"net/http"

	"github.com/hongminglow/userauth-be/internal/models"
)

// ErrUnauthenticated indicates the request carried no usable credential:
// missing, malformed, expired, or revoked.
var ErrUnauthenticated = errors.New("invalid or missing credentials")

// Authenticator issues and resolves client credentials. Two implementations
// exist, signed bearer tokens and server-side sessions; handlers never know
// which one is active.
type Authenticator interface {
	// Issue establishes a credential for user. The bearer-token variant
	// returns the signed token; the session variant writes a Set-Cookie
	// header on w and returns the empty string.
	Issue(w http.ResponseWriter, user models.User) (string, error)
	// Resolve maps the credential presented on r back to a user id.
	Resolve(r *http.Request) (int64, error)
	// Revoke invalidates the credential presented on r, where possible.
	Revoke(w http.ResponseWriter, r *http.Request)
}
