package httputil

import (
	"errors"
	"net/http"
	"strings"
)

const TokenQueryParam = "token"

var ErrNoToken = errors.New("no match token found in header or query")

// GetTokenFromRequest reads the match token from the Authorization header,
// falling back to the query string (browsers cannot set headers on a
// WebSocket upgrade).
func GetTokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Support "Bearer <token>" format
		authHeader = strings.TrimPrefix(authHeader, "Bearer ")
		if token := strings.TrimSpace(authHeader); token != "" {
			return token, nil
		}
	}

	if token := r.URL.Query().Get(TokenQueryParam); token != "" {
		return token, nil
	}

	return "", ErrNoToken
}
