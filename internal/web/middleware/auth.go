package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/logging"
	"github.com/google/uuid"
)

// TokenVerifier resolves a bearer token to the user it was issued for.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// credentialsError is returned for every rejected token.
const credentialsError = "Could not validate credentials"

// RequireUser returns middleware that accepts only requests carrying a valid
// "Authorization: Bearer <token>" header. The user id is stored with
// core.ContextWithUserID and attached to the request logger.
func RequireUser(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				logging.FromContext(r.Context()).Warn("auth: missing bearer token",
					"path", r.URL.Path,
					"method", r.Method,
				)
				unauthorized(w)
				return
			}

			userID, err := tokens.Verify(raw)
			if err != nil {
				logging.FromContext(r.Context()).Warn("auth: invalid token",
					"path", r.URL.Path,
					"method", r.Method,
					"error", err,
				)
				unauthorized(w)
				return
			}

			ctx := core.ContextWithUserID(r.Context(), userID)
			ctx, _ = logging.WithFields(ctx, "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header. The scheme
// is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":  credentialsError,
		"detail": credentialsError,
		"code":   "AUTH001",
	})
}
