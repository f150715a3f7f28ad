package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clothesshop/client-api/internal/httputil"
	"github.com/clothesshop/client-api/internal/logging"
	"github.com/clothesshop/client-api/internal/user"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const identityContextKey ContextKey = "identity"

// IdentityResolver re-resolves a token subject to a live user record.
type IdentityResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// Middleware guards routes behind a valid bearer token. Each request moves
// token extraction -> verification -> identity resolution; any failure is a
// terminal 401 for that request.
type Middleware struct {
	tokens        TokenService
	users         IdentityResolver
	lookupTimeout time.Duration
}

func NewMiddleware(tokens TokenService, users IdentityResolver, lookupTimeout time.Duration) *Middleware {
	return &Middleware{
		tokens:        tokens,
		users:         users,
		lookupTimeout: lookupTimeout,
	}
}

// RequireAuth validates the access token and attaches the resolved identity
// to the request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.RespondErrorWithCode(w, "invalid authorization header format", httputil.CodeInvalidAuthHeader, http.StatusUnauthorized)
			return
		}

		claims, err := m.tokens.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, ErrExpiredToken) {
				httputil.RespondErrorWithCode(w, "token has expired", httputil.CodeTokenExpired, http.StatusUnauthorized)
				return
			}
			httputil.RespondErrorWithCode(w, "invalid token", httputil.CodeInvalidToken, http.StatusUnauthorized)
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			httputil.RespondErrorWithCode(w, "invalid token", httputil.CodeInvalidToken, http.StatusUnauthorized)
			return
		}

		// The subject is re-resolved against the store so a deleted account
		// fails immediately even with an unexpired token. The lookup runs
		// under its own timeout so a hung store call cannot stall the
		// request.
		lookupCtx, cancel := context.WithTimeout(r.Context(), m.lookupTimeout)
		defer cancel()

		resolved, err := m.users.GetByID(lookupCtx, userID)
		if err != nil {
			// A missing user is expected (stale token); anything else is a
			// store problem worth surfacing in the logs. The response is a
			// plain 401 either way.
			if !errors.Is(err, user.ErrNotFound) {
				logger := logging.GetLoggerFromContext(r.Context())
				if errors.Is(err, context.DeadlineExceeded) {
					logger.Error("identity lookup timed out", "user_id", userID)
				} else {
					logger.Error("identity lookup failed", "user_id", userID, "error", err.Error())
				}
			}
			httputil.RespondErrorWithCode(w, "unauthorized", httputil.CodeUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), resolved.Public())))
	})
}

// ContextWithIdentity returns a context carrying the authenticated identity.
func ContextWithIdentity(ctx context.Context, identity user.Public) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext extracts the authenticated identity from the request
// context.
func IdentityFromContext(ctx context.Context) (user.Public, bool) {
	identity, ok := ctx.Value(identityContextKey).(user.Public)
	return identity, ok
}
