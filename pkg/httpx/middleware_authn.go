package httpx

import (
	"context"
	"net/http"

	"github.com/robera20/employee-attendance-management/pkg/slogx"
)

// SessionResolver maps a raw session token to the admin that owns it.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (int64, error)
}

// SessionMiddleware authenticates requests from the named session cookie.
// With required set, requests without a live session are rejected with 401;
// otherwise they pass through anonymously.
func SessionMiddleware(resolver SessionResolver, cookieName string, required bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				if required {
					writeAuthError(w)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			adminID, err := resolver.ResolveSession(ctx, cookie.Value)
			if err != nil {
				log.Debug("session rejected", "err", err)
				if required {
					writeAuthError(w)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			// Inject into context for downstream handlers.
			ctx = context.WithValue(ctx, CtxKeySessionID, cookie.Value)
			ctx = WithAdminID(ctx, adminID)
			ctx = slogx.WithContext(ctx, log.With("admin_id", adminID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession rejects requests without a live session cookie.
func RequireSession(resolver SessionResolver, cookieName string) Middleware {
	return SessionMiddleware(resolver, cookieName, true)
}

// OptionalSession attaches the admin when a live session cookie is present.
func OptionalSession(resolver SessionResolver, cookieName string) Middleware {
	return SessionMiddleware(resolver, cookieName, false)
}

func writeAuthError(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, "Authentication required")
}
