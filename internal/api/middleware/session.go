package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/calperez/auth-service/internal/session"
)

type contextKey string

const sessionKey contextKey = "session"

// CookieName is the cookie that carries the opaque session token.
const CookieName = "session_id"

// Session resolves the session cookie against the store and injects the
// session into the request context. Requests without a live session get 401;
// a failing store is a server fault and gets 500, never 401, so an outage
// cannot be mistaken for a revoked session.
func Session(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				unauthorized(w, "Not authenticated")
				return
			}

			sess, err := store.Get(r.Context(), cookie.Value)
			if err != nil {
				log.Printf("ERROR [middleware.Session] session lookup failed: %v", err)
				serverError(w, "Internal server error")
				return
			}
			if sess == nil {
				unauthorized(w, "Not authenticated")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession returns the session injected by the Session middleware.
func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok
}

func unauthorized(w http.ResponseWriter, detail string) {
	writeDetail(w, http.StatusUnauthorized, detail)
}

func serverError(w http.ResponseWriter, detail string) {
	writeDetail(w, http.StatusInternalServerError, detail)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
