package handlers

import (
	"net/http"
	"time"

	"github.com/calperez/auth-service/internal/api/middleware"
)

// setSessionCookie attaches the session token to the response. The cookie is
// HttpOnly and SameSite=Lax; Secure is dropped only in debug mode so local
// plain-HTTP development keeps working.
func setSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration, debug bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   !debug,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, debug bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !debug,
		SameSite: http.SameSiteLaxMode,
	})
}
