package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/calperez/auth-service/internal/api/middleware"
	"github.com/calperez/auth-service/internal/config"
	"github.com/calperez/auth-service/internal/domain"
	"github.com/calperez/auth-service/internal/service"
	"github.com/calperez/auth-service/internal/session"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    session.Store
	cfg         *config.Config
}

func NewAuthHandler(authService *service.AuthService, sessions session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		cfg:         cfg,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

type authResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type validationResponse struct {
	Detail string `json:"detail"`
	Field  string `json:"field"`
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		IsActive:  user.IsActive,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if ve, ok := domain.AsValidation(err); ok {
			writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
				Detail: ve.Message,
				Field:  ve.Field,
			})
			return
		}
		if errors.Is(err, domain.ErrEmailExists) {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Printf("ERROR [handlers.Register] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error during registration")
		return
	}

	if !h.createSession(w, r, user) {
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		Message: "User registered successfully",
		User:    toUserResponse(user),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("ERROR [handlers.Login] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error during login")
		return
	}

	if !h.createSession(w, r, user) {
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Message: "Login successful",
		User:    toUserResponse(user),
	})
}

// Logout is best-effort: whatever happens to the stored session, the cookie
// is cleared and a success response returned, since the client-side intent
// is always satisfiable.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.CookieName); err == nil {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			log.Printf("ERROR [handlers.Logout] session delete failed: %v", err)
		}
	}

	clearSessionCookie(w, h.cfg.Debug)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.authService.GetCurrentUser(r.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// The session points at a user that is gone or deactivated;
			// invalidate it so the token cannot be replayed.
			if derr := h.sessions.Delete(r.Context(), sess.Token); derr != nil {
				log.Printf("ERROR [handlers.Me] session delete failed: %v", derr)
			}
			clearSessionCookie(w, h.cfg.Debug)
			writeError(w, http.StatusUnauthorized, "User not found or inactive")
			return
		}
		log.Printf("ERROR [handlers.Me] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) createSession(w http.ResponseWriter, r *http.Request, user *domain.User) bool {
	token, err := h.sessions.Create(r.Context(), user.ID, user.Email)
	if err != nil {
		log.Printf("ERROR [handlers.createSession] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return false
	}
	setSessionCookie(w, token, h.cfg.SessionTTL, h.cfg.Debug)
	return true
}
