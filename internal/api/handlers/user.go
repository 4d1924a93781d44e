package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dailydiet/daily-diet-api/internal/config"
	"github.com/dailydiet/daily-diet-api/internal/domain"
	"github.com/dailydiet/daily-diet-api/internal/service"
)

type UserHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

func NewUserHandler(authService *service.AuthService, cfg *config.Config) *UserHandler {
	return &UserHandler{authService: authService, cfg: cfg}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			respondError(w, http.StatusConflict, "Email already registered")
			return
		}
		log.Printf("ERROR [user.Register] failed to register user: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.setSessionCookie(w, user.SessionID)
	w.WriteHeader(http.StatusCreated)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("ERROR [user.Login] failed to log in: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Re-issue the stored token; a user keeps one session id for life.
	h.setSessionCookie(w, user.SessionID)
	respondJSON(w, http.StatusOK, UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	})
}

func (h *UserHandler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionCookieMaxAge.Seconds()),
		HttpOnly: true,
	})
}
