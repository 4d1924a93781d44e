package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dailydiet/daily-diet-api/internal/domain"
	"github.com/dailydiet/daily-diet-api/internal/repository"
	"gorm.io/gorm"
)

type contextKey string

const (
	UserKey contextKey = "user"
)

// Session resolves the sessionId cookie to a user and attaches it to the
// request context. The two failure cases carry distinct payloads so a caller
// can tell "no session at all" from "session that resolves to nobody".
func Session(cookieName string, userRepo repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w, "Unauthorized Session")
				return
			}

			user, err := userRepo.GetBySessionID(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					unauthorized(w, "Unauthorized User")
					return
				}
				log.Printf("ERROR [middleware.Session] session lookup failed: %v", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser returns the user attached by Session.
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
