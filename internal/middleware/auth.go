package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/database"
	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/utils"
	"github.com/jackc/pgx/v5"
)

// Context keys
type contextKey string

const adminContextKey = contextKey("admin")

// AdminAuth validates the session token and injects the admin into the
// request context. Every mutating route sits behind it.
func AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.GetToken(r)
		if err != nil {
			utils.Error(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		admin, err := validateToken(r.Context(), token)
		if err != nil {
			utils.Error(w, http.StatusUnauthorized, "invalid or expired token", err)
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey, *admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validateToken resolves a session token to its admin account.
func validateToken(ctx context.Context, token string) (*model.Admin, error) {
	var admin model.Admin

	err := database.DB.QueryRow(ctx, `
		SELECT a.id, a.email, a.created_at
		FROM admins a
		JOIN sessions s ON a.id = s.admin_id
		WHERE s.token = $1 AND s.expires_at > NOW()`,
		token,
	).Scan(&admin.ID, &admin.Email, &admin.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("token not found or expired")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &admin, nil
}

// AdminFromContext retrieves the authenticated admin from the request.
func AdminFromContext(r *http.Request) (model.Admin, error) {
	admin, ok := r.Context().Value(adminContextKey).(model.Admin)
	if !ok {
		return model.Admin{}, fmt.Errorf("admin not found in context")
	}
	return admin, nil
}

// IsAdmin reports whether the request carries a valid admin session, for
// public routes that behave differently when the owner is logged in.
func IsAdmin(r *http.Request) bool {
	token, err := utils.GetToken(r)
	if err != nil {
		return false
	}
	_, err = validateToken(r.Context(), token)
	return err == nil
}
