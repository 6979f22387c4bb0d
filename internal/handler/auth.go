package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/database"
	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/utils"
)

const sessionDuration = 7 * 24 * time.Hour

// Login checks the admin credentials and issues a session token.
func Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	var admin model.Admin
	err := database.DB.QueryRow(r.Context(),
		`SELECT id, email, password_hash, created_at FROM admins WHERE email=$1`,
		payload.Email,
	).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(payload.Password)) != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	session := model.Session{
		ID:        uuid.NewString(),
		AdminID:   admin.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(sessionDuration),
	}
	_, err = database.DB.Exec(r.Context(), `
		INSERT INTO sessions (id, admin_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())`,
		session.ID, session.AdminID, session.Token, session.ExpiresAt,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"token":     session.Token,
		"expiresAt": session.ExpiresAt,
		"admin":     admin,
	})
}

// Logout revokes the presented session token.
func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := utils.GetToken(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	_, err = database.DB.Exec(r.Context(), `DELETE FROM sessions WHERE token=$1`, token)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not revoke session", err)
		return
	}

	utils.Message(w, "logged out")
}
