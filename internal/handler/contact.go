package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/database"
	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/utils"
)

// CreateContactMessage receives a visitor message from the contact form.
func CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var m model.ContactMessage
	if err := utils.DecodeJSON(r, &m); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if m.Name == "" || m.Message == "" {
		utils.Error(w, http.StatusBadRequest, "name and message are required")
		return
	}
	if !strings.Contains(m.Email, "@") {
		utils.Error(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	err := database.DB.QueryRow(r.Context(), `
		INSERT INTO contact_messages (id, name, email, subject, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, false, NOW())
		RETURNING id, created_at`,
		uuid.NewString(), m.Name, m.Email, m.Subject, m.Message,
	).Scan(&m.ID, &m.CreatedAt)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save message", err)
		return
	}

	utils.Created(w, m)
}

// GetContactMessages lists received messages for the admin inbox.
func GetContactMessages(w http.ResponseWriter, r *http.Request) {
	rows, err := database.DB.Query(r.Context(), `
		SELECT id, name, email, COALESCE(subject,'') AS subject, message, read, created_at
		FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query messages", err)
		return
	}
	defer rows.Close()

	messages := []model.ContactMessage{}
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan message row", err)
			return
		}
		messages = append(messages, m)
	}

	utils.Success(w, messages)
}

// MarkContactMessageRead flags a message as handled.
func MarkContactMessageRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tag, err := database.DB.Exec(r.Context(),
		`UPDATE contact_messages SET read=true WHERE id=$1`, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update message", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "message not found")
		return
	}

	utils.Message(w, "message marked as read")
}

// SubscribeNewsletter records an opted-in email address.
func SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var s model.NewsletterSubscriber
	if err := utils.DecodeJSON(r, &s); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if !strings.Contains(s.Email, "@") {
		utils.Error(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	err := database.DB.QueryRow(r.Context(), `
		INSERT INTO newsletter_subscribers (id, email, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (email) DO UPDATE SET email=EXCLUDED.email
		RETURNING id, created_at`,
		uuid.NewString(), strings.ToLower(s.Email),
	).Scan(&s.ID, &s.CreatedAt)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not subscribe", err)
		return
	}

	utils.Created(w, s)
}
