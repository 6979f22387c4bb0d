package model

import "time"

// Admin is the site owner account; there is normally exactly one.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is one issued admin token.
type Session struct {
	ID        string    `json:"id"`
	AdminID   string    `json:"adminId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
