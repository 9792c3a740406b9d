package model

import "time"

// Admin is an account allowed into the dashboard. Every admin has full rights.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
