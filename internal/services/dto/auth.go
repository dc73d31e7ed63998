package dto

import (
	"time"
)

// --- Auth Requests ---

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	CompanyName string `json:"company_name" validate:"required,min=1"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Auth Responses ---

// UserResponse mirrors the stored user row, password hash included. The
// consuming client is the trusted employer UI; the hash must not be passed
// on to anything less trusted.
type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CompanyName  string    `json:"company_name"`
	CreatedAt    time.Time `json:"created_at"`
}
