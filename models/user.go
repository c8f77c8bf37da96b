package models

import "time"

const (
	RoleAdmin    = "admin"
	RoleUser     = "user"
	RoleJogadora = "jogadora"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"senha_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}
