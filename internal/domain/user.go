package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é um operador do painel com acesso às rotas administrativas
type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"password,omitempty"`
	Active       bool      `db:"active" json:"active"`
	RoleID       int       `db:"role_id" json:"role_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}
