package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID             int       `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"password,omitempty"`
	Active         bool      `json:"active"`
	RoleID         int       `json:"role_id"`
	OrganizationID int       `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsSuperuser indica se o usuário administra a plataforma inteira
func (u *User) IsSuperuser() bool {
	return u.RoleID == RoleAdmin
}

const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

type RegisterRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	FullName         string `json:"full_name"`
	OrganizationName string `json:"organization_name"`
}

type UserProfile struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
	Plan         Plan   `json:"plan"`
}

type Claims struct {
	UserID         int
	UserEmail      string
	UserRoleID     int
	OrganizationID int
	jwt.RegisteredClaims
}
