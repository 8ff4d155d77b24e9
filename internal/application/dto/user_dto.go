package dto

import (
	"time"

	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"
)

// RegisterRequest alta de usuario (solo superadmin).
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario para la API. Capabilities se deriva del rol.
type UserResponse struct {
	ID           string              `json:"id"`
	Email        string              `json:"email"`
	Name         string              `json:"name"`
	Role         string              `json:"role"`
	Capabilities []entity.Capability `json:"capabilities"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRoleRequest cambio de rol de un usuario.
type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}
