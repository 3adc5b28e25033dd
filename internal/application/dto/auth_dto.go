package dto

import (
	"time"

	"github.com/utm-ti/inventario-api/internal/domain/entity"
)

// RegisterRequest registro de usuario.
type RegisterRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"rol"` // opcional; por defecto "usuario"
}

// LoginRequest inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDTO usuario sin campos sensibles.
type UserDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"fecha_creacion"`
}

// LoginResponse token más datos del usuario.
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"usuario"`
}

// NewUserDTO mapea la entidad a DTO (sin hash de contraseña).
func NewUserDTO(u *entity.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
