package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleUser  = "usuario"
)

// User usuario del sistema. PasswordHash es bcrypt; nunca se expone en respuestas.
type User struct {
	ID           int64
	Name         string
	Email        string // se guarda en minúsculas, único
	PasswordHash string
	Role         string // admin | usuario
	Active       bool
	CreatedAt    time.Time
}
