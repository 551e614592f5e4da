package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin        = "admin"
	RoleResponsabile = "responsabile"
	RoleMagazziniere = "magazziniere"
	RoleCommerciale  = "commerciale"
)

// User es un operador del sistema.
type User struct {
	ID           string
	Email        string // único
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
