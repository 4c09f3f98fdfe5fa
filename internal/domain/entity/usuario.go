package entity

import "time"

// Roles de la aplicación.
const (
	RolAdmin   = "admin"
	RolGerente = "gerente"
	RolMesero  = "mesero"
)

// Usuario cuenta de acceso a la aplicación.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string
	Estado       string // active | disabled
	CreadoEn     time.Time
	ActualizadoEn time.Time
}
