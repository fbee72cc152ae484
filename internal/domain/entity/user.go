package entity

import "time"

// Papéis válidos para User.
const (
	RoleMaster   = "MASTER" // operador da plataforma, sem tenant
	RoleAdmin    = "ADMIN"  // dono da oficina
	RoleMechanic = "MECHANIC"
)

// User representa um usuário do sistema. CompanyID fica vazio apenas para MASTER.
type User struct {
	ID           string
	CompanyID    string
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca texto puro no domínio
	Role         string // MASTER, ADMIN, MECHANIC
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
