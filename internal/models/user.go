package models

import "time"

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleCollaborator Role = "collaborator"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCollaborator:
		return true
	}
	return false
}

// Usuário do sistema (staff da clínica). Contas são removidas de forma
// definitiva, sem soft delete.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"size:20;not null;default:'collaborator'" json:"role"`
	Active       bool   `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
