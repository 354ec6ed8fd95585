package models

import (
	"time"
)

// User defines the user model based on the 'usuarios' table
type User struct {
	ID           int64         `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	NomeCompleto string        `json:"nome_completo" db:"nome_completo" example:"Alice Pereira"` // Full name
	NomeUsuario  string        `json:"nome_usuario" db:"nome_usuario" example:"alice.pereira"`   // Unique username
	Email        string        `json:"email" db:"email" example:"alice@fatec.sp.gov.br"`         // Institutional email address
	Senha        string        `json:"-" db:"senha"`                                             // Hashed password (excluded from JSON)
	Sexo         *string       `json:"sexo,omitempty" db:"sexo"`                                 // Gender (optional)
	TipoUsuario  RoleType      `json:"tipo_usuario" db:"tipo_usuario" example:"ALUNO"`           // Role (ALUNO or PROFESSOR)
	Status       AccountStatus `json:"status" db:"status" example:"PENDENTE"`                    // Account status
	FotoPerfil   *string       `json:"foto_perfil,omitempty" db:"foto_perfil"`                   // Profile photo filename (nullable)
	Habilidades  []string      `json:"habilidades,omitempty" db:"habilidades"`                   // Free-text skills list
	// Verification token pair: both set while the account is PENDENTE, both
	// cleared on activation.
	TokenVerificacao *string    `json:"-" db:"token_verificacao"`
	TokenExpiracao   *time.Time `json:"-" db:"token_expiracao"`
	DataCriacao      time.Time  `json:"data_criacao" db:"data_criacao" example:"2025-08-01T10:00:00Z"`
}

// PublicProfile strips credential and verification fields for outward use.
// The password digest is never exposed; the json tag on Senha already hides
// it, but profile responses also omit the token metadata.
type PublicProfile struct {
	ID           int64    `json:"id"`
	NomeCompleto string   `json:"nome_completo"`
	NomeUsuario  string   `json:"nome_usuario"`
	Email        string   `json:"email"`
	TipoUsuario  RoleType `json:"tipo_usuario"`
	FotoPerfil   *string  `json:"foto_perfil,omitempty"`
	Habilidades  []string `json:"habilidades,omitempty"`
}

// PublicProfile builds the outward-facing view of the user
func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:           u.ID,
		NomeCompleto: u.NomeCompleto,
		NomeUsuario:  u.NomeUsuario,
		Email:        u.Email,
		TipoUsuario:  u.TipoUsuario,
		FotoPerfil:   u.FotoPerfil,
		Habilidades:  u.Habilidades,
	}
}
