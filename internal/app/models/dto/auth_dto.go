package dto

import "github.com/akademia/akademia/internal/app/models"

// RegisterRequest represents a user registration request. Field names follow
// the wire vocabulary of the frontend.
type RegisterRequest struct {
	Nome        string          `json:"nome" binding:"required"`
	Usuario     string          `json:"usuario" binding:"required"`
	Email       string          `json:"email" binding:"required,email"`
	Senha       string          `json:"senha" binding:"required"`
	Sexo        *string         `json:"sexo,omitempty"`
	TipoUsuario models.RoleType `json:"tipo_usuario" binding:"required"`
}

// RegisterResponse confirms that registration was accepted. The verification
// token itself is never returned; it only travels by email.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// LoginResponse carries the authenticated user (without the password digest)
// and the signed session token.
type LoginResponse struct {
	User         models.PublicProfile `json:"user"`
	SessionToken string               `json:"sessionToken"`
	TokenType    string               `json:"tokenType" example:"Bearer"`
	ExpiresIn    int64                `json:"expiresIn"`
}

// VerifyEmailResponse confirms account activation
type VerifyEmailResponse struct {
	Message string `json:"message"`
}
