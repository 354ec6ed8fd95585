package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAluno     RoleType = "ALUNO"
	RoleProfessor RoleType = "PROFESSOR"
)

// Valid reports whether the role is one of the known values
func (r RoleType) Valid() bool {
	return r == RoleAluno || r == RoleProfessor
}

// AccountStatus defines the account lifecycle state. Accounts are created
// PENDENTE and transition to ATIVO exactly once, on email verification.
type AccountStatus string

const (
	StatusPendente AccountStatus = "PENDENTE"
	StatusAtivo    AccountStatus = "ATIVO"
)
