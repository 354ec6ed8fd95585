package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akademia/akademia/internal/app/models"
	"github.com/akademia/akademia/internal/pkg/apperrors"
)

// userColumns lists the columns scanned into a models.User
var userColumns = []string{
	"id", "nome_completo", "nome_usuario", "email", "senha", "sexo",
	"tipo_usuario", "status", "foto_perfil", "habilidades",
	"token_verificacao", "token_expiracao", "data_criacao",
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user row. Uniqueness of email and username is
// enforced by the store; violations surface as pgconn errors for the
// service layer to map.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := squirrel.Insert("usuarios").
		Columns("nome_completo", "nome_usuario", "email", "senha", "sexo",
			"tipo_usuario", "status", "habilidades", "token_verificacao", "token_expiracao").
		Values(user.NomeCompleto, user.NomeUsuario, user.Email, user.Senha, user.Sexo,
			user.TipoUsuario, user.Status, user.Habilidades, user.TokenVerificacao, user.TokenExpiracao).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByVerificationToken retrieves the user holding the given token
func (r *UserRepository) GetByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"token_verificacao": token})
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("usuarios").
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.NomeCompleto, &user.NomeUsuario, &user.Email, &user.Senha,
		&user.Sexo, &user.TipoUsuario, &user.Status, &user.FotoPerfil, &user.Habilidades,
		&user.TokenVerificacao, &user.TokenExpiracao, &user.DataCriacao)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return user, nil
}

// ActivateByToken transitions the account to ATIVO and clears the token pair
// in one statement keyed on both the user id and the token value. The store's
// atomic compare-and-update makes the token single-use: a concurrent consumer
// sees zero rows affected.
func (r *UserRepository) ActivateByToken(ctx context.Context, userID int64, token string) (bool, error) {
	query := squirrel.Update("usuarios").
		Set("status", models.StatusAtivo).
		Set("token_verificacao", nil).
		Set("token_expiracao", nil).
		Where(squirrel.Eq{"id": userID, "token_verificacao": token}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("error activating account: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// UpdateHabilidades replaces the user's skills list
func (r *UserRepository) UpdateHabilidades(ctx context.Context, userID int64, habilidades []string) error {
	query := squirrel.Update("usuarios").
		Set("habilidades", habilidades).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating skills: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateFotoPerfil sets the user's profile photo reference
func (r *UserRepository) UpdateFotoPerfil(ctx context.Context, userID int64, filename string) error {
	query := squirrel.Update("usuarios").
		Set("foto_perfil", filename).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating profile photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
