package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akademia/akademia/internal/app/models"
)

// ProjectRepository handles database operations for portfolio projects
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project and returns its id and creation timestamp
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) (int64, time.Time, error) {
	query := squirrel.Insert("projetos").
		Columns("usuario_id", "titulo", "descricao", "imagem_url", "link_repositorio", "link_producao").
		Values(project.UsuarioID, project.Titulo, project.Descricao, project.ImagemURL,
			project.LinkRepositorio, project.LinkProducao).
		Suffix("RETURNING id, data_criacao").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id, &createdAt); err != nil {
		return 0, time.Time{}, fmt.Errorf("error creating project: %w", err)
	}

	return id, createdAt, nil
}

// GetByID retrieves a project by ID. Returns nil when no row exists.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := squirrel.Select("id", "usuario_id", "titulo", "descricao", "imagem_url",
		"link_repositorio", "link_producao", "data_criacao").
		From("projetos").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var project models.Project
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&project.ID,
		&project.UsuarioID,
		&project.Titulo,
		&project.Descricao,
		&project.ImagemURL,
		&project.LinkRepositorio,
		&project.LinkProducao,
		&project.DataCriacao,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &project, nil
}

// ListByUser returns a user's projects, newest first
func (r *ProjectRepository) ListByUser(ctx context.Context, userID int64) ([]models.Project, error) {
	query := squirrel.Select("id", "usuario_id", "titulo", "descricao", "imagem_url",
		"link_repositorio", "link_producao", "data_criacao").
		From("projetos").
		Where(squirrel.Eq{"usuario_id": userID}).
		OrderBy("data_criacao DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.UsuarioID,
			&project.Titulo,
			&project.Descricao,
			&project.ImagemURL,
			&project.LinkRepositorio,
			&project.LinkProducao,
			&project.DataCriacao,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return projects, nil
}

// Update rewrites the mutable project fields
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := squirrel.Update("projetos").
		Set("titulo", project.Titulo).
		Set("descricao", project.Descricao).
		Set("imagem_url", project.ImagemURL).
		Set("link_repositorio", project.LinkRepositorio).
		Set("link_producao", project.LinkProducao).
		Where(squirrel.Eq{"id": project.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error updating project: %w", err)
	}

	return nil
}

// Delete removes a project
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("projetos").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}

	return nil
}
