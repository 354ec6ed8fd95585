package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akademia/akademia/internal/app/models"
)

// PostRepository handles database operations for feed posts
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post and returns its id and creation timestamp
func (r *PostRepository) Create(ctx context.Context, post *models.Post) (int64, time.Time, error) {
	query := squirrel.Insert("publicacoes").
		Columns("usuario_id", "conteudo", "imagem_url").
		Values(post.UsuarioID, post.Conteudo, post.ImagemURL).
		Suffix("RETURNING id, data_criacao").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id, &createdAt); err != nil {
		return 0, time.Time{}, fmt.Errorf("error creating post: %w", err)
	}

	return id, createdAt, nil
}

// GetFeed returns all posts joined with their author's name and photo,
// newest first. An empty store yields an empty slice, not an error.
func (r *PostRepository) GetFeed(ctx context.Context) ([]models.FeedPost, error) {
	query := squirrel.Select(
		"p.id", "p.usuario_id", "p.conteudo", "p.imagem_url", "p.data_criacao",
		"u.nome_completo", "u.foto_perfil").
		From("publicacoes p").
		Join("usuarios u ON u.id = p.usuario_id").
		OrderBy("p.data_criacao DESC").
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

	posts := make([]models.FeedPost, 0)
	for rows.Next() {
		var post models.FeedPost
		err := rows.Scan(
			&post.ID,
			&post.UsuarioID,
			&post.Conteudo,
			&post.ImagemURL,
			&post.DataCriacao,
			&post.NomeCompleto,
			&post.FotoPerfil,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return posts, nil
}
