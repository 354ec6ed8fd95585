package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akademia/akademia/internal/app/models"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByVerificationToken(ctx context.Context, token string) (*models.User, error)
	ActivateByToken(ctx context.Context, userID int64, token string) (bool, error)
	UpdateHabilidades(ctx context.Context, userID int64, habilidades []string) error
	UpdateFotoPerfil(ctx context.Context, userID int64, filename string) error
}

// IPostRepository defines the interface for post-related database operations
type IPostRepository interface {
	Create(ctx context.Context, post *models.Post) (int64, time.Time, error)
	GetFeed(ctx context.Context) ([]models.FeedPost, error)
}

// IProjectRepository defines the interface for project-related database operations
type IProjectRepository interface {
	Create(ctx context.Context, project *models.Project) (int64, time.Time, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
}

// Repositories bundles all repository implementations
type Repositories struct {
	UserRepository    *UserRepository
	PostRepository    *PostRepository
	ProjectRepository *ProjectRepository
}

// NewRepositories creates all repositories over the shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		PostRepository:    NewPostRepository(db),
		ProjectRepository: NewProjectRepository(db),
	}
}
