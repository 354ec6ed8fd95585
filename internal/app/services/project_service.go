package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/akademia/akademia/internal/app/models"
	"github.com/akademia/akademia/internal/app/models/dto"
	"github.com/akademia/akademia/internal/app/repositories"
	"github.com/akademia/akademia/internal/pkg/apperrors"
)

// ProjectService handles portfolio projects
type ProjectService interface {
	CreateProject(ctx context.Context, userID int64, req *dto.CreateProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, projectID int64) (*models.Project, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Project, error)
	UpdateProject(ctx context.Context, callerID, projectID int64, req *dto.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, callerID, projectID int64) error
}

type projectService struct {
	projectRepo repositories.IProjectRepository
	logger      zerolog.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repositories.IProjectRepository, logger zerolog.Logger) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateProject inserts a project owned by the authenticated user
func (s *projectService) CreateProject(ctx context.Context, userID int64, req *dto.CreateProjectRequest) (*models.Project, error) {
	if strings.TrimSpace(req.Titulo) == "" {
		return nil, apperrors.NewValidationError("titulo is required")
	}

	project := &models.Project{
		UsuarioID:       userID,
		Titulo:          strings.TrimSpace(req.Titulo),
		Descricao:       normalizeOptional(req.Descricao),
		ImagemURL:       normalizeOptional(req.ImagemURL),
		LinkRepositorio: normalizeOptional(req.LinkRepositorio),
		LinkProducao:    normalizeOptional(req.LinkProducao),
	}

	id, createdAt, err := s.projectRepo.Create(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}

	project.ID = id
	project.DataCriacao = createdAt
	return project, nil
}

// GetProject retrieves a single project
func (s *projectService) GetProject(ctx context.Context, projectID int64) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("error fetching project: %w", err)
	}
	if project == nil {
		return nil, apperrors.NewNotFoundError("project not found")
	}
	return project, nil
}

// ListByUser returns a user's projects, newest first
func (s *projectService) ListByUser(ctx context.Context, userID int64) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	return projects, nil
}

// UpdateProject mutates a project after re-checking ownership against the
// stored row. The id in the request path is untrusted; the current owner is
// always re-fetched before the write.
func (s *projectService) UpdateProject(ctx context.Context, callerID, projectID int64, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.fetchOwned(ctx, callerID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Titulo != nil {
		if strings.TrimSpace(*req.Titulo) == "" {
			return nil, apperrors.NewValidationError("titulo cannot be empty")
		}
		project.Titulo = strings.TrimSpace(*req.Titulo)
	}
	if req.Descricao != nil {
		project.Descricao = normalizeOptional(req.Descricao)
	}
	if req.ImagemURL != nil {
		project.ImagemURL = normalizeOptional(req.ImagemURL)
	}
	if req.LinkRepositorio != nil {
		project.LinkRepositorio = normalizeOptional(req.LinkRepositorio)
	}
	if req.LinkProducao != nil {
		project.LinkProducao = normalizeOptional(req.LinkProducao)
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("error updating project: %w", err)
	}

	return project, nil
}

// DeleteProject removes a project after re-checking ownership
func (s *projectService) DeleteProject(ctx context.Context, callerID, projectID int64) error {
	if _, err := s.fetchOwned(ctx, callerID, projectID); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}

	return nil
}

// fetchOwned loads the project and verifies the caller owns it
func (s *projectService) fetchOwned(ctx context.Context, callerID, projectID int64) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("error fetching project: %w", err)
	}
	if project == nil {
		return nil, apperrors.NewNotFoundError("project not found")
	}
	if project.UsuarioID != callerID {
		return nil, apperrors.NewForbiddenError("not the owner of this project")
	}
	return project, nil
}
