package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akademia/akademia/internal/app/models"
	"github.com/akademia/akademia/internal/app/models/dto"
	"github.com/akademia/akademia/internal/pkg/apperrors"
)

func newTestProjectService() (ProjectService, *fakeProjectRepo) {
	repo := newFakeProjectRepo()
	return NewProjectService(repo, zerolog.Nop()), repo
}

func createProject(t *testing.T, svc ProjectService, ownerID int64) *models.Project {
	t.Helper()
	project, err := svc.CreateProject(context.Background(), ownerID, &dto.CreateProjectRequest{
		Titulo:          "API de Biblioteca",
		Descricao:       strPtr("Sistema de empréstimos"),
		LinkRepositorio: strPtr("https://github.com/aluno/biblioteca"),
	})
	require.NoError(t, err)
	return project
}

func TestCreateProject(t *testing.T) {
	svc, _ := newTestProjectService()

	project := createProject(t, svc, 5)
	assert.Equal(t, int64(1), project.ID)
	assert.Equal(t, int64(5), project.UsuarioID)
	assert.Equal(t, "API de Biblioteca", project.Titulo)
	assert.False(t, project.DataCriacao.IsZero())
}

func TestCreateProject_BlankTitleRejected(t *testing.T) {
	svc, _ := newTestProjectService()

	_, err := svc.CreateProject(context.Background(), 5, &dto.CreateProjectRequest{Titulo: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetProject(t *testing.T) {
	svc, _ := newTestProjectService()
	created := createProject(t, svc, 5)

	project, err := svc.GetProject(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Titulo, project.Titulo)
}

func TestGetProject_NotFound(t *testing.T) {
	svc, _ := newTestProjectService()

	_, err := svc.GetProject(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestListByUser(t *testing.T) {
	svc, _ := newTestProjectService()
	createProject(t, svc, 5)
	createProject(t, svc, 5)
	createProject(t, svc, 6)

	projects, err := svc.ListByUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	projects, err = svc.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestUpdateProject_MergesFields(t *testing.T) {
	svc, _ := newTestProjectService()
	created := createProject(t, svc, 5)

	updated, err := svc.UpdateProject(context.Background(), 5, created.ID, &dto.UpdateProjectRequest{
		Descricao:    strPtr("Descrição nova"),
		LinkProducao: strPtr("https://biblioteca.app"),
	})
	require.NoError(t, err)
	// Untouched fields keep their stored values
	assert.Equal(t, "API de Biblioteca", updated.Titulo)
	require.NotNil(t, updated.Descricao)
	assert.Equal(t, "Descrição nova", *updated.Descricao)
	require.NotNil(t, updated.LinkProducao)
	require.NotNil(t, updated.LinkRepositorio)
}

func TestUpdateProject_NotOwnerForbidden(t *testing.T) {
	svc, _ := newTestProjectService()
	created := createProject(t, svc, 5)

	_, err := svc.UpdateProject(context.Background(), 6, created.ID, &dto.UpdateProjectRequest{
		Descricao: strPtr("tentativa"),
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateProject_NotFound(t *testing.T) {
	svc, _ := newTestProjectService()

	_, err := svc.UpdateProject(context.Background(), 5, 999, &dto.UpdateProjectRequest{})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestUpdateProject_BlankTitleRejected(t *testing.T) {
	svc, _ := newTestProjectService()
	created := createProject(t, svc, 5)

	_, err := svc.UpdateProject(context.Background(), 5, created.ID, &dto.UpdateProjectRequest{
		Titulo: strPtr("  "),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteProject(t *testing.T) {
	svc, repo := newTestProjectService()
	created := createProject(t, svc, 5)

	require.NoError(t, svc.DeleteProject(context.Background(), 5, created.ID))

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestDeleteProject_NotOwnerForbidden(t *testing.T) {
	svc, repo := newTestProjectService()
	created := createProject(t, svc, 5)

	err := svc.DeleteProject(context.Background(), 6, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// Still there
	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestDeleteProject_NotFound(t *testing.T) {
	svc, _ := newTestProjectService()

	err := svc.DeleteProject(context.Background(), 5, 999)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
