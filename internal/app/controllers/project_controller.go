package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akademia/akademia/internal/app/models/dto"
	"github.com/akademia/akademia/internal/app/services"
	"github.com/akademia/akademia/internal/middleware"
)

// ProjectController handles portfolio projects
type ProjectController struct {
	projectService services.ProjectService
	logger         zerolog.Logger
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService, logger zerolog.Logger) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		logger:         logger,
	}
}

// CreateProject adds a project to the caller's portfolio
// @Summary Create a project
// @Description Adds a portfolio project owned by the authenticated user
// @Tags projects
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Project information"
// @Success 201 {object} dto.APIResponse{data=models.Project} "Created project"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projetos [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid project payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.CreateProject(ctx.Request.Context(), callerID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", callerID).Msg("Failed to create project")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("projectID", project.ID).Int64("userID", callerID).Msg("Project created")
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: project,
	})
}

// GetProject returns a single project
// @Summary Get a project
// @Description Returns one portfolio project by id
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=models.Project} "Project"
// @Failure 400 {object} dto.ErrorResponse "Invalid project ID"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projetos/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	project, err := c.projectService.GetProject(ctx.Request.Context(), projectID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("projectID", projectID).Msg("Failed to get project")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: project,
	})
}

// ListUserProjects returns a user's portfolio
// @Summary List a user's projects
// @Description Returns every project owned by the given user, newest first
// @Tags projects
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Project} "Projects"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /usuarios/{id}/projetos [get]
func (c *ProjectController) ListUserProjects(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	projects, err := c.projectService.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to list projects")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: projects,
	})
}

// UpdateProject edits a project owned by the caller
// @Summary Update a project
// @Description Updates the provided fields of a project owned by the authenticated user
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Project} "Updated project"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the project owner"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projetos/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid project update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.UpdateProject(ctx.Request.Context(), callerID, projectID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("projectID", projectID).Msg("Failed to update project")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("projectID", projectID).Msg("Project updated")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: project,
	})
}

// DeleteProject removes a project owned by the caller
// @Summary Delete a project
// @Description Deletes a project owned by the authenticated user
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Project deleted"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the project owner"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projetos/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.projectService.DeleteProject(ctx.Request.Context(), callerID, projectID); err != nil {
		c.logger.Warn().Err(err).Int64("projectID", projectID).Msg("Failed to delete project")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("projectID", projectID).Msg("Project deleted")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{
			Message: "Projeto removido com sucesso.",
		},
	})
}
