package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akademia/akademia/internal/app/models/dto"
	"github.com/akademia/akademia/internal/app/services"
	"github.com/akademia/akademia/internal/middleware"
)

// UserController handles public profiles and profile editing
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// parseIDParam reads a positive int64 path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// GetProfile returns a user's public profile
// @Summary Get public profile
// @Description Returns the public profile of an activated user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.PublicProfile} "Public profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /usuarios/{id} [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.userService.GetPublicProfile(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to get public profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: profile,
	})
}

// UpdateProfile replaces the caller's skills list
// @Summary Update profile skills
// @Description Replaces the skills list of the authenticated user's own profile
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateProfileRequest true "New skills list"
// @Success 200 {object} dto.APIResponse{data=models.PublicProfile} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the profile owner"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /usuarios/{id} [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	targetID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.userService.UpdateSkills(ctx.Request.Context(), callerID, targetID, req.Habilidades)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", targetID).Msg("Failed to update profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", targetID).Msg("Profile skills updated")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: profile,
	})
}

// UploadPhoto stores a new profile photo for the caller
// @Summary Upload profile photo
// @Description Stores an uploaded image and sets it as the user's profile photo
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "User ID"
// @Param foto formData file true "Profile photo"
// @Success 200 {object} dto.APIResponse{data=dto.UploadPhotoResponse} "Stored photo reference"
// @Failure 400 {object} dto.ErrorResponse "Missing file"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the profile owner"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /usuarios/{id}/foto [post]
func (c *UserController) UploadPhoto(ctx *gin.Context) {
	targetID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := ctx.FormFile("foto")
	if err != nil {
		c.logger.Warn().Err(err).Msg("Profile photo missing from form data")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Profile photo file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	storedPath, err := c.userService.UpdatePhoto(ctx.Request.Context(), callerID, targetID, fileHeader)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", targetID).Msg("Failed to upload profile photo")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", targetID).Str("foto", storedPath).Msg("Profile photo updated")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.UploadPhotoResponse{
			FotoPerfil: storedPath,
		},
	})
}
