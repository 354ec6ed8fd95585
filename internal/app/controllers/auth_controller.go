// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akademia/akademia/internal/app/models/dto"
	"github.com/akademia/akademia/internal/app/services"
	"github.com/akademia/akademia/internal/middleware"
)

// AuthController handles registration, login and email verification
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a pending account and sends a verification link to the institutional email.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "Registration accepted, verification email sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or non-institutional email"
// @Failure 409 {object} dto.ErrorResponse "Email or username already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cadastrar [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.logger.Info().
		Str("email", req.Email).
		Str("usuario", req.Usuario).
		Str("tipoUsuario", string(req.TipoUsuario)).
		Msg("User registration request received")

	registerResponse, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Failed to register user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("email", req.Email).
		Int64("userID", registerResponse.UserID).
		Msg("User registration initiated, verification email queued")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: registerResponse,
	})
}

// Login handles user login
// @Summary User login
// @Description Authenticates an activated account and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Account not activated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	loginResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("email", req.Email).
		Int64("userID", loginResponse.User.ID).
		Msg("User logged in successfully")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: loginResponse,
	})
}

// VerifyEmail handles email verification
// @Summary Verify email address
// @Description Activates a pending account using the single-use token from the verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param token query string true "Verification token sent to the user's email"
// @Success 200 {object} dto.APIResponse{data=dto.VerifyEmailResponse} "Account activated"
// @Failure 400 {object} dto.ErrorResponse "Missing or expired token"
// @Failure 404 {object} dto.ErrorResponse "Token not found or already used"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /verificar [get]
func (c *AuthController) VerifyEmail(ctx *gin.Context) {
	token := ctx.Query("token")
	if token == "" {
		c.logger.Warn().Msg("Missing verification token")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing verification token")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.VerifyEmail(ctx.Request.Context(), token); err != nil {
		c.logger.Warn().Err(err).Msg("Email verification failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Msg("Email verified successfully")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.VerifyEmailResponse{
			Message: "Conta ativada com sucesso! Você já pode fazer login.",
		},
	})
}
