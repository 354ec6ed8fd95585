package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/akademia/akademia/internal/app/models"
	"github.com/akademia/akademia/internal/app/models/dto"
	"github.com/akademia/akademia/internal/app/repositories"
	"github.com/akademia/akademia/internal/pkg/apperrors"
	"github.com/akademia/akademia/internal/pkg/auth"
	"github.com/akademia/akademia/internal/pkg/dberrors"
	"github.com/akademia/akademia/internal/pkg/email"
)

// AuthService handles registration, email verification and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// AuthConfig carries the auth policy constants, resolved once at startup
type AuthConfig struct {
	AllowedEmailSuffixes []string
	VerificationTokenTTL time.Duration
	SessionExpiration    time.Duration
}

type authService struct {
	userRepo     repositories.IUserRepository
	emailService email.EmailService
	jwtService   *auth.JWTService
	config       AuthConfig
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	emailService email.EmailService,
	jwtService *auth.JWTService,
	config AuthConfig,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		emailService: emailService,
		jwtService:   jwtService,
		config:       config,
		logger:       logger,
	}
}

// validateAllowedEmail checks the institutional allow-list. This is a hard
// business rule: only school-domain addresses may register.
func (s *authService) validateAllowedEmail(emailAddr string) error {
	normalized := strings.ToLower(strings.TrimSpace(emailAddr))
	for _, suffix := range s.config.AllowedEmailSuffixes {
		suffix = strings.ToLower(strings.TrimPrefix(suffix, "@"))
		if strings.HasSuffix(normalized, "@"+suffix) || strings.HasSuffix(normalized, "."+suffix) {
			return nil
		}
	}
	return apperrors.NewCustomError(apperrors.ErrInvalidEmail,
		"email must belong to an allowed institutional domain")
}

// Register creates a PENDENTE account and dispatches the verification email.
// Email dispatch is fire-and-forget: a delivery failure is logged but never
// rolls back the committed account row.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.Usuario) == "" ||
		strings.TrimSpace(req.Email) == "" || req.Senha == "" {
		return nil, apperrors.NewValidationError("all required fields must be filled")
	}

	if !req.TipoUsuario.Valid() {
		return nil, apperrors.NewValidationError("tipo_usuario must be ALUNO or PROFESSOR")
	}

	if err := s.validateAllowedEmail(req.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Senha)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	token, err := auth.GenerateVerificationToken()
	if err != nil {
		return nil, fmt.Errorf("error generating verification token: %w", err)
	}
	expiry := time.Now().Add(s.config.VerificationTokenTTL)

	user := &models.User{
		NomeCompleto: strings.TrimSpace(req.Nome),
		NomeUsuario:  strings.TrimSpace(req.Usuario),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Senha:        hashedPassword,
		Sexo:         req.Sexo,
		TipoUsuario:  req.TipoUsuario,
		Status:       models.StatusPendente,
		// The skills column is NOT NULL; a nil slice would encode as SQL NULL
		Habilidades:      []string{},
		TokenVerificacao: &token,
		TokenExpiracao:   &expiry,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	go func(toEmail, toName, token string) {
		if err := s.emailService.SendVerificationEmail(toEmail, toName, token); err != nil {
			s.logger.Error().Err(err).Str("email", toEmail).Msg("Failed to send verification email")
		}
	}(user.Email, user.NomeCompleto, token)

	return &dto.RegisterResponse{
		Message: "Cadastro realizado com sucesso! Verifique seu e-mail para ativar a conta.",
		UserID:  userID,
	}, nil
}

// VerifyEmail consumes a verification token. An unknown token is NotFound;
// an expired one is rejected and left in place (there is no resend path).
func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return apperrors.NewValidationError("verification token is required")
	}

	user, err := s.userRepo.GetByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrVerificationTokenNotFound
		}
		return fmt.Errorf("error looking up verification token: %w", err)
	}

	if user.TokenExpiracao == nil || time.Now().After(*user.TokenExpiracao) {
		return apperrors.ErrVerificationTokenExpired
	}

	activated, err := s.userRepo.ActivateByToken(ctx, user.ID, token)
	if err != nil {
		return fmt.Errorf("error activating account: %w", err)
	}
	if !activated {
		// Consumed concurrently between lookup and update
		return apperrors.ErrVerificationTokenNotFound
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Account activated")
	return nil
}

// Login authenticates a user and issues a session token. An unknown email
// and a wrong password produce the same outcome; an unverified account is
// reported separately so the user checks their inbox instead of retyping.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Senha == "" {
		return nil, apperrors.NewValidationError("email and senha are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if user.Status != models.StatusAtivo {
		return nil, apperrors.ErrAccountNotActivated
	}

	if !auth.CheckPassword(user.Senha, req.Senha) {
		return nil, apperrors.ErrInvalidCredentials
	}

	sessionToken, err := s.jwtService.GenerateSessionToken(user.ID, string(user.TipoUsuario))
	if err != nil {
		return nil, fmt.Errorf("error generating session token: %w", err)
	}

	return &dto.LoginResponse{
		User:         user.PublicProfile(),
		SessionToken: sessionToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.config.SessionExpiration.Seconds()),
	}, nil
}
