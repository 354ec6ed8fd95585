package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akademia/akademia/internal/app/models"
	"github.com/akademia/akademia/internal/app/models/dto"
	"github.com/akademia/akademia/internal/pkg/apperrors"
	"github.com/akademia/akademia/internal/pkg/auth"
)

func newTestAuthService(userRepo *fakeUserRepo, emailSvc *fakeEmailService) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		SessionTokenExp: 8 * time.Hour,
		TokenIssuer:     "akademia-test",
	})
	return NewAuthService(userRepo, emailSvc, jwtService, AuthConfig{
		AllowedEmailSuffixes: []string{"fatec.sp.gov.br", "etec.sp.gov.br"},
		VerificationTokenTTL: time.Hour,
		SessionExpiration:    8 * time.Hour,
	}, zerolog.Nop())
}

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Nome:        "Alice Pereira",
		Usuario:     "alice.pereira",
		Email:       "alice@fatec.sp.gov.br",
		Senha:       "senha-forte-123",
		TipoUsuario: models.RoleAluno,
	}
}

func TestRegister_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	emailSvc := newFakeEmailService()
	svc := newTestAuthService(userRepo, emailSvc)

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.UserID)
	assert.NotEmpty(t, resp.Message)

	user, err := userRepo.GetByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendente, user.Status)
	assert.NotEqual(t, "senha-forte-123", user.Senha)
	require.NotNil(t, user.TokenVerificacao)
	assert.Len(t, *user.TokenVerificacao, 64)
	require.NotNil(t, user.TokenExpiracao)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *user.TokenExpiracao, time.Minute)

	require.True(t, emailSvc.waitForSend(2*time.Second), "verification email was not dispatched")
	sent, ok := emailSvc.lastSent()
	require.True(t, ok)
	assert.Equal(t, "alice@fatec.sp.gov.br", sent.toEmail)
	assert.Equal(t, *user.TokenVerificacao, sent.token)
}

func TestRegister_StoresEmptySkillsList(t *testing.T) {
	userRepo := newFakeUserRepo()
	emailSvc := newFakeEmailService()
	svc := newTestAuthService(userRepo, emailSvc)

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	user, err := userRepo.GetByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	require.NotNil(t, user.Habilidades, "skills must be an empty list, never NULL")
	assert.Empty(t, user.Habilidades)
}

func TestRegister_RejectsOutsideDomains(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeEmailService())

	req := validRegisterRequest()
	req.Email = "alice@gmail.com"

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
}

func TestRegister_AcceptsSubdomains(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeEmailService())

	req := validRegisterRequest()
	req.Email = "aluno@sp123.etec.sp.gov.br"

	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserID)
}

func TestRegister_InvalidRole(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeEmailService())

	req := validRegisterRequest()
	req.TipoUsuario = "DIRETOR"

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeEmailService())

	req := validRegisterRequest()
	req.Senha = ""

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeEmailService())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_EmailFailureDoesNotRollBack(t *testing.T) {
	userRepo := newFakeUserRepo()
	emailSvc := newFakeEmailService()
	emailSvc.err = assert.AnError
	svc := newTestAuthService(userRepo, emailSvc)

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	require.True(t, emailSvc.waitForSend(2*time.Second))

	// The account row stays even though delivery failed
	user, err := userRepo.GetByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendente, user.Status)
}

func registerAndGetToken(t *testing.T, svc AuthService, userRepo *fakeUserRepo) (int64, string) {
	t.Helper()
	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	user, err := userRepo.GetByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	require.NotNil(t, user.TokenVerificacao)
	return user.ID, *user.TokenVerificacao
}

func TestVerifyEmail_ActivatesAccount(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeEmailService())
	userID, token := registerAndGetToken(t, svc, userRepo)

	err := svc.VerifyEmail(context.Background(), token)
	require.NoError(t, err)

	user, err := userRepo.GetByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAtivo, user.Status)
	assert.Nil(t, user.TokenVerificacao)
	assert.Nil(t, user.TokenExpiracao)
}

func TestVerifyEmail_TokenIsSingleUse(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeEmailService())
	_, token := registerAndGetToken(t, svc, userRepo)

	require.NoError(t, svc.VerifyEmail(context.Background(), token))

	err := svc.VerifyEmail(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrVerificationTokenNotFound)
}

func TestVerifyEmail_UnknownToken(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeEmailService())

	err := svc.VerifyEmail(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, apperrors.ErrVerificationTokenNotFound)
}

func TestVerifyEmail_ExpiredToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeEmailService())
	userID, token := registerAndGetToken(t, svc, userRepo)

	// Age the token past its TTL
	userRepo.mu.Lock()
	past := time.Now().Add(-time.Minute)
	userRepo.users[userID].TokenExpiracao = &past
	userRepo.mu.Unlock()

	err := svc.VerifyEmail(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrVerificationTokenExpired)

	// The account stays pending; there is no resend path
	user, err := userRepo.GetByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendente, user.Status)
}

func TestLogin_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeEmailService())
	_, token := registerAndGetToken(t, svc, userRepo)
	require.NoError(t, svc.VerifyEmail(context.Background(), token))

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "alice@fatec.sp.gov.br",
		Senha: "senha-forte-123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64((8 * time.Hour).Seconds()), resp.ExpiresIn)
	assert.Equal(t, "alice@fatec.sp.gov.br", resp.User.Email)
	assert.Equal(t, models.RoleAluno, resp.User.TipoUsuario)
}

func TestLogin_PendingAccount(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeEmailService())
	registerAndGetToken(t, svc, userRepo)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "alice@fatec.sp.gov.br",
		Senha: "senha-forte-123",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountNotActivated)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeEmailService())
	_, token := registerAndGetToken(t, svc, userRepo)
	require.NoError(t, svc.VerifyEmail(context.Background(), token))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "alice@fatec.sp.gov.br",
		Senha: "senha-errada",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeEmailService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "ninguem@fatec.sp.gov.br",
		Senha: "tanto-faz",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
