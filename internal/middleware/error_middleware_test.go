package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/akademia/akademia/internal/pkg/apperrors"
)

func TestHandleAPIError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation failure", apperrors.NewValidationError("campo obrigatório"), http.StatusBadRequest},
		{"invalid email domain", apperrors.NewCustomError(apperrors.ErrInvalidEmail, "domínio não permitido"), http.StatusBadRequest},
		{"expired verification token", apperrors.ErrVerificationTokenExpired, http.StatusBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"account not activated", apperrors.ErrAccountNotActivated, http.StatusForbidden},
		{"permission denied", apperrors.NewForbiddenError("não é o dono"), http.StatusForbidden},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"verification token not found", apperrors.ErrVerificationTokenNotFound, http.StatusNotFound},
		{"resource not found", apperrors.NewNotFoundError("projeto não encontrado"), http.StatusNotFound},
		{"email already exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"generic conflict", apperrors.NewConflictError("duplicado"), http.StatusConflict},
		{"unknown error", errors.New("algo deu errado"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandleAPIError_CustomMessageSurfaced(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, apperrors.NewForbiddenError("not the owner of this project"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not the owner of this project")
}

func TestHandleAPIError_UnknownErrorsNotLeaked(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, errors.New("pq: connection refused on 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
}
