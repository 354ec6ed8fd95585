package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akademia/akademia/internal/pkg/auth"
)

func newTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authMiddleware := NewAuthMiddleware(jwtService)

	protected := router.Group("", authMiddleware.JWTAuth())
	protected.GET("/protegido", func(c *gin.Context) {
		userID, _ := CallerID(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "role": c.GetString(ContextRole)})
	})
	return router
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		SessionTokenExp: time.Hour,
		TokenIssuer:     "akademia-test",
	})
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := newTestRouter(newTestJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router := newTestRouter(newTestJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer nao-e-um-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		SessionTokenExp: -time.Minute,
		TokenIssuer:     "akademia-test",
	})
	token, err := expiredService.GenerateSessionToken(1, "ALUNO")
	require.NoError(t, err)

	router := newTestRouter(newTestJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	// Expired and malformed tokens are indistinguishable to the client
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	otherService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "outro-segredo",
		SessionTokenExp: time.Hour,
		TokenIssuer:     "akademia-test",
	})
	token, err := otherService.GenerateSessionToken(1, "ALUNO")
	require.NoError(t, err)

	router := newTestRouter(newTestJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	token, err := jwtService.GenerateSessionToken(42, "PROFESSOR")
	require.NoError(t, err)

	router := newTestRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":42`)
	assert.Contains(t, w.Body.String(), `"role":"PROFESSOR"`)
}
