package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userUC "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
	sharedconfig "helpdesk/internal/shared/config"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type stubProvisioner struct {
	result *userUC.ProvisionUserResult
	err    error
	gotCmd userUC.ProvisionUserCommand
}

func (s *stubProvisioner) Execute(_ context.Context, cmd userUC.ProvisionUserCommand) (*userUC.ProvisionUserResult, error) {
	s.gotCmd = cmd
	return s.result, s.err
}

func newTestAuthMiddleware(provisioner *stubProvisioner) *AuthMiddleware {
	verifier := auth.NewJWTVerifier(&sharedconfig.AuthConfig{JWTSecret: testSecret})
	return NewAuthMiddleware(verifier, provisioner, logger.NewLogger())
}

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "idp|42",
		"name":  "Alice",
		"email": "alice@example.com",
		"role":  "support_agent",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func performRequest(mw gin.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/tickets", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	mw(c)
	return w, c
}

func TestRequireAuth_MissingToken(t *testing.T) {
	mw := newTestAuthMiddleware(&stubProvisioner{})

	w, c := performRequest(mw.RequireAuth(), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	mw := newTestAuthMiddleware(&stubProvisioner{})

	w, _ := performRequest(mw.RequireAuth(), "Token abc")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	mw := newTestAuthMiddleware(&stubProvisioner{})

	w, _ := performRequest(mw.RequireAuth(), "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	mw := newTestAuthMiddleware(&stubProvisioner{})

	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := signTestToken(t, claims)

	w, _ := performRequest(mw.RequireAuth(), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidTokenProvisionsAccount(t *testing.T) {
	provisioner := &stubProvisioner{
		result: &userUC.ProvisionUserResult{
			UserID: 7,
			Role:   authorization.RoleSupportAgent,
		},
	}
	mw := newTestAuthMiddleware(provisioner)

	token := signTestToken(t, validClaims())
	w, c := performRequest(mw.RequireAuth(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.IsAborted())

	assert.Equal(t, "idp|42", provisioner.gotCmd.ExternalID)
	assert.Equal(t, "alice@example.com", provisioner.gotCmd.Email)
	assert.Equal(t, "support_agent", provisioner.gotCmd.Role)

	userID, exists := c.Get(constants.ContextKeyUserID)
	require.True(t, exists)
	assert.Equal(t, uint(7), userID)

	role, exists := c.Get(constants.ContextKeyUserRole)
	require.True(t, exists)
	assert.Equal(t, "support_agent", role)
}

func TestRequireAuth_ProvisionFailure(t *testing.T) {
	provisioner := &stubProvisioner{err: assert.AnError}
	mw := newTestAuthMiddleware(provisioner)

	token := signTestToken(t, validClaims())
	w, _ := performRequest(mw.RequireAuth(), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_NoTokenStaysAnonymous(t *testing.T) {
	mw := newTestAuthMiddleware(&stubProvisioner{})

	w, c := performRequest(mw.OptionalAuth(), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.IsAborted())

	_, exists := c.Get(constants.ContextKeyUserID)
	assert.False(t, exists)
}

func TestOptionalAuth_InvalidTokenStaysAnonymous(t *testing.T) {
	mw := newTestAuthMiddleware(&stubProvisioner{})

	w, c := performRequest(mw.OptionalAuth(), "Bearer garbage")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.IsAborted())

	_, exists := c.Get(constants.ContextKeyUserID)
	assert.False(t, exists)
}

func TestOptionalAuth_ValidTokenResolvesCaller(t *testing.T) {
	provisioner := &stubProvisioner{
		result: &userUC.ProvisionUserResult{
			UserID: 3,
			Role:   authorization.RoleEndUser,
		},
	}
	mw := newTestAuthMiddleware(provisioner)

	token := signTestToken(t, validClaims())
	_, c := performRequest(mw.OptionalAuth(), "Bearer "+token)

	userID, exists := c.Get(constants.ContextKeyUserID)
	require.True(t, exists)
	assert.Equal(t, uint(3), userID)
}
