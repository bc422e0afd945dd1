package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	userUC "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// AuthMiddleware verifies bearer tokens from the external identity provider
// and provisions a local account for the subject on the fly. Handlers read
// the local user ID and role from the request context, never the raw claims.
type AuthMiddleware struct {
	verifier    *auth.JWTVerifier
	provisionUC userUC.ProvisionUserExecutor
	logger      logger.Interface
}

func NewAuthMiddleware(verifier *auth.JWTVerifier, provisionUC userUC.ProvisionUserExecutor, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:    verifier,
		provisionUC: provisionUC,
		logger:      log,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		if !m.authenticate(c, token, true) {
			return
		}

		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid token is present and leaves
// the request anonymous otherwise. Read endpoints use this so unauthenticated
// visitors can still browse tickets.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			m.authenticate(c, token, false)
		}

		c.Next()
	}
}

// authenticate verifies the token and maps the subject onto a local account.
// With strict set, failures abort the request with 401.
func (m *AuthMiddleware) authenticate(c *gin.Context, token string, strict bool) bool {
	claims, err := m.verifier.Verify(token)
	if err != nil {
		if strict {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
		}
		return false
	}

	result, err := m.provisionUC.Execute(c.Request.Context(), userUC.ProvisionUserCommand{
		ExternalID: claims.Subject,
		Name:       claims.Name,
		Email:      claims.Email,
		Role:       claims.Role,
	})
	if err != nil {
		if strict {
			m.logger.Errorw("failed to provision user", "subject", claims.Subject, "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "failed to resolve user account")
			c.Abort()
		}
		return false
	}

	c.Set(constants.ContextKeyUserID, result.UserID)
	c.Set(constants.ContextKeyUserRole, result.Role.String())

	return true
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
