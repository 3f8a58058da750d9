package middleware

import (
	"strings"

	"go-timeoff/internal/auth"
	autherrors "go-timeoff/internal/auth/errors"
	"go-timeoff/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// TokenParser verifies a bearer token issued by the identity provider.
type TokenParser interface {
	ParseToken(tokenString string) (*auth.Principal, error)
}

func extractToken(c *gin.Context) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found && token != "" {
		return token
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware rejects requests without a valid token.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.AbortWithError(c, autherrors.ErrTokenNotFound)
			return
		}

		principal, err := tokens.ParseToken(tokenString)
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		auth.SetPrincipal(c, principal)
		c.Next()
	}
}

// OptionalAuth attaches the principal when a valid token is present and lets
// anonymous callers through. An invalid token is treated as anonymous.
func OptionalAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			if principal, err := tokens.ParseToken(tokenString); err == nil {
				auth.SetPrincipal(c, principal)
			}
		}
		c.Next()
	}
}
