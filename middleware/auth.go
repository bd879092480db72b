package middleware

import (
	"strings"

	"medicare/services/access"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticate resolves the bearer credential into an access.Principal and
// stores it on the context. It never rejects a request; route policies decide.
func Authenticate(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(utils.ContextPrincipalKey, principalFromHeader(tokens, c.GetHeader("Authorization")))
		c.Next()
	}
}

func principalFromHeader(tokens *utils.TokenManager, header string) access.Principal {
	if header == "" {
		return access.Principal{Credential: access.Anonymous}
	}
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return access.Principal{Credential: access.Rejected}
	}

	email, err := tokens.ExtractEmail(tokenString)
	if err != nil {
		zap.L().Debug("bearer token rejected", zap.Error(err))
		return access.Principal{Credential: access.Rejected}
	}
	return access.Principal{Email: email, Credential: access.Verified}
}

// GetPrincipal returns the principal stored by Authenticate, or an anonymous
// one when the middleware did not run.
func GetPrincipal(c *gin.Context) access.Principal {
	if v, exists := c.Get(utils.ContextPrincipalKey); exists {
		if p, ok := v.(access.Principal); ok {
			return p
		}
	}
	return access.Principal{Credential: access.Anonymous}
}
