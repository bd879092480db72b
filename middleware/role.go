package middleware

import (
	"medicare/services/access"
	"medicare/utils"

	"github.com/gin-gonic/gin"
)

// Authorize evaluates policy against the request principal and aborts with
// the policy's error when it refuses.
func Authorize(policy access.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := policy.Authorize(c.Request.Context(), GetPrincipal(c)); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.Next()
	}
}

// AdminOnly is Authorize with the admin role requirement.
func AdminOnly(resolver access.RoleResolver) gin.HandlerFunc {
	return Authorize(access.RequireRole(resolver, utils.RoleAdmin))
}
