package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitstop/backend/internal/interfaces/http/dto"
)

// RequireRoles gates a route to the given roles. It must run after
// JWTAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := GetRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "authentication required"))
			return
		}
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "role is not permitted to access this report"))
			return
		}
		c.Next()
	}
}
