package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/JMaldonado-17/powerfed/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, err := middleware.GetUserRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		hasRequiredRole := false
		for _, requiredRole := range requiredRoles {
			if strings.EqualFold(userRole, requiredRole) {
				hasRequiredRole = true
				break
			}
		}

		if !hasRequiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Forbidden",
				"message":   "You don't have permission to access this resource",
				"required":  requiredRoles,
				"user_role": userRole,
			})
			return
		}

		c.Next()
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("admin")
}

// TeamOrAdminMiddleware is a convenience middleware for team-manager or admin access
func TeamOrAdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("team", "admin")
}
