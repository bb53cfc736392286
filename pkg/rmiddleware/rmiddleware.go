package rmiddleware

import (
	"github.com/gin-gonic/gin"

	"github.com/exoesports/exo-backend/internal/middleware"
	"github.com/exoesports/exo-backend/internal/models"
	"github.com/exoesports/exo-backend/pkg/responses"
)

// RequireRole gates a route group on the resolved session's role. No session
// at all is 401; a session with a role outside the permitted set is 403. The
// two must stay distinct so the frontend can tell "log in" from "not yours".
func RequireRole(permitted ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := middleware.GetUserRoleFromContext(c)
		if err != nil {
			responses.Unauthorized(c, "Authentication required")
			return
		}

		for _, p := range permitted {
			if role == p {
				c.Next()
				return
			}
		}

		responses.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly is a convenience middleware for admin-only access.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// Staff is a convenience middleware for admin or manager access.
func Staff() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin, models.RoleManager)
}
