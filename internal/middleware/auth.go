package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/exoesports/exo-backend/internal/models"
	"github.com/exoesports/exo-backend/pkg/responses"
	"github.com/exoesports/exo-backend/pkg/token"
)

const (
	AuthUserIDKey   = "auth_user_id"
	AuthUserRoleKey = "auth_user_role"

	// SessionCookieName is the cookie the frontend stores the JWT in.
	SessionCookieName = "session"
)

// sessionRow is the minimal projection of the users table the resolver needs.
// Queried via Table() to keep this package free of model imports.
type sessionRow struct {
	ID   uint
	Role models.Role
}

// extractToken pulls the JWT from the session cookie, falling back to the
// Authorization header for non-browser clients.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// resolveSession validates the token and confirms the account still exists.
// An absent token is not an error; it returns (nil, nil).
func resolveSession(c *gin.Context, jwtSecret string, db *gorm.DB) (*sessionRow, error) {
	tokenString := extractToken(c)
	if tokenString == "" {
		return nil, nil
	}

	claims, err := token.Validate(tokenString, jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}

	var row sessionRow
	err = db.Table("users").
		Select("id, role").
		Where("id = ? AND deleted_at IS NULL", claims.UserID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found or inactive")
		}
		return nil, err
	}
	if !row.Role.Valid() {
		return nil, fmt.Errorf("account has unknown role %q", row.Role)
	}
	return &row, nil
}

// RequireAuth resolves the session and rejects the request with 401 when no
// valid session exists.
func RequireAuth(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, err := resolveSession(c, jwtSecret, db)
		if err != nil {
			responses.Unauthorized(c, err.Error())
			return
		}
		if row == nil {
			responses.Unauthorized(c, "Authentication required")
			return
		}

		c.Set(AuthUserIDKey, row.ID)
		c.Set(AuthUserRoleKey, row.Role)
		c.Next()
	}
}

// OptionalAuth resolves the session when present but lets anonymous requests
// through untouched. Used by endpoints like tryout submission that link the
// submitter's account only if they happen to be signed in.
func OptionalAuth(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, err := resolveSession(c, jwtSecret, db)
		if err == nil && row != nil {
			c.Set(AuthUserIDKey, row.ID)
			c.Set(AuthUserRoleKey, row.Role)
		}
		c.Next()
	}
}

// GetUserIDFromContext extracts the authenticated user's ID from the context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	uid, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userID)
	}
	return uid, nil
}

// GetUserRoleFromContext extracts the authenticated user's role from the context.
func GetUserRoleFromContext(c *gin.Context) (models.Role, error) {
	roleVal, exists := c.Get(AuthUserRoleKey)
	if !exists {
		return "", errors.New("user role not found in context")
	}
	role, ok := roleVal.(models.Role)
	if !ok {
		return "", fmt.Errorf("user role has unexpected type: %T", roleVal)
	}
	return role, nil
}
