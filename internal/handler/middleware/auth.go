package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"spacehub/internal/domain/user"
	"spacehub/internal/handler/httperr"
	"spacehub/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			unauthorized(c, "Access token required")
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed", "error", err.Error())
			unauthorized(c, "Invalid or expired token")
			return
		}

		role, err := user.NewRole(claims.Role)
		if err != nil {
			unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"user_id": claims.UserID.String(),
			"role":    claims.Role,
		})
		c.Next()
	}
}

// RequireRole gates a group on an exact role. Guests and hosts have disjoint
// surfaces; there is no hierarchy between them.
func (m *AuthMiddleware) RequireRole(required user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Must run after RequireAuth()
			c.JSON(http.StatusInternalServerError, httperr.Response{
				HTTPStatus: http.StatusInternalServerError,
				ErrorCode:  httperr.CodeInternalError,
				Message:    "Internal server error",
			})
			c.Abort()
			return
		}

		if role != required {
			c.JSON(http.StatusUnauthorized, httperr.Response{
				HTTPStatus: http.StatusUnauthorized,
				ErrorCode:  httperr.CodeNoPermission,
				Message:    "No permission",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, httperr.Response{
		HTTPStatus: http.StatusUnauthorized,
		ErrorCode:  httperr.CodeUnauthorized,
		Message:    msg,
	})
	c.Abort()
}
