package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/config"
	"github.com/itc-media/cms-backend/internal/models"
	"github.com/itc-media/cms-backend/internal/rolepolicy"
	jwtpkg "github.com/itc-media/cms-backend/pkg/jwt"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// Auth verifies the bearer credential and attaches the caller's identity and
// role to the request context. Expired and malformed tokens are reported with
// distinct codes.
func Auth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperrors.Unauthorized("NO_TOKEN", "No authorization header provided"))
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, apperrors.Unauthorized("INVALID_TOKEN_FORMAT", "Invalid authorization header format"))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			abortWithError(c, apperrors.Unauthorized("NO_TOKEN", "No token provided"))
			return
		}

		claims, err := jwtpkg.ValidateToken(token, cfg.JWTSecret)
		if err != nil {
			if errors.Is(err, jwtpkg.ErrTokenExpired) {
				abortWithError(c, apperrors.Unauthorized("TOKEN_EXPIRED", "Token has expired"))
			} else {
				abortWithError(c, apperrors.Unauthorized("INVALID_TOKEN", "Invalid token"))
			}
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			abortWithError(c, apperrors.Unauthorized("INVALID_TOKEN", "Invalid token"))
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, models.UserRole(claims.Role))
		c.Next()
	}
}

// Authorize gates a route on the role policy's decision for one operation.
func Authorize(op rolepolicy.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(ContextUserRole)
		if !exists {
			abortWithError(c, apperrors.Forbidden("NO_ROLE", "Access denied. No role found."))
			return
		}

		role, ok := roleValue.(models.UserRole)
		if !ok || !rolepolicy.CanAccess(op, role) {
			abortWithError(c, apperrors.Forbidden("INSUFFICIENT_PERMISSIONS", "Access denied. Insufficient permissions."))
			return
		}

		c.Next()
	}
}

// CurrentUserID extracts the authenticated caller's id set by Auth.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func abortWithError(c *gin.Context, err *apperrors.Error) {
	c.AbortWithStatusJSON(err.Status(), gin.H{
		"success": false,
		"data":    nil,
		"error":   gin.H{"code": err.Code, "message": err.Message},
	})
}
