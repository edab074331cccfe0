package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// sessionKey is the key used to store the resolved access-control session in
// the Gin context.
const sessionKey = contextKey("session")

// SessionMiddleware builds the per-request access-control session from fresh
// reads of the authenticated profile, its tenant and subscription. It must
// run after AuthMiddleware.
func SessionMiddleware(userSvc portssvc.UserReaderSvc, resolver portssvc.SessionResolverSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		ctx := c.Request.Context()
		profile, err := userSvc.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
				return
			}
			GetLoggerFromCtx(ctx).Error("Failed to load profile for session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
			return
		}
		if !profile.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
			return
		}

		session, err := resolver.ResolveSession(ctx, profile)
		if err != nil {
			GetLoggerFromCtx(ctx).Error("Failed to resolve session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
			return
		}

		SetSessionInContext(c, session)
		c.Next()
	}
}

// SetSessionInContext stores the resolved session in the Gin context.
func SetSessionInContext(c *gin.Context, session *domain.Session) {
	c.Set(string(sessionKey), session)
}

// GetSessionFromContext retrieves the resolved session from the Gin context.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	val, exists := c.Get(string(sessionKey))
	if !exists {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	return session, ok
}

// RequirePermission rejects the request unless the session grants the
// permission. Services re-check; this gate just fails fast at the edge.
func RequirePermission(p domain.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok || !session.HasPermission(p) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireModule rejects the request unless the session's tenant has the
// module enabled and a live subscription at the time of the request.
func RequireModule(m domain.Module) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok || !session.CanUseModule(m, time.Now()) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Module not available on this account"})
			return
		}
		c.Next()
	}
}
