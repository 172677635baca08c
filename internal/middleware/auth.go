package middleware

import (
	"context"
	"strings"

	"wisely_backend/internal/identity"
	"wisely_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SessionResolver maps a signed session cookie value to the subject it
// belongs to.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// SessionToken pulls the session token off the request: cookie first,
// Authorization bearer as a fallback for non-browser clients.
func SessionToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthMiddleware gates protected routes. The session must resolve in the
// store AND the subject must still be live at the identity provider; any
// failure along the way is a plain 401, never a 500.
func AuthMiddleware(sessions SessionResolver, provider identity.Provider, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c, cookieName)
		if token == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		subject, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if err := provider.LookupSubject(c.Request.Context(), subject); err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		util.SetUserID(c, subject)
		c.Next()
	}
}
