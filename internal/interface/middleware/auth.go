package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wtwr-app/wtwr-backend/internal/errs"
	"github.com/wtwr-app/wtwr-backend/pkg/helpers"
)

// CtxUserIDKey is the gin context key holding the authenticated user id.
const CtxUserIDKey = "userID"

const bearerPrefix = "Bearer "

// Auth validates the Authorization bearer header and injects the user id
// into the context. Every failure mode gets the same 401; expiry and forgery
// are deliberately not distinguished to the caller.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c)
			return
		}
		claims, err := jwt.ParseToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil || claims.UserID == "" {
			abortUnauthorized(c)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	_ = c.Error(errs.NewUnauthorized("Authorization Required"))
	c.Abort()
}
