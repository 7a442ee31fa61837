package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-job-board/pkg/apperror"
	"github.com/oksasatya/go-job-board/pkg/helpers"
	"github.com/oksasatya/go-job-board/pkg/response"
)

// CtxUserIDKey holds the authenticated user id on the gin context.
const CtxUserIDKey = "userID"

// UserID returns the caller resolved by Authenticate or RequireAuth.
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(CtxUserIDKey)
	return id, id != ""
}

func resolve(c *gin.Context, jwt *helpers.JWTManager) (string, error) {
	token, err := c.Cookie(helpers.SessionCookie)
	if err != nil || token == "" {
		return "", apperror.Unauthorized("No authentication token found")
	}
	claims, err := jwt.ParseToken(token)
	if err != nil {
		return "", apperror.UnauthorizedWrap("Invalid token", err)
	}
	return claims.UserID, nil
}

// Authenticate resolves the session cookie when present. Missing, expired or
// invalid tokens leave the request anonymous.
func Authenticate(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := resolve(c, jwt); err == nil {
			c.Set(CtxUserIDKey, id)
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 unless the session cookie carries a valid token.
func RequireAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := resolve(c, jwt)
		if err != nil {
			response.Fail(c, nil, err)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, id)
		c.Next()
	}
}
