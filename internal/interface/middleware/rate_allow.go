package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// AllowFunc reports whether a request bypasses rate limiting.
type AllowFunc func(*gin.Context) bool

// AllowPrivateIP lets loopback and RFC 1918 callers through.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		parsed := net.ParseIP(ClientIP(c))
		return parsed != nil && (parsed.IsLoopback() || parsed.IsPrivate())
	}
}

// RequirePrivateIP rejects callers outside private networks with 404.
func RequirePrivateIP() gin.HandlerFunc {
	allow := AllowPrivateIP()
	return func(c *gin.Context) {
		if !allow(c) {
			c.AbortWithStatus(404)
			return
		}
		c.Next()
	}
}
