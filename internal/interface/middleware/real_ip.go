package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxRealIPKey = "real_ip"

// RealIP sets the client IP into the gin context (key: "real_ip").
// Proxy headers are honoured only when trustProxy is set:
// CF-Connecting-IP, then the left-most X-Forwarded-For entry, then X-Real-IP.
func RealIP(trustProxy bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := ""
		if trustProxy {
			ip = fromProxyHeaders(c)
		}
		if ip == "" {
			ip = c.ClientIP()
		}
		c.Set(CtxRealIPKey, ip)
		c.Next()
	}
}

func fromProxyHeaders(c *gin.Context) string {
	if ip := parseIP(c.GetHeader("CF-Connecting-IP")); ip != "" {
		return ip
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := parseIP(first); ip != "" {
			return ip
		}
	}
	return parseIP(c.GetHeader("X-Real-IP"))
}

func parseIP(s string) string {
	if ip := net.ParseIP(strings.TrimSpace(s)); ip != nil {
		return ip.String()
	}
	return ""
}

// ClientIP returns the address set by RealIP, falling back to gin's view.
func ClientIP(c *gin.Context) string {
	if ip := c.GetString(CtxRealIPKey); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
