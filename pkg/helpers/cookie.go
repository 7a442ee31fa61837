package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "token"

type Manager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *Manager {
	return &Manager{Domain: domain, Secure: secure}
}

// SetSession stores the session token as an HttpOnly, SameSite=Strict cookie
// for the whole site, living for ttl. A ttl that is not positive expires it.
func (m *Manager) SetSession(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookie, token, maxAge(ttl), "/", m.Domain, m.Secure, true)
}

// Clear overwrites the session cookie with an already-expired value.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookie, "", -1, "/", m.Domain, m.Secure, true)
}

// maxAge converts ttl to whole seconds. MaxAge 0 would mean a browser-session
// cookie, so anything under one second deletes instead.
func maxAge(ttl time.Duration) int {
	sec := int(ttl.Round(time.Second) / time.Second)
	if sec <= 0 {
		return -1
	}
	return sec
}
