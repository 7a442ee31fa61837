package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-job-board/internal/container"
	"github.com/oksasatya/go-job-board/internal/interface/middleware"
)

var responsesByStatus = expvar.NewMap("http_responses_by_status")

// DebugModule exposes expvar counters. PrivateOnly hides them from public callers.
type DebugModule struct {
	PrivateOnly bool
}

func NewDebugModule(privateOnly bool) *DebugModule { return &DebugModule{PrivateOnly: privateOnly} }

func (m *DebugModule) Register(rg *gin.RouterGroup, _ *gin.Engine) {
	// expvar endpoint, rate-limited per IP; private networks bypass the limit
	rl := middleware.RateLimit(container.GetRedis(), middleware.Limit{
		Max:    60,
		Window: time.Minute,
		Key:    middleware.KeyByIPAndPath(),
		Allow:  middleware.AllowPrivateIP(),
	})
	chain := []gin.HandlerFunc{rl}
	if m.PrivateOnly {
		chain = append([]gin.HandlerFunc{middleware.RequirePrivateIP()}, chain...)
	}
	rg.GET("/debug/vars", append(chain, gin.WrapH(expvar.Handler()))...)
}

// CountResponses tallies responses by status class into http_responses_by_status.
func CountResponses(c *gin.Context) {
	c.Next()
	responsesByStatus.Add(statusClass(c.Writer.Status()), 1)
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
