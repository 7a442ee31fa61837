package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-job-board/internal/interface/http"
	"github.com/oksasatya/go-job-board/internal/interface/middleware"
	"github.com/oksasatya/go-job-board/pkg/helpers"
)

type JobModule struct {
	Handler *handlers.JobHandler
	JWT     *helpers.JWTManager
}

func NewJobModule(h *handlers.JobHandler, jwt *helpers.JWTManager) *JobModule {
	return &JobModule{Handler: h, JWT: jwt}
}

func (m *JobModule) Register(rg *gin.RouterGroup, _ *gin.Engine) {
	jobs := rg.Group("/jobs")
	// anonymous callers get the plain listing; signed-in ones also see saved flags
	jobs.GET("", middleware.Authenticate(m.JWT), m.Handler.List)
	jobs.GET("/suggestions", perIP(120), m.Handler.Suggestions)
	jobs.GET("/search", perIP(120), m.Handler.Search)
	jobs.GET("/:id", m.Handler.Get)
	jobs.POST("", middleware.RequireAuth(m.JWT), perUser(120), m.Handler.Create)
}
