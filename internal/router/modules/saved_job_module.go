package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-job-board/internal/interface/http"
	"github.com/oksasatya/go-job-board/internal/interface/middleware"
	"github.com/oksasatya/go-job-board/pkg/helpers"
)

type SavedJobModule struct {
	Handler *handlers.SavedJobHandler
	JWT     *helpers.JWTManager
}

func NewSavedJobModule(h *handlers.SavedJobHandler, jwt *helpers.JWTManager) *SavedJobModule {
	return &SavedJobModule{Handler: h, JWT: jwt}
}

func (m *SavedJobModule) Register(rg *gin.RouterGroup, _ *gin.Engine) {
	saved := rg.Group("/saved-jobs")
	saved.Use(middleware.RequireAuth(m.JWT), perUser(120))
	{
		saved.GET("", m.Handler.List)
		saved.POST("/:id", m.Handler.Save)
		saved.DELETE("/:id", m.Handler.Remove)
	}
}
