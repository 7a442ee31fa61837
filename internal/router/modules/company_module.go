package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-job-board/internal/interface/http"
	"github.com/oksasatya/go-job-board/internal/interface/middleware"
	"github.com/oksasatya/go-job-board/pkg/helpers"
)

type CompanyModule struct {
	Handler *handlers.CompanyHandler
	JWT     *helpers.JWTManager
}

func NewCompanyModule(h *handlers.CompanyHandler, jwt *helpers.JWTManager) *CompanyModule {
	return &CompanyModule{Handler: h, JWT: jwt}
}

func (m *CompanyModule) Register(rg *gin.RouterGroup, _ *gin.Engine) {
	companies := rg.Group("/companies")
	companies.GET("", m.Handler.GetByOwner)

	auth := companies.Group("")
	auth.Use(middleware.RequireAuth(m.JWT), perUser(120))
	{
		auth.POST("", m.Handler.Create)
		auth.POST("/:id/logo", m.Handler.UploadLogo)
	}
}
