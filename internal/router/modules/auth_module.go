package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-job-board/internal/interface/http"
)

// AuthModule: POST /auth/register, /auth/login, /auth/logout; GET /auth/me.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup, _ *gin.Engine) {
	auth := rg.Group("/auth")
	auth.POST("/register", perIP(10), m.Handler.Register)
	auth.POST("/login", perIP(10), m.Handler.Login)
	auth.POST("/logout", m.Handler.Logout)
	auth.GET("/me", m.Handler.Me)
}
