package router

import "github.com/gin-gonic/gin"

// Module describes a feature module. api is the /api group; root is the
// engine itself for routes that live outside it.
type Module interface {
	Register(api *gin.RouterGroup, root *gin.Engine)
}
