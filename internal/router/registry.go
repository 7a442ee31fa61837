package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and mounts them on the engine. API
// middleware added through Use runs only for routes under /api.
type Registry struct {
	engine  *gin.Engine
	api     *gin.RouterGroup
	apiMW   []gin.HandlerFunc
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{engine: engine, api: engine.Group("/api")}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.apiMW = append(r.apiMW, mw...)
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

// RegisterAll mounts every module and returns the resulting route table.
func (r *Registry) RegisterAll() gin.RoutesInfo {
	r.api.Use(r.apiMW...)
	for _, m := range r.modules {
		m.Register(r.api, r.engine)
	}
	return r.engine.Routes()
}
