package router

import "github.com/gin-gonic/gin"

type Registry struct {
	Engine         *gin.Engine
	API            *gin.RouterGroup
	Web            *gin.RouterGroup
	apiMiddlewares []gin.HandlerFunc
	modules        []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{
		Engine: engine,
		API:    engine.Group("/api"),
		Web:    engine.Group("/"),
	}
}

// UseAPI adds middleware applied to the /api group only.
func (r *Registry) UseAPI(mw ...gin.HandlerFunc) {
	r.apiMiddlewares = append(r.apiMiddlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	if len(r.apiMiddlewares) > 0 {
		r.API.Use(r.apiMiddlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API, r.Web)
	}
}
