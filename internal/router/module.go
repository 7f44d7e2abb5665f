package router

import "github.com/gin-gonic/gin"

// Module is a feature module that registers its routes. web is the
// engine root (session-guarded browser surface), api is the /api group
// (bearer-guarded surface).
type Module interface {
	Register(api *gin.RouterGroup, web *gin.RouterGroup)
}
