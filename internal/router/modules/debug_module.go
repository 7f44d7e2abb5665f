package modules

import (
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yogawp/todolist-api/internal/container"
	"github.com/yogawp/todolist-api/internal/interface/middleware"
)

// DebugModule exposes a root info route and expvar metrics.
type DebugModule struct {
	AppName string
	Version string
}

func NewDebugModule(appName, version string) *DebugModule {
	return &DebugModule{AppName: appName, Version: version}
}

func (m *DebugModule) Register(api *gin.RouterGroup, web *gin.RouterGroup) {
	web.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"app": m.AppName, "version": m.Version})
	})

	if container.GetConfig() != nil && container.GetConfig().DebugMetricsEnabled {
		rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
		web.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
	}
}
