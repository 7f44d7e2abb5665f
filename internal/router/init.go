package router

import (
	"time"

	"github.com/yogawp/todolist-api/internal/application"
	"github.com/yogawp/todolist-api/internal/container"
	"github.com/yogawp/todolist-api/internal/infrastructure/postgres"
	"github.com/yogawp/todolist-api/internal/infrastructure/redisstore"
	"github.com/yogawp/todolist-api/internal/infrastructure/search"
	handlers "github.com/yogawp/todolist-api/internal/interface/http"
	"github.com/yogawp/todolist-api/internal/interface/middleware"
	"github.com/yogawp/todolist-api/internal/router/modules"
)

// version is stamped by the build; the default covers go run.
var version = "dev"

// InitModules wires repositories, services and handlers from the
// container singletons and registers every feature module. Call once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := postgres.NewUserRepository(pool)
	todos := postgres.NewTodoRepository(pool)
	tokens := postgres.NewTokenRepository(pool)
	audit := postgres.NewAuditRepository(pool)
	sessions := redisstore.NewSessionStore(container.GetRedis())

	var index *search.TodoIndex
	if es := container.GetES(); es != nil {
		index = search.NewTodoIndex(es, cfg.ESTodosIndex, logger)
	}

	authSvc := application.NewAuthService(users, tokens, sessions, audit,
		container.GetRabbitPub(), logger, cfg.SessionTTL)
	todoSvc := application.NewTodoService(todos, index, logger)
	userSvc := application.NewUserService(users, logger)

	authHandler := handlers.NewAuthHandler(authSvc, container.GetJWT(), logger,
		cfg.CookieDomain, cfg.CookieSecure)
	todoHandler := handlers.NewTodoHandler(todoSvc, logger)
	userHandler := handlers.NewUserHandler(userSvc, logger)

	// Bearer guard plus limits on the whole /api surface.
	r.UseAPI(
		middleware.TokenAuth(authSvc),
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewTodoModule(todoHandler))
	r.Add(modules.NewUserModule(userHandler))
	r.Add(modules.NewDebugModule(cfg.AppName, version))
}
