package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/handlers"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/services"
)

// Config holds the dependencies of the HTTP layer.
type Config struct {
	AuthService    *services.AuthService
	TodoService    *services.TodoService
	Stats          repository.StatsRepository
	RequestTimeout time.Duration
}

// New builds the gin engine with every route registered.
func New(cfg Config) *gin.Engine {
	handlers.RegisterValidation()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	userHandler := handlers.NewUserHandler(cfg.AuthService)
	authHandler := handlers.NewAuthHandler(cfg.AuthService)
	todoHandler := handlers.NewTodoHandler(cfg.TodoService)
	healthHandler := handlers.NewHealthHandler(cfg.Stats)

	r.GET("/", healthHandler.Default)
	r.GET("/health", healthHandler.Health)

	// Auth routes (public)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.Any("/logout", authHandler.Logout)
	}

	requireAuth := middleware.RequireAuth(cfg.AuthService)

	api := r.Group("/api")
	{
		users := api.Group("/user")
		{
			users.POST("", userHandler.Create)
			users.GET("", requireAuth, userHandler.GetMe)
			users.DELETE("", requireAuth, userHandler.Delete)
		}

		// Todo routes (protected)
		todos := api.Group("/todo")
		todos.Use(requireAuth)
		{
			todos.GET("", todoHandler.List)
			todos.POST("", todoHandler.Create)
			todos.DELETE("/:id", todoHandler.Delete)
		}
	}

	return r
}
