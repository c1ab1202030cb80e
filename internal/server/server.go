// Package server assembles the HTTP application from its dependencies.
package server

import (
	"context"
	"time"

	"apicatalogo/internal/database"
	"apicatalogo/internal/handlers"
	"apicatalogo/internal/middleware"
	"apicatalogo/internal/repositories"
	"apicatalogo/internal/services"
	"apicatalogo/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the collaborators of the application. Publisher may be nil and
// an empty JWTSecret leaves the mutating routes open.
type Deps struct {
	DB        *gorm.DB
	Log       *zap.Logger
	Publisher services.EventPublisher
	JWTSecret string
}

// NewApp builds the Fiber app with middleware, catalog routes and /health.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "apicatalogo",
		ErrorHandler: middleware.ErrorHandler(deps.Log),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(deps.Log))
	app.Use(recover.New())

	validate := validation.New()
	newUnitOfWork := repositories.NewUnitOfWorkFactory(deps.DB)

	categoriaService := services.NewCategoriaService(newUnitOfWork, deps.Publisher, deps.Log)
	produtoService := services.NewProdutoService(newUnitOfWork, validate, deps.Publisher, deps.Log)

	var guards []fiber.Handler
	if deps.JWTSecret != "" {
		guards = append(guards, middleware.AuthRequired(deps.JWTSecret))
	}

	handlers.NewCategoriaHandler(categoriaService, validate, deps.Log).RegisterRoutes(app, guards...)
	handlers.NewProdutoHandler(produtoService, validate, deps.Log).RegisterRoutes(app, guards...)

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		status, dbStatus, code := "healthy", "up", fiber.StatusOK
		if err := database.Ping(ctx, deps.DB); err != nil {
			deps.Log.Warn("health check: database unreachable", zap.Error(err))
			status, dbStatus, code = "unhealthy", "down", fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"database": dbStatus,
			"time":     time.Now().Format(time.RFC3339),
		})
	})

	return app
}
