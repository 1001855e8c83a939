package server

import (
	"log"

	"customer-notes-be/internal/bootstrap"
	"customer-notes-be/internal/config"
	"customer-notes-be/internal/pkg/ratelimit"
	"customer-notes-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: serverutils.NewErrorHandler(container.Logger),
	})

	// Middleware. Observability runs before the rate limiter so rejected
	// requests still carry a request id and get logged.
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type, X-Request-ID",
	}))
	app.Use(serverutils.RequestObservability(container.Logger, container.Metrics))
	app.Use(ratelimit.Middleware(container.RateLimiter))
	app.Use(recover.New())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.MonitoringController.RegisterRoutes(app)
	c.AuthController.RegisterRoutes(app, c.AuthMiddleware)
	c.CustomerController.RegisterRoutes(app)
	c.NoteController.RegisterRoutes(app, c.AuthMiddleware)
}
