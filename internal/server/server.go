package server

import (
	"log"

	"construction-deepwiki-be/internal/bootstrap"
	"construction-deepwiki-be/internal/config"
	"construction-deepwiki-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	// Initialize Fiber App
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, bounds the upload form
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Content-Disposition",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Routes
	registerRoutes(app, cfg, container)

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
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	api := app.Group("/api")

	// The stream handler verifies its own handshake token, so it sits
	// in front of the session middleware: a websocket upgrade must
	// never silently mint a fresh session.
	c.StreamHandler.RegisterRoutes(api)

	api.Use(serverutils.NewSessionMiddleware(cfg.Session.Secret, cfg.Session.TTL, c.Sessions))

	c.PageController.RegisterRoutes(api)
	c.NavigationController.RegisterRoutes(api)
	c.QAController.RegisterRoutes(api)
	c.ProjectController.RegisterRoutes(api)
	c.ActivityController.RegisterRoutes(api)
}
