package server

import (
	"log"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"yoloeats-be/internal/config"
	"yoloeats-be/internal/pkg/serverutils"
)

// Registrar is implemented by controllers that mount their routes on the
// versioned API group.
type Registrar interface {
	RegisterRoutes(r fiber.Router)
}

type Server struct {
	app  *fiber.App
	name string
	port string
}

// New assembles the shared HTTP surface: CORS, tracing, the error envelope,
// Prometheus metrics, health probes and the /api/v1 group the given
// controllers mount on.
func New(cfg *config.Config, name, port string, controllers ...Registrar) *Server {
	app := fiber.New(fiber.Config{
		AppName:   name,
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	healthCheck := func(ctx *fiber.Ctx) error {
		return ctx.SendString(name + " OK")
	}
	app.Get("/", healthCheck)
	app.Get("/health", healthCheck)

	// Routes
	api := app.Group("/api/v1")
	for _, controller := range controllers {
		controller.RegisterRoutes(api)
	}

	return &Server{
		app:  app,
		name: name,
		port: port,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ %s is running on http://localhost:%s", s.name, s.port)
	return s.app.Listen(":" + s.port)
}
