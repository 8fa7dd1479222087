package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shipdocs/internal/service"
)

// RegisterRoutes attaches all HTTP routes to the Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.DocumentService, gatherer prometheus.Gatherer) {
	// Pages
	app.Get("/", Dashboard())
	app.Get("/documents/gallery", GalleryPage(svc))
	app.Get("/documents/list", ListPage(svc))
	app.Post("/documents/upload", UploadDocument(svc))
	app.Get("/updates/calendar", CalendarPage())
	app.Get("/updates/kanban", KanbanPage(svc))
	app.Get("/shipments/list", ShipmentsListPage())
	app.Get("/shipments/timeline", ShipmentsTimelinePage())

	// JSON API. by-number must be registered before :id so the literal
	// segment wins in fiber's registration-order matching.
	app.Get("/api/updates/events", CalendarEvents(svc))
	app.Get("/api/documents/by-number", GetDocumentByNumber(svc))
	app.Get("/api/documents/:id", GetDocumentByID(svc))

	// Operational surface
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// API documentation
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.Type("html").SendString(swaggerUIPage)
	})

	// Static assets and uploaded files
	app.Static("/static", "./web/static")
	app.Static("/uploads", "./public/uploads")
}

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
