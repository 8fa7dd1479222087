package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"shipdocs/internal/model"
	"shipdocs/internal/service"
)

// pageData is the common payload handed to every rendered template.
func pageData(title, active string, extra fiber.Map) fiber.Map {
	data := fiber.Map{
		"Title":  title,
		"Active": active,
		"Types":  model.AllowedTypes,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// Dashboard renders the landing page.
func Dashboard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("dashboard", pageData("Dashboard", "dashboard", nil))
	}
}

// GalleryPage renders the document gallery, optionally filtered by type.
func GalleryPage(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, selected, err := svc.List(c.UserContext(), c.Query("type"))
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}
		return c.Render("documents_gallery", pageData("Documents Gallery", "gallery", fiber.Map{
			"Documents":    docs,
			"SelectedType": selected,
		}))
	}
}

// ListPage renders the document table view, optionally filtered by type.
func ListPage(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, selected, err := svc.List(c.UserContext(), c.Query("type"))
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}
		return c.Render("documents_list", pageData("Documents List", "list", fiber.Map{
			"Documents":    docs,
			"SelectedType": selected,
		}))
	}
}

// UploadDocument accepts the multipart upload form (file field "image",
// which may be absent) and redirects back to the gallery on success.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.UploadInput{
			DocumentType:      c.FormValue("documentType"),
			Description:       c.FormValue("description"),
			CustomerName:      c.FormValue("customerName"),
			ShipmentStatus:    c.FormValue("shipmentStatus"),
			DocumentSummary:   c.FormValue("documentSummary"),
			EstimatedDelivery: c.FormValue("estimatedDelivery"),
		}

		var (
			file     io.Reader
			filename string
			size     int64
		)
		if fh, err := c.FormFile("image"); err == nil && fh != nil {
			f, openErr := fh.Open()
			if openErr != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()
			file, filename, size = f, fh.Filename, fh.Size
		}

		if _, err := svc.Upload(c.UserContext(), in, file, filename, size); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidType):
				return writeError(c, fiber.StatusBadRequest, "INVALID_TYPE", "unknown document type")
			case errors.Is(err, service.ErrInvalidStatus):
				return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", "unknown shipment status")
			default:
				return fmt.Errorf("upload document: %w", err)
			}
		}

		return c.Redirect("/documents/gallery", fiber.StatusFound)
	}
}

// CalendarPage renders the calendar shell; events load client-side from
// the events API.
func CalendarPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("updates_calendar", pageData("Delivery Calendar", "calendar", nil))
	}
}

type kanbanColumn struct {
	Status    string
	Documents []model.Document
}

// KanbanPage renders the kanban board with every document grouped by
// shipment status.
func KanbanPage(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, _, err := svc.List(c.UserContext(), "")
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}

		columns := make([]kanbanColumn, 0, len(model.AllowedStatuses))
		for _, status := range model.AllowedStatuses {
			col := kanbanColumn{Status: status, Documents: []model.Document{}}
			for _, d := range docs {
				if d.ShipmentStatus == status {
					col.Documents = append(col.Documents, d)
				}
			}
			columns = append(columns, col)
		}

		return c.Render("updates_kanban", pageData("Delivery Kanban", "kanban", fiber.Map{
			"Columns": columns,
		}))
	}
}

// CalendarEvents returns delivery events as JSON for the calendar widget.
func CalendarEvents(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := svc.Events(c.UserContext(), c.Query("type"))
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		return c.JSON(events)
	}
}

// GetDocumentByNumber looks a document up by its document_number query
// parameter.
func GetDocumentByNumber(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.GetByNumber(c.UserContext(), c.Query("document_number"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNumberRequired):
				return writeError(c, fiber.StatusBadRequest, "MISSING_NUMBER", "document_number is required")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			default:
				return fmt.Errorf("find document by number: %w", err)
			}
		}
		return c.JSON(doc)
	}
}

// GetDocumentByID looks a document up by its numeric path id.
func GetDocumentByID(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return fmt.Errorf("find document by id: %w", err)
		}
		return c.JSON(doc)
	}
}

// ShipmentsListPage renders the shipments list shell.
func ShipmentsListPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("shipments_list", pageData("Shipment List", "shipments_list", nil))
	}
}

// ShipmentsTimelinePage renders the shipments timeline shell.
func ShipmentsTimelinePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("shipments_timeline", pageData("Shipment Timeline", "shipments_timeline", nil))
	}
}

// HealthCheck reports readiness by pinging the database.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always reports OK while the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
