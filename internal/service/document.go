package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"shipdocs/internal/docnumber"
	"shipdocs/internal/model"
	"shipdocs/internal/repository"
	"shipdocs/internal/storage"
)

var (
	ErrInvalidType    = errors.New("invalid document type")
	ErrInvalidStatus  = errors.New("invalid shipment status")
	ErrNumberRequired = errors.New("document number is required")
	ErrNotFound       = errors.New("document not found")
)

// UploadInput carries the upload form fields. EstimatedDelivery is the raw
// form value; blank or unparsable values become a null delivery date rather
// than an error.
type UploadInput struct {
	DocumentType      string
	Description       string
	CustomerName      string
	ShipmentStatus    string
	DocumentSummary   string
	EstimatedDelivery string
}

// Event is one calendar widget entry.
type Event struct {
	ID    int64     `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
}

// DocumentService defines the use cases for shipment documents.
type DocumentService interface {
	// Upload stores the file (or substitutes the placeholder URL when file is
	// nil), generates a document number, and inserts the metadata row.
	Upload(ctx context.Context, in UploadInput, file io.Reader, filename string, size int64) (*model.Document, error)

	// List returns documents newest-first. typeQuery is the raw query value:
	// a valid document type filters and is echoed back as the second return;
	// anything else means no filter.
	List(ctx context.Context, typeQuery string) ([]model.Document, string, error)

	// Get returns a single document by id.
	Get(ctx context.Context, id int64) (*model.Document, error)

	// GetByNumber returns a single document by its document number. The
	// number is trimmed; blank input is rejected.
	GetByNumber(ctx context.Context, number string) (*model.Document, error)

	// Events returns calendar events for documents with a known estimated
	// delivery date, ascending by date, with the same filter-or-ignore
	// policy as List.
	Events(ctx context.Context, typeQuery string) ([]Event, error)
}

type documentService struct {
	repo        repository.DocumentRepository
	store       storage.Storage
	numbers     *docnumber.Generator
	placeholder string
	now         func() time.Time
}

// NewDocumentService constructs a DocumentService. placeholderURL is stored
// as the image path when an upload carries no file.
func NewDocumentService(repo repository.DocumentRepository, store storage.Storage, numbers *docnumber.Generator, placeholderURL string) DocumentService {
	return &documentService{
		repo:        repo,
		store:       store,
		numbers:     numbers,
		placeholder: placeholderURL,
		now:         time.Now,
	}
}

func (s *documentService) Upload(ctx context.Context, in UploadInput, file io.Reader, filename string, size int64) (*model.Document, error) {
	if !model.IsValidType(in.DocumentType) {
		return nil, ErrInvalidType
	}
	if !model.IsValidStatus(in.ShipmentStatus) {
		return nil, ErrInvalidStatus
	}

	imagePath := s.placeholder
	if file != nil {
		path, err := s.store.Save(ctx, filename, file, size)
		if err != nil {
			return nil, fmt.Errorf("save upload: %w", err)
		}
		imagePath = path
	}

	doc := &model.Document{
		ImagePath:         imagePath,
		DocumentNumber:    s.numbers.Random(in.DocumentType),
		UploadDate:        s.now(),
		DocumentType:      in.DocumentType,
		Description:       optional(in.Description),
		CustomerName:      optional(in.CustomerName),
		ShipmentStatus:    in.ShipmentStatus,
		DocumentSummary:   optional(in.DocumentSummary),
		EstimatedDelivery: parseDeliveryDate(in.EstimatedDelivery),
	}

	id, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	doc.ID = id
	return doc, nil
}

func (s *documentService) List(ctx context.Context, typeQuery string) ([]model.Document, string, error) {
	selected := resolveTypeFilter(typeQuery)
	docs, err := s.repo.List(ctx, selected)
	if err != nil {
		return nil, "", err
	}
	return docs, selected, nil
}

func (s *documentService) Get(ctx context.Context, id int64) (*model.Document, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) GetByNumber(ctx context.Context, number string) (*model.Document, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrNumberRequired
	}
	doc, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Events(ctx context.Context, typeQuery string) ([]Event, error) {
	entries, err := s.repo.ListCalendarEntries(ctx, resolveTypeFilter(typeQuery))
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(entries))
	for _, e := range entries {
		label := e.DocumentType
		if e.CustomerName != nil && *e.CustomerName != "" {
			label = *e.CustomerName
		}
		events = append(events, Event{
			ID:    e.ID,
			Title: e.DocumentNumber + " — " + label,
			Start: e.EstimatedDate,
		})
	}
	return events, nil
}

// resolveTypeFilter keeps only values from the closed document type set;
// anything else (including empty) means "no filter", never an error.
func resolveTypeFilter(typeQuery string) string {
	if model.IsValidType(typeQuery) {
		return typeQuery
	}
	return ""
}

// optional maps blank free-text form fields to NULL columns.
func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// parseDeliveryDate accepts the HTML date-input format, then a full
// timestamp; anything else yields a null delivery date.
func parseDeliveryDate(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}
