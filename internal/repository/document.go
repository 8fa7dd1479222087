package repository

import (
	"context"

	"shipdocs/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here, strictly persistence operations.
//
// typeFilter arguments carry a document type that the caller has already
// validated against model.AllowedTypes; an empty string means "no filter".
// Repositories never see unvalidated user input in the filter position.
type DocumentRepository interface {
	// Insert appends one document row and returns its generated id.
	// Documents are never updated or deleted after insertion.
	Insert(ctx context.Context, doc *model.Document) (int64, error)

	// List returns documents ordered by upload_date descending, optionally
	// restricted to one document type.
	List(ctx context.Context, typeFilter string) ([]model.Document, error)

	// FindByID returns the document with the given id, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.Document, error)

	// FindByNumber returns the document with the given document number, or
	// sql.ErrNoRows. Numbers are not unique by construction; the first match
	// in storage order is returned.
	FindByNumber(ctx context.Context, number string) (*model.Document, error)

	// ListCalendarEntries returns the calendar projection of documents with a
	// non-null estimated delivery date, ascending by that date.
	ListCalendarEntries(ctx context.Context, typeFilter string) ([]model.CalendarEntry, error)
}
