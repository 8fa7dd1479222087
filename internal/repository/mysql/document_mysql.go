package mysql

import (
	"context"
	"database/sql"

	"shipdocs/internal/model"
	"shipdocs/internal/repository"
)

// DocumentMySQL is the MySQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries only; user input is never
// interpolated into query text.
type DocumentMySQL struct {
	db *sql.DB
}

// NewDocumentMySQL creates a new DocumentMySQL repository.
func NewDocumentMySQL(db *sql.DB) *DocumentMySQL {
	return &DocumentMySQL{db: db}
}

var _ repository.DocumentRepository = (*DocumentMySQL)(nil)

const documentColumns = `id, image_path, document_number, upload_date, document_type, description, customer_name, shipment_status, document_summary, estimated_delivery_date`

// Insert appends one row and returns the auto-increment id.
func (r *DocumentMySQL) Insert(ctx context.Context, doc *model.Document) (int64, error) {
	const q = `
		INSERT INTO documents (image_path, document_number, upload_date, document_type,
			description, customer_name, shipment_status, document_summary, estimated_delivery_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, q,
		doc.ImagePath,
		doc.DocumentNumber,
		doc.UploadDate,
		doc.DocumentType,
		doc.Description,
		doc.CustomerName,
		doc.ShipmentStatus,
		doc.DocumentSummary,
		doc.EstimatedDelivery,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns documents newest-first, optionally filtered by type.
func (r *DocumentMySQL) List(ctx context.Context, typeFilter string) ([]model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents`
	args := []any{}
	if typeFilter != "" {
		q += ` WHERE document_type = ?`
		args = append(args, typeFilter)
	}
	q += ` ORDER BY upload_date DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		if err := scanDocument(rows, &d); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByID fetches a single document by its id.
func (r *DocumentMySQL) FindByID(ctx context.Context, id int64) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = ?`
	var d model.Document
	if err := scanDocument(r.db.QueryRowContext(ctx, q, id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// FindByNumber fetches a single document by its document number.
func (r *DocumentMySQL) FindByNumber(ctx context.Context, number string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE document_number = ? LIMIT 1`
	var d model.Document
	if err := scanDocument(r.db.QueryRowContext(ctx, q, number), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListCalendarEntries returns rows with a known estimated delivery date,
// ascending by that date.
func (r *DocumentMySQL) ListCalendarEntries(ctx context.Context, typeFilter string) ([]model.CalendarEntry, error) {
	q := `SELECT id, document_number, document_type, customer_name, estimated_delivery_date FROM documents WHERE estimated_delivery_date IS NOT NULL`
	args := []any{}
	if typeFilter != "" {
		q += ` AND document_type = ?`
		args = append(args, typeFilter)
	}
	q += ` ORDER BY estimated_delivery_date ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.CalendarEntry, 0)
	for rows.Next() {
		var e model.CalendarEntry
		if err := rows.Scan(&e.ID, &e.DocumentNumber, &e.DocumentType, &e.CustomerName, &e.EstimatedDate); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner, d *model.Document) error {
	return s.Scan(
		&d.ID,
		&d.ImagePath,
		&d.DocumentNumber,
		&d.UploadDate,
		&d.DocumentType,
		&d.Description,
		&d.CustomerName,
		&d.ShipmentStatus,
		&d.DocumentSummary,
		&d.EstimatedDelivery,
	)
}
