package model

import "time"

// Document types form a closed set; the documents.document_type column is an
// ENUM over the same values.
const (
	TypeInvoice           = "Invoice"
	TypeBillOfLading      = "Bill of Lading"
	TypeCustomerPaperwork = "Customer Paperwork"
	TypePackingList       = "Packing List"
	TypeOther             = "Other"
)

// Shipment statuses, also backed by an ENUM column.
const (
	StatusInTransit = "In Transit"
	StatusPending   = "Pending"
	StatusDelivered = "Delivered"
)

// AllowedTypes lists every valid document type, in display order.
var AllowedTypes = []string{
	TypeInvoice,
	TypeBillOfLading,
	TypeCustomerPaperwork,
	TypePackingList,
	TypeOther,
}

// AllowedStatuses lists every valid shipment status.
var AllowedStatuses = []string{
	StatusInTransit,
	StatusPending,
	StatusDelivered,
}

// IsValidType reports whether t is a member of the allowed document type set.
func IsValidType(t string) bool {
	for _, v := range AllowedTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s is a member of the allowed shipment status set.
func IsValidStatus(s string) bool {
	for _, v := range AllowedStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Document represents one uploaded shipment document: metadata plus a
// reference to a stored file (or a placeholder URL when none was attached).
// This is a pure domain model with no database-specific dependencies or tags.
// Rows are insert-only; there are no update or delete paths.
type Document struct {
	ID                int64      `json:"id"`
	ImagePath         string     `json:"image_path"`
	DocumentNumber    string     `json:"document_number"`
	UploadDate        time.Time  `json:"upload_date"`
	DocumentType      string     `json:"document_type"`
	Description       *string    `json:"description"`
	CustomerName      *string    `json:"customer_name"`
	ShipmentStatus    string     `json:"shipment_status"`
	DocumentSummary   *string    `json:"document_summary"`
	EstimatedDelivery *time.Time `json:"estimated_delivery_date"`
}

// CalendarEntry is the projection used by the delivery calendar: only rows
// with a known estimated delivery date are included.
type CalendarEntry struct {
	ID             int64
	DocumentNumber string
	DocumentType   string
	CustomerName   *string
	EstimatedDate  time.Time
}
