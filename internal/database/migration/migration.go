// Package migration keeps the documents table in the shape the application
// expects: create-if-missing, add-column-if-missing. Every statement is
// idempotent so running the routine repeatedly is safe.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const createDocumentsTable = `CREATE TABLE IF NOT EXISTS documents (
  id INT AUTO_INCREMENT PRIMARY KEY,
  image_path VARCHAR(512) NOT NULL,
  document_number VARCHAR(64) NOT NULL,
  upload_date DATETIME NOT NULL,
  document_type ENUM('Invoice', 'Bill of Lading', 'Customer Paperwork', 'Packing List', 'Other') NOT NULL,
  description VARCHAR(512),
  customer_name VARCHAR(128),
  shipment_status ENUM('In Transit','Pending','Delivered') NOT NULL,
  document_summary TEXT
)`

const columnExistsQuery = `SELECT COUNT(*) FROM INFORMATION_SCHEMA.COLUMNS
WHERE TABLE_SCHEMA = ? AND TABLE_NAME = 'documents' AND COLUMN_NAME = ?`

const addEstimatedDeliveryColumn = `ALTER TABLE documents ADD COLUMN estimated_delivery_date DATETIME NULL`

// EnsureSchema guarantees the documents table exists with all required
// columns. The estimated_delivery_date column predates only some deployments,
// so it is probed via INFORMATION_SCHEMA and added when absent. Callers must
// treat any error as fatal: the process should not serve requests against a
// missing or partial schema.
func EnsureSchema(ctx context.Context, db *sql.DB, dbName string, log *zap.Logger) error {
	start := time.Now()
	log.Info("ensuring documents schema", zap.String("database", dbName))

	if _, err := db.ExecContext(ctx, createDocumentsTable); err != nil {
		log.Error("create documents table failed", zap.Error(err))
		return fmt.Errorf("create documents table: %w", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, columnExistsQuery, dbName, "estimated_delivery_date").Scan(&count); err != nil {
		log.Error("column inspection failed", zap.Error(err))
		return fmt.Errorf("inspect documents columns: %w", err)
	}

	if count == 0 {
		if _, err := db.ExecContext(ctx, addEstimatedDeliveryColumn); err != nil {
			log.Error("add estimated_delivery_date column failed", zap.Error(err))
			return fmt.Errorf("add estimated_delivery_date column: %w", err)
		}
		log.Info("added estimated_delivery_date column")
	}

	log.Info("documents schema ready", zap.Duration("took", time.Since(start)))
	return nil
}
