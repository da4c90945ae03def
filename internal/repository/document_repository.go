package repository

import (
	"context"
	"time"

	"finextract/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// SaveResult identifies the row a validated record was persisted as.
type SaveResult struct {
	Table    string
	RecordID int64
}

// DocumentRepository persists validated records into the invoices and
// statements tables. The pool serializes transactions per connection, so
// concurrent callers are safe.
type DocumentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewDocumentRepository(db *pgxpool.Pool, logger *zap.Logger) *DocumentRepository {
	return &DocumentRepository{
		db:     db,
		logger: logger,
	}
}

// Save projects the record onto its table's column set and inserts it under
// an explicit transaction. Any failure rolls back fully; a partial row is
// never left behind.
func (r *DocumentRepository) Save(ctx context.Context, record *models.ExtractedRecord, filename string) (SaveResult, error) {
	if err := r.db.Ping(ctx); err != nil {
		return SaveResult{}, &PersistError{Op: "save document", NotConnected: true, Err: err}
	}

	table, row, err := projectRecord(record, filename, time.Now())
	if err != nil {
		return SaveResult{}, &PersistError{Op: "save document", Err: err}
	}

	query := squirrel.Insert(table).
		SetMap(row).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return SaveResult{}, &PersistError{Op: "save document", Err: err}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return SaveResult{}, &PersistError{Op: "save document", Err: err}
	}
	defer tx.Rollback(ctx)

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return SaveResult{}, &PersistError{Op: "save document", Err: err}
	}
	if err := tx.Commit(ctx); err != nil {
		return SaveResult{}, &PersistError{Op: "save document", Err: err}
	}

	r.logger.Info("Document persisted",
		zap.String("table", table),
		zap.Int64("record_id", id),
		zap.String("filename", filename),
	)
	return SaveResult{Table: table, RecordID: id}, nil
}

// GetInvoiceByID reads one invoice row back.
func (r *DocumentRepository) GetInvoiceByID(ctx context.Context, id int64) (*models.StoredRow, error) {
	rows, err := r.queryRows(ctx, "invoices", squirrel.Eq{"id": id}, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &PersistError{Op: "get invoice", Err: errNotFound}
	}
	return rows[0], nil
}

// GetStatementByID reads one statement row back.
func (r *DocumentRepository) GetStatementByID(ctx context.Context, id int64) (*models.StoredRow, error) {
	rows, err := r.queryRows(ctx, "statements", squirrel.Eq{"id": id}, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &PersistError{Op: "get statement", Err: errNotFound}
	}
	return rows[0], nil
}

// ListRecent returns the newest rows of both tables, most recent upload first.
func (r *DocumentRepository) ListRecent(ctx context.Context, limit int) ([]*models.StoredRow, []*models.StoredRow, error) {
	invoices, err := r.queryRows(ctx, "invoices", nil, limit)
	if err != nil {
		return nil, nil, err
	}
	statements, err := r.queryRows(ctx, "statements", nil, limit)
	if err != nil {
		return nil, nil, err
	}
	return invoices, statements, nil
}

func (r *DocumentRepository) queryRows(ctx context.Context, table string, where interface{}, limit int) ([]*models.StoredRow, error) {
	if err := r.db.Ping(ctx); err != nil {
		return nil, &PersistError{Op: "query " + table, NotConnected: true, Err: err}
	}

	columns := []string{
		"id", "document_type", "vendor_name", "customer_name",
		"total_amount::text", "filename", "uploaded_at", "line_items",
	}
	if table == "invoices" {
		columns = append(columns, "invoice_number", "invoice_date::text")
	} else {
		columns = append(columns, "reference", "statement_date::text")
	}

	query := squirrel.Select(columns...).
		From(table).
		OrderBy("uploaded_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, &PersistError{Op: "query " + table, Err: err}
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, &PersistError{Op: "query " + table, Err: err}
	}
	defer rows.Close()

	var result []*models.StoredRow
	for rows.Next() {
		var (
			row    models.StoredRow
			amount string
		)
		if table == "invoices" {
			err = rows.Scan(
				&row.ID, &row.DocumentType, &row.VendorName, &row.CustomerName,
				&amount, &row.Filename, &row.UploadedAt, &row.LineItems,
				&row.InvoiceNumber, &row.InvoiceDate,
			)
		} else {
			err = rows.Scan(
				&row.ID, &row.DocumentType, &row.VendorName, &row.CustomerName,
				&amount, &row.Filename, &row.UploadedAt, &row.LineItems,
				&row.Reference, &row.StatementDate,
			)
		}
		if err != nil {
			return nil, &PersistError{Op: "query " + table, Err: err}
		}
		row.TotalAmount, err = models.ParseDecimal(amount)
		if err != nil {
			return nil, &PersistError{Op: "query " + table, Err: err}
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistError{Op: "query " + table, Err: err}
	}
	return result, nil
}
