package repository

import (
	"context"
	"fmt"
	"sync"

	"finextract/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ratingDB is the slice of the pool the rating store uses. *pgxpool.Pool
// satisfies it.
type ratingDB interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ratingsSchema is the only DDL in the system; every other table is
// provisioned externally.
const ratingsSchema = `
CREATE TABLE IF NOT EXISTS ratings (
	id SERIAL PRIMARY KEY,
	filename TEXT NOT NULL,
	document_type TEXT NOT NULL,
	model TEXT NOT NULL,
	rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
	comment TEXT,
	document_id BIGINT,
	created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);`

// RatingFilter narrows a listing to one document or one document type.
// Both fields empty lists everything.
type RatingFilter struct {
	DocumentID   *int64
	DocumentType string
}

// RatingRepository records user-submitted extraction quality ratings, keyed
// by (filename, model). It bootstraps its own table on first use.
type RatingRepository struct {
	db     ratingDB
	logger *zap.Logger

	mu    sync.Mutex
	ready bool
}

func NewRatingRepository(db ratingDB, logger *zap.Logger) *RatingRepository {
	return &RatingRepository{
		db:     db,
		logger: logger,
	}
}

// ensureTable runs the DDL until it succeeds once. A failed attempt is
// retried on the next call; the failure is never cached.
func (r *RatingRepository) ensureTable(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready {
		return nil
	}
	if _, err := r.db.Exec(ctx, ratingsSchema); err != nil {
		return err
	}
	r.ready = true
	r.logger.Info("Ratings table ready")
	return nil
}

// Save inserts one rating. Ratings outside [1,5] never reach the table;
// in particular 0 ("unset") is rejected here as a final guard.
func (r *RatingRepository) Save(ctx context.Context, rating *models.RatingRecord) (int64, error) {
	if rating.Rating < 1 || rating.Rating > 5 {
		return 0, &PersistError{
			Op:  "save rating",
			Err: fmt.Errorf("rating %d out of range [1,5]", rating.Rating),
		}
	}
	if err := r.db.Ping(ctx); err != nil {
		return 0, &PersistError{Op: "save rating", NotConnected: true, Err: err}
	}
	if err := r.ensureTable(ctx); err != nil {
		return 0, &PersistError{Op: "save rating", Err: err}
	}

	query := squirrel.Insert("ratings").
		Columns("filename", "document_type", "model", "rating", "comment", "document_id").
		Values(rating.Filename, rating.DocumentType, rating.Model, rating.Rating, rating.Comment, rating.DocumentID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, &PersistError{Op: "save rating", Err: err}
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, &PersistError{Op: "save rating", Err: err}
	}

	r.logger.Info("Rating saved",
		zap.Int64("record_id", id),
		zap.String("filename", rating.Filename),
		zap.String("model", rating.Model),
		zap.Int("rating", rating.Rating),
	)
	return id, nil
}

// List returns ratings newest first, optionally filtered.
func (r *RatingRepository) List(ctx context.Context, filter RatingFilter) ([]*models.RatingRecord, error) {
	if err := r.db.Ping(ctx); err != nil {
		return nil, &PersistError{Op: "list ratings", NotConnected: true, Err: err}
	}
	if err := r.ensureTable(ctx); err != nil {
		return nil, &PersistError{Op: "list ratings", Err: err}
	}

	query := squirrel.Select("id", "filename", "document_type", "model", "rating", "comment", "document_id", "created_at").
		From("ratings").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if filter.DocumentID != nil {
		query = query.Where(squirrel.Eq{"document_id": *filter.DocumentID})
	}
	if filter.DocumentType != "" {
		query = query.Where(squirrel.Eq{"document_type": filter.DocumentType})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, &PersistError{Op: "list ratings", Err: err}
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, &PersistError{Op: "list ratings", Err: err}
	}
	defer rows.Close()

	var ratings []*models.RatingRecord
	for rows.Next() {
		var rec models.RatingRecord
		if err := rows.Scan(
			&rec.ID, &rec.Filename, &rec.DocumentType, &rec.Model,
			&rec.Rating, &rec.Comment, &rec.DocumentID, &rec.CreatedAt,
		); err != nil {
			return nil, &PersistError{Op: "list ratings", Err: err}
		}
		ratings = append(ratings, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistError{Op: "list ratings", Err: err}
	}
	return ratings, nil
}
