package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Identifiers come from a BIGSERIAL
// sequence, so they are never reused even after deletes.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document and returns the stored record with its
// assigned id and creation time.
func (r *PGRepo) Create(ctx context.Context, doc Document) (Document, error) {
	const query = `
INSERT INTO documents (
    user_id,
    title,
    original_name,
    mime_type,
    file_url,
    extracted_data,
    original_text
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

	extracted, err := json.Marshal(doc.ExtractedData)
	if err != nil {
		return Document{}, fmt.Errorf("marshal extracted data: %w", err)
	}

	var originalText sql.NullString
	if doc.OriginalText != "" {
		originalText = sql.NullString{String: doc.OriginalText, Valid: true}
	}

	err = r.DB.QueryRowContext(
		ctx,
		query,
		doc.UserID,
		doc.Title,
		doc.OriginalName,
		doc.MimeType,
		doc.FileURL,
		extracted,
		originalText,
	).Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return Document{}, err
	}
	return doc, nil
}

// ListByUser lists a user's documents, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Document, error) {
	const query = `
SELECT id, user_id, title, original_name, mime_type, file_url, extracted_data, original_text, created_at
FROM documents
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// GetByID fetches a document by identifier regardless of owner.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Document, error) {
	const query = `
SELECT id, user_id, title, original_name, mime_type, file_url, extracted_data, original_text, created_at
FROM documents
WHERE id = $1
LIMIT 1`

	doc, err := scanDocument(func(dest ...any) error {
		return r.DB.QueryRowContext(ctx, query, id).Scan(dest...)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// DeleteByID removes a document. Deleting an unknown id affects zero rows and
// is not an error.
func (r *PGRepo) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM documents WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

func scanDocument(scan func(dest ...any) error) (Document, error) {
	var doc Document
	var extracted []byte
	var originalText sql.NullString

	if err := scan(
		&doc.ID,
		&doc.UserID,
		&doc.Title,
		&doc.OriginalName,
		&doc.MimeType,
		&doc.FileURL,
		&extracted,
		&originalText,
		&doc.CreatedAt,
	); err != nil {
		return Document{}, err
	}

	if len(extracted) > 0 {
		if err := json.Unmarshal(extracted, &doc.ExtractedData); err != nil {
			return Document{}, fmt.Errorf("unmarshal extracted data: %w", err)
		}
	}
	if originalText.Valid {
		doc.OriginalText = originalText.String
	}
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
