package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
)

// DocumentStore is a SQLite-backed implementation of driven.DocumentStore.
type DocumentStore struct {
	db *sql.DB
}

var _ driven.DocumentStore = (*DocumentStore)(nil)

// Save stores or updates a document.
func (s *DocumentStore) Save(ctx context.Context, doc *domain.Document) error {
	var normalizedAt sql.NullTime
	if doc.NormalizedAt != nil {
		normalizedAt = sql.NullTime{Time: *doc.NormalizedAt, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, file_name, original_content, normalized_content, created_at, normalized_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			file_name = excluded.file_name,
			original_content = excluded.original_content,
			normalized_content = excluded.normalized_content,
			created_at = excluded.created_at,
			normalized_at = excluded.normalized_at,
			status = excluded.status
	`, doc.ID, doc.FileName, doc.OriginalContent, doc.NormalizedContent, doc.CreatedAt, normalizedAt, string(doc.Status))
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(ctx context.Context, id string) (*domain.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, file_name, original_content, normalized_content, created_at, normalized_at, status
		FROM documents WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return doc, nil
}

// List returns all stored documents.
func (s *DocumentStore) List(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, file_name, original_content, normalized_content, created_at, normalized_at, status
		FROM documents
	`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var doc domain.Document
	var normalizedAt sql.NullTime
	var status string

	err := row.Scan(&doc.ID, &doc.FileName, &doc.OriginalContent, &doc.NormalizedContent,
		&doc.CreatedAt, &normalizedAt, &status)
	if err != nil {
		return nil, err
	}

	if normalizedAt.Valid {
		t := normalizedAt.Time.UTC()
		doc.NormalizedAt = &t
	}
	doc.CreatedAt = doc.CreatedAt.UTC()
	doc.Status = domain.DocumentStatus(status)
	return &doc, nil
}
