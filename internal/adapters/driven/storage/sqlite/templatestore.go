package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
)

// TemplateStore is a SQLite-backed implementation of driven.TemplateStore.
type TemplateStore struct {
	db *sql.DB
}

var _ driven.TemplateStore = (*TemplateStore)(nil)

const templateColumns = "id, name, content, description, type, created_at, updated_at"

// Get retrieves a template by ID.
func (s *TemplateStore) Get(ctx context.Context, id string) (*domain.Template, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+templateColumns+" FROM templates WHERE id = ?", id)

	tpl, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}
	return tpl, nil
}

// GetByName retrieves a template by case-insensitive name.
func (s *TemplateStore) GetByName(ctx context.Context, name string) (*domain.Template, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+templateColumns+" FROM templates WHERE name = ? COLLATE NOCASE", name)

	tpl, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting template by name: %w", err)
	}
	return tpl, nil
}

// List returns all stored templates ordered by name.
func (s *TemplateStore) List(ctx context.Context) ([]domain.Template, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+templateColumns+" FROM templates ORDER BY name COLLATE NOCASE")
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var tpls []domain.Template
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		tpls = append(tpls, *tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}
	return tpls, nil
}

// Add stores a new template. Returns domain.ErrAlreadyExists when another
// template already holds the name, compared case-insensitively.
func (s *TemplateStore) Add(ctx context.Context, tpl *domain.Template) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO templates (id, name, content, description, type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, tpl.ID, tpl.Name, tpl.Content, tpl.Description, string(tpl.Type), tpl.CreatedAt, nullTime(tpl.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("adding template: %w", err)
	}
	return nil
}

// Update replaces a stored template.
func (s *TemplateStore) Update(ctx context.Context, tpl *domain.Template) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE templates SET name = ?, content = ?, description = ?, type = ?, updated_at = ?
		WHERE id = ?
	`, tpl.Name, tpl.Content, tpl.Description, string(tpl.Type), nullTime(tpl.UpdatedAt), tpl.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("updating template: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating template: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a template by ID.
func (s *TemplateStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM templates WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTemplate(row rowScanner) (*domain.Template, error) {
	var tpl domain.Template
	var typ string
	var updatedAt sql.NullTime

	err := row.Scan(&tpl.ID, &tpl.Name, &tpl.Content, &tpl.Description, &typ,
		&tpl.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		t := updatedAt.Time.UTC()
		tpl.UpdatedAt = &t
	}
	tpl.CreatedAt = tpl.CreatedAt.UTC()
	tpl.Type = domain.TemplateType(typ)
	return &tpl, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// isUniqueViolation reports whether err is a SQLite unique constraint error.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
