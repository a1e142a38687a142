package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/readme-studio/internal/apperror"
	"github.com/sakif/readme-studio/internal/model"
	"github.com/sakif/readme-studio/internal/repository"
)

// Compile-time check that *DB satisfies the repository contract.
var _ repository.TemplateRepository = (*DB)(nil)

const templateColumns = `id, name, content, sections, user_id, is_public, tags, likes, shareable_id, created_at, updated_at`

// Create inserts a new template. The sequential id comes from SQLite's
// AUTOINCREMENT; the shareable id is a fresh xid. Both are written back
// through the pointer, matching the memory backend.
func (db *DB) Create(ctx context.Context, t *model.Template) error {
	t.ShareableID = xid.New().String()
	t.Likes = 0
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	sections, tags, err := encodeLists(t)
	if err != nil {
		return err
	}

	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO templates (name, content, sections, user_id, is_public, tags, likes, shareable_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Name, t.Content, sections, t.UserID, t.IsPublic, tags, t.Likes, t.ShareableID, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating template: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new template id: %w", err)
	}
	t.ID = id

	return nil
}

func (db *DB) GetByID(ctx context.Context, id int64) (*model.Template, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+templateColumns+` FROM templates WHERE id = ?`, id)

	t, err := scanTemplate(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("template", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("sqlite: getting template %d: %w", id, err)
	}
	return t, nil
}

func (db *DB) GetByShareableID(ctx context.Context, shareableID string) (*model.Template, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+templateColumns+` FROM templates WHERE shareable_id = ?`, shareableID)

	t, err := scanTemplate(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("template", shareableID)
		}
		return nil, fmt.Errorf("sqlite: getting template by shareable id %s: %w", shareableID, err)
	}
	return t, nil
}

func (db *DB) List(ctx context.Context) ([]model.Template, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+templateColumns+` FROM templates ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing templates: %w", err)
	}
	defer rows.Close()

	return collectTemplates(rows)
}

// Update replaces the mutable columns and refreshes updated_at. Identity
// columns (id, shareable_id, created_at, likes) stay as stored.
func (db *DB) Update(ctx context.Context, t *model.Template) error {
	t.UpdatedAt = time.Now()

	sections, tags, err := encodeLists(t)
	if err != nil {
		return err
	}

	result, err := db.conn.ExecContext(ctx,
		`UPDATE templates
		 SET name = ?, content = ?, sections = ?, user_id = ?, is_public = ?, tags = ?, updated_at = ?
		 WHERE id = ?`,
		t.Name, t.Content, sections, t.UserID, t.IsPublic, tags, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating template %d: %w", t.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("template", strconv.FormatInt(t.ID, 10))
	}

	return nil
}

func (db *DB) Delete(ctx context.Context, id int64) error {
	result, err := db.conn.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting template %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("template", strconv.FormatInt(id, 10))
	}

	return nil
}

// Like increments the counter in a single UPDATE so concurrent likes never
// lose increments, then reads back the new snapshot.
func (db *DB) Like(ctx context.Context, id int64) (*model.Template, error) {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE templates SET likes = likes + 1, updated_at = ? WHERE id = ?`,
		time.Now(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: liking template %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, apperror.NotFound("template", strconv.FormatInt(id, 10))
	}

	return db.GetByID(ctx, id)
}

// Search pushes the public/owner/query filters into SQL and applies the tag
// overlap filter and pagination in Go, keeping semantics identical to the
// memory backend.
func (db *DB) Search(ctx context.Context, opts repository.SearchOptions) (*repository.SearchResult, error) {
	query := `SELECT ` + templateColumns + ` FROM templates`
	var clauses []string
	var args []any

	if opts.PublicOnly {
		clauses = append(clauses, `is_public = 1`)
	}
	if opts.UserID != "" {
		clauses = append(clauses, `user_id = ?`)
		args = append(args, opts.UserID)
	}
	if opts.Query != "" {
		clauses = append(clauses, `(LOWER(name) LIKE ? OR LOWER(content) LIKE ?)`)
		pattern := "%" + strings.ToLower(opts.Query) + "%"
		args = append(args, pattern, pattern)
	}

	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, ` AND `)
	}
	query += ` ORDER BY id ASC`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: searching templates: %w", err)
	}
	defer rows.Close()

	candidates, err := collectTemplates(rows)
	if err != nil {
		return nil, err
	}

	matched := candidates
	if len(opts.Tags) > 0 {
		matched = matched[:0]
		for _, t := range candidates {
			if anyTagOverlap(t.Tags, opts.Tags) {
				matched = append(matched, t)
			}
		}
	}

	total := len(matched)
	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &repository.SearchResult{
		Templates: matched[start:end],
		Total:     total,
	}, nil
}

func anyTagOverlap(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func encodeLists(t *model.Template) (sections, tags string, err error) {
	sb, err := json.Marshal(sliceOrEmpty(t.Sections))
	if err != nil {
		return "", "", fmt.Errorf("sqlite: encoding sections: %w", err)
	}
	tb, err := json.Marshal(sliceOrEmpty(t.Tags))
	if err != nil {
		return "", "", fmt.Errorf("sqlite: encoding tags: %w", err)
	}
	return string(sb), string(tb), nil
}

func sliceOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row scanner) (*model.Template, error) {
	var t model.Template
	var sections, tags string

	err := row.Scan(
		&t.ID, &t.Name, &t.Content, &sections, &t.UserID, &t.IsPublic,
		&tags, &t.Likes, &t.ShareableID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(sections), &t.Sections); err != nil {
		return nil, fmt.Errorf("sqlite: decoding sections for template %d: %w", t.ID, err)
	}
	if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
		return nil, fmt.Errorf("sqlite: decoding tags for template %d: %w", t.ID, err)
	}

	return &t, nil
}

func collectTemplates(rows *sql.Rows) ([]model.Template, error) {
	templates := make([]model.Template, 0, 16)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scanning template row: %w", err)
		}
		templates = append(templates, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating templates: %w", err)
	}
	return templates, nil
}
