// Package repository defines the storage contracts implemented by the
// memory and sqlite backends.
package repository

import (
	"context"

	"github.com/sakif/readme-studio/internal/model"
)

// SearchOptions filters and paginates a template search. Filters apply in
// order: public-only, owner match, case-insensitive substring match against
// name and content, then tag intersection (any overlap). Page is 1-based.
type SearchOptions struct {
	Query      string
	Tags       []string
	UserID     string
	PublicOnly bool
	Page       int
	Limit      int
}

// SearchResult carries one page of matches plus the post-filter total.
type SearchResult struct {
	Templates []model.Template `json:"templates"`
	Total     int              `json:"total"`
}

// TemplateRepository is the storage contract for README templates.
//
// Create assigns the id, shareable id, timestamps and a zero like counter,
// writing them back through the pointer. Every read returns a snapshot —
// callers never share memory with the store.
type TemplateRepository interface {
	Create(ctx context.Context, t *model.Template) error
	GetByID(ctx context.Context, id int64) (*model.Template, error)
	GetByShareableID(ctx context.Context, shareableID string) (*model.Template, error)
	List(ctx context.Context) ([]model.Template, error)
	Update(ctx context.Context, t *model.Template) error
	Delete(ctx context.Context, id int64) error
	Like(ctx context.Context, id int64) (*model.Template, error)
	Search(ctx context.Context, opts SearchOptions) (*SearchResult, error)
}
