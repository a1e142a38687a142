// Package service contains the business logic layer: validation, ownership
// rules and orchestration. Handlers parse HTTP and delegate here; services
// talk to repositories and never touch HTTP.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/readme-studio/internal/apperror"
	"github.com/sakif/readme-studio/internal/model"
	"github.com/sakif/readme-studio/internal/repository"
)

const (
	MaxTemplateNameLength = 100
	MaxContentLength      = 100000 // ~100KB of Markdown
	DefaultSearchLimit    = 20
	MaxSearchLimit        = 100
)

// TemplateInput is a create request after JSON parsing, before validation.
type TemplateInput struct {
	Name     string
	Content  string
	Sections []string
	Tags     []string
	IsPublic bool
}

// TemplateUpdate is a partial update: nil fields keep their stored value.
type TemplateUpdate struct {
	Name     *string
	Content  *string
	Sections []string
	Tags     []string
	IsPublic *bool
}

// TemplateService handles business logic for README templates.
type TemplateService struct {
	repo   repository.TemplateRepository
	logger *slog.Logger
}

func NewTemplateService(repo repository.TemplateRepository, logger *slog.Logger) *TemplateService {
	return &TemplateService{
		repo:   repo,
		logger: logger,
	}
}

// Seed inserts the stock templates when the repository is empty, so a fresh
// instance has something to offer in the picker.
func (s *TemplateService) Seed(ctx context.Context) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("listing templates before seeding: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, t := range model.DefaultTemplates() {
		tpl := t
		if err := s.repo.Create(ctx, &tpl); err != nil {
			return fmt.Errorf("seeding template %q: %w", t.Name, err)
		}
	}

	s.logger.Info("seeded default templates", slog.Int("count", len(model.DefaultTemplates())))
	return nil
}

// Create validates and saves a new template. userID may be empty for an
// anonymous caller, leaving the template unowned.
func (s *TemplateService) Create(ctx context.Context, userID string, in TemplateInput) (*model.Template, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperror.ValidationFailed("name", "template name is required")
	}
	if len(name) > MaxTemplateNameLength {
		return nil, apperror.ValidationFailed("name",
			fmt.Sprintf("template name must be %d characters or less", MaxTemplateNameLength))
	}
	if in.Content == "" {
		return nil, apperror.ValidationFailed("content", "template content is required")
	}
	if len(in.Content) > MaxContentLength {
		return nil, apperror.ValidationFailed("content",
			fmt.Sprintf("template content must be %d characters or less", MaxContentLength))
	}

	t := &model.Template{
		Name:     name,
		Content:  in.Content,
		Sections: in.Sections,
		Tags:     in.Tags,
		IsPublic: in.IsPublic,
		UserID:   userID,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("failed to create template",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating template: %w", err)
	}

	s.logger.Info("template created",
		slog.Int64("id", t.ID),
		slog.String("name", t.Name),
		slog.String("shareableId", t.ShareableID),
	)

	return t, nil
}

func (s *TemplateService) List(ctx context.Context) ([]model.Template, error) {
	templates, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list templates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return templates, nil
}

func (s *TemplateService) GetByID(ctx context.Context, id int64) (*model.Template, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TemplateService) GetByShareableID(ctx context.Context, shareableID string) (*model.Template, error) {
	shareableID = strings.TrimSpace(shareableID)
	if shareableID == "" {
		return nil, apperror.ValidationFailed("shareableId", "shareable id is required")
	}
	return s.repo.GetByShareableID(ctx, shareableID)
}

// Update merges the provided fields into the stored template and saves it.
// Fetch-then-update keeps the not-found path consistent and lets us run the
// ownership check before touching anything.
func (s *TemplateService) Update(ctx context.Context, userID string, id int64, upd TemplateUpdate) (*model.Template, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(t, userID); err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, apperror.ValidationFailed("name", "template name cannot be empty")
		}
		if len(name) > MaxTemplateNameLength {
			return nil, apperror.ValidationFailed("name",
				fmt.Sprintf("template name must be %d characters or less", MaxTemplateNameLength))
		}
		t.Name = name
	}
	if upd.Content != nil {
		if len(*upd.Content) > MaxContentLength {
			return nil, apperror.ValidationFailed("content",
				fmt.Sprintf("template content must be %d characters or less", MaxContentLength))
		}
		t.Content = *upd.Content
	}
	if upd.Sections != nil {
		t.Sections = upd.Sections
	}
	if upd.Tags != nil {
		t.Tags = upd.Tags
	}
	if upd.IsPublic != nil {
		t.IsPublic = *upd.IsPublic
	}

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("failed to update template",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating template: %w", err)
	}

	s.logger.Info("template updated", slog.Int64("id", t.ID), slog.String("name", t.Name))
	return t, nil
}

func (s *TemplateService) Delete(ctx context.Context, userID string, id int64) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkOwnership(t, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("template deleted", slog.Int64("id", id))
	return nil
}

// Like increments the like counter. Anyone may like any template, repeatedly.
func (s *TemplateService) Like(ctx context.Context, id int64) (*model.Template, error) {
	t, err := s.repo.Like(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("template liked", slog.Int64("id", id), slog.Int("likes", t.Likes))
	return t, nil
}

// Search clamps pagination to sane bounds before delegating.
func (s *TemplateService) Search(ctx context.Context, opts repository.SearchOptions) (*repository.SearchResult, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultSearchLimit
	}
	if opts.Limit > MaxSearchLimit {
		opts.Limit = MaxSearchLimit
	}

	result, err := s.repo.Search(ctx, opts)
	if err != nil {
		s.logger.Error("failed to search templates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("searching templates: %w", err)
	}
	return result, nil
}

// checkOwnership rejects modification of someone else's template. Unowned
// templates are open to everyone.
func checkOwnership(t *model.Template, userID string) error {
	if t.UserID != "" && t.UserID != userID {
		return apperror.Forbidden("template belongs to another user")
	}
	return nil
}
