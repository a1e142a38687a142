package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/readme-studio/internal/apperror"
	"github.com/sakif/readme-studio/internal/model"
	"github.com/sakif/readme-studio/internal/repository"
	"github.com/sakif/readme-studio/internal/repository/memory"
)

func newTemplateService() *TemplateService {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewTemplateService(memory.New(), logger)
}

func TestSeed(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	templates, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, len(model.DefaultTemplates()))

	// Seeding twice must not duplicate.
	require.NoError(t, svc.Seed(ctx))
	templates, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, len(model.DefaultTemplates()))
}

func TestCreateTemplate(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "ada", TemplateInput{
		Name:     "  Minimal  ",
		Content:  "# {{name}}",
		Tags:     []string{"minimal"},
		IsPublic: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Minimal", created.Name, "name should be trimmed")
	assert.Equal(t, "ada", created.UserID)
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.ShareableID)
	assert.Zero(t, created.Likes)
}

func TestCreateTemplateValidation(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input TemplateInput
	}{
		{"empty name", TemplateInput{Name: " ", Content: "x"}},
		{"name too long", TemplateInput{Name: strings.Repeat("a", MaxTemplateNameLength+1), Content: "x"}},
		{"empty content", TemplateInput{Name: "ok", Content: ""}},
		{"content too long", TemplateInput{Name: "ok", Content: strings.Repeat("x", MaxContentLength+1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "", tt.input)
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}
}

func TestUpdateTemplate(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "ada", TemplateInput{Name: "Draft", Content: "old"})
	require.NoError(t, err)

	newName := "Final"
	newContent := "new"
	public := true
	updated, err := svc.Update(ctx, "ada", created.ID, TemplateUpdate{
		Name:     &newName,
		Content:  &newContent,
		Tags:     []string{"v2"},
		IsPublic: &public,
	})
	require.NoError(t, err)

	assert.Equal(t, "Final", updated.Name)
	assert.Equal(t, "new", updated.Content)
	assert.Equal(t, []string{"v2"}, updated.Tags)
	assert.True(t, updated.IsPublic)
	assert.Equal(t, created.ShareableID, updated.ShareableID)
}

func TestUpdatePartial(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "", TemplateInput{Name: "Keep", Content: "body", Tags: []string{"a"}})
	require.NoError(t, err)

	newContent := "revised"
	updated, err := svc.Update(ctx, "", created.ID, TemplateUpdate{Content: &newContent})
	require.NoError(t, err)

	assert.Equal(t, "Keep", updated.Name, "omitted fields keep their value")
	assert.Equal(t, "revised", updated.Content)
	assert.Equal(t, []string{"a"}, updated.Tags)
}

func TestUpdateOwnership(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "ada", TemplateInput{Name: "Mine", Content: "x"})
	require.NoError(t, err)

	newName := "Stolen"
	_, err = svc.Update(ctx, "mallory", created.ID, TemplateUpdate{Name: &newName})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	// Unowned templates may be edited by anyone.
	unowned, err := svc.Create(ctx, "", TemplateInput{Name: "Shared", Content: "x"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "mallory", unowned.ID, TemplateUpdate{Name: &newName})
	assert.NoError(t, err)
}

func TestDeleteTemplate(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "ada", TemplateInput{Name: "Gone", Content: "x"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "mallory", created.ID), apperror.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, "ada", created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "ada", created.ID), apperror.ErrNotFound)
}

func TestLikeTemplate(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "", TemplateInput{Name: "Popular", Content: "x"})
	require.NoError(t, err)

	for want := 1; want <= 3; want++ {
		liked, err := svc.Like(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, want, liked.Likes)
	}

	_, err = svc.Like(ctx, 9999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetByShareableID(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "", TemplateInput{Name: "Shared", Content: "x"})
	require.NoError(t, err)

	found, err := svc.GetByShareableID(ctx, created.ShareableID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByShareableID(ctx, "  ")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.GetByShareableID(ctx, "does-not-exist")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSearchClampsPagination(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, "", TemplateInput{Name: "t", Content: "x", IsPublic: true})
		require.NoError(t, err)
	}

	result, err := svc.Search(ctx, repository.SearchOptions{Page: 0, Limit: -1})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Total)
	assert.Len(t, result.Templates, 5, "default limit covers all five")

	result, err = svc.Search(ctx, repository.SearchOptions{Page: 1, Limit: MaxSearchLimit + 50})
	require.NoError(t, err)
	assert.Len(t, result.Templates, 5)
}

type failingRepo struct {
	repository.TemplateRepository
}

var errBoom = errors.New("boom")

func (failingRepo) List(context.Context) ([]model.Template, error) { return nil, errBoom }

func TestListWrapsRepositoryError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 4}))
	svc := NewTemplateService(failingRepo{}, logger)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, errBoom)
}
