package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/readme-studio/internal/apperror"
	"github.com/sakif/readme-studio/internal/model"
	"github.com/sakif/readme-studio/internal/repository"
)

func createTestTemplate(t *testing.T, s *Store, name string, public bool) *model.Template {
	t.Helper()
	tpl := &model.Template{
		Name:     name,
		Content:  "# " + name,
		IsPublic: public,
	}
	if err := s.Create(context.Background(), tpl); err != nil {
		t.Fatalf("failed to create test template: %v", err)
	}
	return tpl
}

func TestCreateAssignsFields(t *testing.T) {
	s := New()

	first := createTestTemplate(t, s, "Basic", true)
	second := createTestTemplate(t, s, "Professional", true)

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids not sequential: %d, %d", first.ID, second.ID)
	}
	if first.Likes != 0 {
		t.Errorf("new template likes = %d, want 0", first.Likes)
	}
	if first.ShareableID == "" {
		t.Error("Create() did not assign a shareable id")
	}
	if first.ShareableID == second.ShareableID {
		t.Error("shareable ids must be distinct across templates")
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Error("Create() did not set timestamps")
	}

	got, err := s.GetByID(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Likes != 0 || got.ShareableID != first.ShareableID {
		t.Errorf("stored template does not match created one: %+v", got)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	s := New()
	_, err := s.GetByID(context.Background(), 99)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByShareableID(t *testing.T) {
	s := New()
	created := createTestTemplate(t, s, "Basic", true)

	got, err := s.GetByShareableID(context.Background(), created.ShareableID)
	if err != nil {
		t.Fatalf("GetByShareableID() error = %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("got template %d, want %d", got.ID, created.ID)
	}

	if _, err := s.GetByShareableID(context.Background(), "nope"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLikeIncrements(t *testing.T) {
	s := New()
	created := createTestTemplate(t, s, "Basic", true)

	if _, err := s.Like(context.Background(), created.ID); err != nil {
		t.Fatalf("first Like() error = %v", err)
	}
	got, err := s.Like(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second Like() error = %v", err)
	}
	if got.Likes != 2 {
		t.Errorf("likes after two calls = %d, want 2", got.Likes)
	}
}

func TestLikeNotFound(t *testing.T) {
	s := New()
	_, err := s.Like(context.Background(), 404)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRefreshesTimestampAndKeepsIdentity(t *testing.T) {
	s := New()
	created := createTestTemplate(t, s, "Basic", true)

	updated := *created
	updated.Name = "Basic v2"
	if err := s.Update(context.Background(), &updated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := s.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Basic v2" {
		t.Errorf("name = %q, want %q", got.Name, "Basic v2")
	}
	if got.ShareableID != created.ShareableID {
		t.Error("Update() must not change the shareable id")
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Update() must not change createdAt")
	}
	if got.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("Update() must refresh updatedAt")
	}
}

func TestDelete(t *testing.T) {
	s := New()
	created := createTestTemplate(t, s, "Basic", true)

	if err := s.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.GetByID(context.Background(), created.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(context.Background(), created.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestSearchPagination(t *testing.T) {
	s := New()
	createTestTemplate(t, s, "Basic", true)
	createTestTemplate(t, s, "Professional", true)

	res, err := s.Search(context.Background(), repository.SearchOptions{Page: 1, Limit: 1})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if res.Total != 2 {
		t.Errorf("total = %d, want 2", res.Total)
	}
	if len(res.Templates) != 1 {
		t.Errorf("page size = %d, want 1", len(res.Templates))
	}

	res2, err := s.Search(context.Background(), repository.SearchOptions{Page: 2, Limit: 1})
	if err != nil {
		t.Fatalf("Search() page 2 error = %v", err)
	}
	if len(res2.Templates) != 1 || res2.Templates[0].ID == res.Templates[0].ID {
		t.Error("page 2 should hold the other template")
	}

	res3, err := s.Search(context.Background(), repository.SearchOptions{Page: 5, Limit: 1})
	if err != nil {
		t.Fatalf("Search() past end error = %v", err)
	}
	if len(res3.Templates) != 0 || res3.Total != 2 {
		t.Errorf("past-end page: got %d templates, total %d", len(res3.Templates), res3.Total)
	}
}

func TestSearchFilters(t *testing.T) {
	s := New()
	ctx := context.Background()

	pub := &model.Template{Name: "Minimal", Content: "clean look", IsPublic: true, Tags: []string{"minimal", "light"}}
	priv := &model.Template{Name: "Secret", Content: "drafts", IsPublic: false, UserID: "ada", Tags: []string{"wip"}}
	owned := &model.Template{Name: "Showcase", Content: "project heavy", IsPublic: true, UserID: "ada", Tags: []string{"projects"}}
	for _, tpl := range []*model.Template{pub, priv, owned} {
		if err := s.Create(ctx, tpl); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	t.Run("public only", func(t *testing.T) {
		res, _ := s.Search(ctx, repository.SearchOptions{PublicOnly: true, Page: 1, Limit: 10})
		if res.Total != 2 {
			t.Errorf("total = %d, want 2", res.Total)
		}
	})

	t.Run("owner match", func(t *testing.T) {
		res, _ := s.Search(ctx, repository.SearchOptions{UserID: "ada", Page: 1, Limit: 10})
		if res.Total != 2 {
			t.Errorf("total = %d, want 2", res.Total)
		}
	})

	t.Run("query matches name case-insensitively", func(t *testing.T) {
		res, _ := s.Search(ctx, repository.SearchOptions{Query: "minimal", Page: 1, Limit: 10})
		if res.Total != 1 || res.Templates[0].Name != "Minimal" {
			t.Errorf("unexpected result: %+v", res)
		}
	})

	t.Run("query matches content", func(t *testing.T) {
		res, _ := s.Search(ctx, repository.SearchOptions{Query: "project heavy", Page: 1, Limit: 10})
		if res.Total != 1 || res.Templates[0].Name != "Showcase" {
			t.Errorf("unexpected result: %+v", res)
		}
	})

	t.Run("tag intersection is any-overlap", func(t *testing.T) {
		res, _ := s.Search(ctx, repository.SearchOptions{Tags: []string{"light", "projects"}, Page: 1, Limit: 10})
		if res.Total != 2 {
			t.Errorf("total = %d, want 2", res.Total)
		}
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		res, _ := s.Search(ctx, repository.SearchOptions{Page: 1, Limit: 10})
		if res.Total != 3 {
			t.Errorf("total = %d, want 3", res.Total)
		}
	})
}

func TestSnapshotsDoNotAliasStore(t *testing.T) {
	s := New()
	created := &model.Template{Name: "Tagged", IsPublic: true, Tags: []string{"a"}}
	if err := s.Create(context.Background(), created); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, _ := s.GetByID(context.Background(), created.ID)
	got.Tags[0] = "mutated"
	got.Name = "mutated"

	again, _ := s.GetByID(context.Background(), created.ID)
	if again.Tags[0] != "a" || again.Name != "Tagged" {
		t.Error("mutating a returned snapshot leaked into the store")
	}
}
