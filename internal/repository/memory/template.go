// Package memory implements the template repository as a process-local map.
// This is the default backend: template data does not survive a restart.
package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/readme-studio/internal/apperror"
	"github.com/sakif/readme-studio/internal/model"
	"github.com/sakif/readme-studio/internal/repository"
)

var _ repository.TemplateRepository = (*Store)(nil)

// Store holds templates in a map keyed by their sequential id.
//
// net/http serves requests concurrently, so the map is guarded by a RWMutex
// even though individual operations are simple. Reads and writes both copy —
// no caller ever holds a pointer into the store.
type Store struct {
	mu     sync.RWMutex
	byID   map[int64]*model.Template
	nextID int64
}

// New creates an empty store. Callers that want the stock templates seed it
// with model.DefaultTemplates at startup.
func New() *Store {
	return &Store{
		byID:   make(map[int64]*model.Template),
		nextID: 1,
	}
}

func (s *Store) Create(_ context.Context, t *model.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.nextID
	s.nextID++

	t.ShareableID = xid.New().String()
	t.Likes = 0
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	stored := clone(t)
	s.byID[t.ID] = &stored
	return nil
}

func (s *Store) GetByID(_ context.Context, id int64) (*model.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, apperror.NotFound("template", strconv.FormatInt(id, 10))
	}
	snapshot := clone(t)
	return &snapshot, nil
}

// GetByShareableID is a linear scan — shareable ids are random short strings
// and the collection is small.
func (s *Store) GetByShareableID(_ context.Context, shareableID string) (*model.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.byID {
		if t.ShareableID == shareableID {
			snapshot := clone(t)
			return &snapshot, nil
		}
	}
	return nil, apperror.NotFound("template", shareableID)
}

// List returns all templates ordered by id.
func (s *Store) List(_ context.Context) ([]model.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(), nil
}

// Update replaces the stored row and refreshes updatedAt. Field merging is
// the service layer's job (fetch, merge, update).
func (s *Store) Update(_ context.Context, t *model.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.byID[t.ID]
	if !ok {
		return apperror.NotFound("template", strconv.FormatInt(t.ID, 10))
	}

	t.CreatedAt = existing.CreatedAt
	t.ShareableID = existing.ShareableID
	t.UpdatedAt = time.Now()

	stored := clone(t)
	s.byID[t.ID] = &stored
	return nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return apperror.NotFound("template", strconv.FormatInt(id, 10))
	}
	delete(s.byID, id)
	return nil
}

// Like increments the like counter by one and returns the new snapshot.
// There is no upper bound and no caller de-duplication.
func (s *Store) Like(_ context.Context, id int64) (*model.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, apperror.NotFound("template", strconv.FormatInt(id, 10))
	}
	t.Likes++
	t.UpdatedAt = time.Now()

	snapshot := clone(t)
	return &snapshot, nil
}

func (s *Store) Search(_ context.Context, opts repository.SearchOptions) (*repository.SearchResult, error) {
	s.mu.RLock()
	candidates := s.sortedLocked()
	s.mu.RUnlock()

	matched := make([]model.Template, 0, len(candidates))
	for _, t := range candidates {
		if opts.PublicOnly && !t.IsPublic {
			continue
		}
		if opts.UserID != "" && t.UserID != opts.UserID {
			continue
		}
		if opts.Query != "" && !matchesQuery(t, opts.Query) {
			continue
		}
		if len(opts.Tags) > 0 && !anyTagOverlap(t.Tags, opts.Tags) {
			continue
		}
		matched = append(matched, t)
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

// sortedLocked snapshots all templates ordered by id. Callers must hold at
// least a read lock.
func (s *Store) sortedLocked() []model.Template {
	out := make([]model.Template, 0, len(s.byID))
	for _, t := range s.byID {
		out = append(out, clone(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func matchesQuery(t model.Template, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.Content), q)
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

// clone deep-copies a template so stored rows and returned snapshots never
// share slice memory.
func clone(t *model.Template) model.Template {
	c := *t
	c.Sections = append([]string(nil), t.Sections...)
	c.Tags = append([]string(nil), t.Tags...)
	return c
}
