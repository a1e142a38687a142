package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/readme-studio/internal/auth"
	"github.com/sakif/readme-studio/internal/repository"
	"github.com/sakif/readme-studio/internal/service"
)

// TemplateHandler manages CRUD, search, like and share endpoints for README
// templates.
type TemplateHandler struct {
	templates *service.TemplateService
	logger    *slog.Logger
}

func NewTemplateHandler(templates *service.TemplateService, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{templates: templates, logger: logger}
}

type templateRequest struct {
	Name     *string  `json:"name"`
	Content  *string  `json:"content"`
	Sections []string `json:"sections"`
	Tags     []string `json:"tags"`
	IsPublic *bool    `json:"isPublic"`
}

// HandleList returns every stored template.
//
// HTTP: GET /api/templates
func (h *TemplateHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

// HandleGetByID returns a single template.
//
// HTTP: GET /api/templates/{id}
func (h *TemplateHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	t, err := h.templates.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// HandleCreate saves a new template, owned by the caller when logged in.
//
// HTTP: POST /api/templates
func (h *TemplateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid template JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	userID, _ := auth.UserIDFromContext(r.Context())

	in := service.TemplateInput{
		Sections: req.Sections,
		Tags:     req.Tags,
	}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Content != nil {
		in.Content = *req.Content
	}
	if req.IsPublic != nil {
		in.IsPublic = *req.IsPublic
	}

	t, err := h.templates.Create(r.Context(), userID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// HandleUpdate applies a partial update to a template.
//
// HTTP: PUT /api/templates/{id}
func (h *TemplateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid template JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	userID, _ := auth.UserIDFromContext(r.Context())

	t, err := h.templates.Update(r.Context(), userID, id, service.TemplateUpdate{
		Name:     req.Name,
		Content:  req.Content,
		Sections: req.Sections,
		Tags:     req.Tags,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// HandleDelete removes a template.
//
// HTTP: DELETE /api/templates/{id}
func (h *TemplateHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	userID, _ := auth.UserIDFromContext(r.Context())

	if err := h.templates.Delete(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleLike increments a template's like counter.
//
// HTTP: POST /api/templates/{id}/like
func (h *TemplateHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	t, err := h.templates.Like(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// HandleGetByShareableID resolves a share link.
//
// HTTP: GET /api/templates/share/{shareableId}
func (h *TemplateHandler) HandleGetByShareableID(w http.ResponseWriter, r *http.Request) {
	t, err := h.templates.GetByShareableID(r.Context(), chi.URLParam(r, "shareableId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// HandleSearch filters and paginates templates.
//
// HTTP: GET /api/templates/search?q&tags&userId&public&page&limit
// tags is comma-separated; a template matches when it carries any of them.
func (h *TemplateHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := repository.SearchOptions{
		Query:      q.Get("q"),
		UserID:     q.Get("userId"),
		PublicOnly: q.Get("public") == "true",
	}

	if raw := q.Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				opts.Tags = append(opts.Tags, tag)
			}
		}
	}

	opts.Page, _ = strconv.Atoi(q.Get("page"))
	opts.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := h.templates.Search(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// parseID extracts the numeric {id} path parameter, writing a 400 when it is
// missing or not a number.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "template id must be a positive integer",
		})
		return 0, false
	}
	return id, true
}
