package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/readme-studio/internal/github"
	"github.com/sakif/readme-studio/internal/model"
)

// maxSuggestedProjects caps how many repositories the prefill suggests.
const maxSuggestedProjects = 3

// GitHubHandler serves the profile prefill endpoint: given a username, it
// fetches the public profile and recent repositories and shapes them into
// form defaults.
type GitHubHandler struct {
	client *github.Client
	logger *slog.Logger
}

func NewGitHubHandler(client *github.Client, logger *slog.Logger) *GitHubHandler {
	return &GitHubHandler{client: client, logger: logger}
}

type prefillResponse struct {
	Name      string          `json:"name"`
	Bio       string          `json:"bio"`
	Username  string          `json:"username"`
	AvatarURL string          `json:"avatarUrl"`
	Projects  []model.Project `json:"projects"`
}

// HandlePrefill builds form defaults from a GitHub profile.
//
// HTTP: GET /api/github/{username}
// An X-GitHub-Token header switches to an authenticated client for this
// request only, lifting the anonymous rate limit. The token is never stored.
func (h *GitHubHandler) HandlePrefill(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(chi.URLParam(r, "username"))
	if username == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "username is required",
		})
		return
	}

	client := h.client
	if token := r.Header.Get("X-GitHub-Token"); token != "" {
		client = github.NewClient(token)
	}

	user, err := client.GetUser(r.Context(), username)
	if err != nil {
		h.logger.Warn("github prefill failed",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	repos, err := client.ListRepos(r.Context(), username)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := prefillResponse{
		Name:      user.Name,
		Bio:       user.Bio,
		Username:  user.Login,
		AvatarURL: user.AvatarURL,
		Projects:  suggestProjects(repos),
	}
	if resp.Name == "" {
		resp.Name = user.Login
	}

	writeJSON(w, http.StatusOK, resp)
}

// suggestProjects turns the most recently updated non-fork repositories into
// project entries, at most maxSuggestedProjects of them.
func suggestProjects(repos []github.Repo) []model.Project {
	projects := []model.Project{}
	for _, repo := range repos {
		if repo.Fork {
			continue
		}
		p := model.Project{
			Name:        repo.Name,
			Description: repo.Description,
			URL:         repo.HTMLURL,
		}
		if repo.Language != "" {
			p.Technologies = []string{repo.Language}
		}
		projects = append(projects, p)
		if len(projects) == maxSuggestedProjects {
			break
		}
	}
	return projects
}
