package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/readme-studio/internal/model"
	"github.com/sakif/readme-studio/internal/service"
)

// ReadmeHandler exposes the README generation pipeline over HTTP.
type ReadmeHandler struct {
	readmes *service.ReadmeService
	logger  *slog.Logger
}

func NewReadmeHandler(readmes *service.ReadmeService, logger *slog.Logger) *ReadmeHandler {
	return &ReadmeHandler{readmes: readmes, logger: logger}
}

// generateRequest mirrors model.ProfileInput, except the display toggles are
// pointers so an absent field can default to true. The analytics toggles
// default to false, which a plain bool already gives us.
type generateRequest struct {
	Name                 string                      `json:"name"`
	Bio                  string                      `json:"bio"`
	GitHubUsername       string                      `json:"githubUsername"`
	Skills               []string                    `json:"skills"`
	ProgrammingLanguages []model.ProgrammingLanguage `json:"programmingLanguages"`
	SocialLinks          []model.SocialLink          `json:"socialLinks"`
	Projects             []model.Project             `json:"projects"`
	CustomSections       []model.CustomSection       `json:"customSections"`

	ShowGitHubStats   *bool `json:"showGitHubStats"`
	ShowTrophies      *bool `json:"showTrophies"`
	ShowLanguageStats *bool `json:"showLanguageStats"`
	ShowStreak        *bool `json:"showStreak"`

	CustomizeTrophy     model.TrophyConfig    `json:"customizeTrophy"`
	Analytics           model.AnalyticsConfig `json:"analytics"`
	DetectedProjectType string                `json:"detectedProjectType"`
	Language            string                `json:"language"`
}

type generateResponse struct {
	Markdown string `json:"markdown"`
}

// HandleGenerate runs the full pipeline for a profile submission.
//
// HTTP: POST /api/readme
func (h *ReadmeHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid readme request JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	in := model.ProfileInput{
		Name:                 req.Name,
		Bio:                  req.Bio,
		GitHubUsername:       req.GitHubUsername,
		Skills:               req.Skills,
		ProgrammingLanguages: req.ProgrammingLanguages,
		SocialLinks:          req.SocialLinks,
		Projects:             req.Projects,
		CustomSections:       req.CustomSections,
		ShowGitHubStats:      boolOr(req.ShowGitHubStats, true),
		ShowTrophies:         boolOr(req.ShowTrophies, true),
		ShowLanguageStats:    boolOr(req.ShowLanguageStats, true),
		ShowStreak:           boolOr(req.ShowStreak, true),
		CustomizeTrophy:      req.CustomizeTrophy,
		Analytics:            req.Analytics,
		DetectedProjectType:  req.DetectedProjectType,
		Language:             req.Language,
	}

	md, err := h.readmes.Generate(in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Markdown: md})
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
