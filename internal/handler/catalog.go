package handler

import (
	"net/http"

	"github.com/sakif/readme-studio/internal/model"
)

// CatalogHandler serves the static option catalogs the form is populated
// from: selectable languages, platforms, themes and so on.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

type catalogResponse struct {
	ProgrammingLanguages map[string]string   `json:"programmingLanguages"`
	Proficiencies        []model.Proficiency `json:"proficiencies"`
	SocialPlatforms      map[string]string   `json:"socialPlatforms"`
	TrophyThemes         []string            `json:"trophyThemes"`
	GraphThemes          []string            `json:"graphThemes"`
	TimeRanges           []string            `json:"timeRanges"`
	ProjectTypes         []model.ProjectType `json:"projectTypes"`
	Languages            []model.Language    `json:"languages"`
}

// HandleCatalog returns every catalog in one response. The data is static,
// so there is nothing to inject.
//
// HTTP: GET /api/catalog
func (h *CatalogHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		ProgrammingLanguages: model.ProgrammingLanguages,
		Proficiencies:        model.Proficiencies,
		SocialPlatforms:      model.SocialPlatforms,
		TrophyThemes:         model.TrophyThemes,
		GraphThemes:          model.GraphThemes,
		TimeRanges:           model.TimeRanges,
		ProjectTypes:         model.ProjectTypes,
		Languages:            model.SupportedLanguages,
	})
}
