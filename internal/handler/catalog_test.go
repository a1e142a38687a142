package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCatalog(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	rr := httptest.NewRecorder()
	NewCatalogHandler().HandleCatalog(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp catalogResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Contains(t, resp.ProgrammingLanguages, "Go")
	assert.Contains(t, resp.SocialPlatforms, "LinkedIn")
	assert.Len(t, resp.Proficiencies, 3)
	assert.Contains(t, resp.TrophyThemes, "flat")
	assert.Contains(t, resp.GraphThemes, "github-compact")
	assert.Contains(t, resp.TimeRanges, "last_30_days")
	assert.Len(t, resp.Languages, 10)
	assert.Len(t, resp.ProjectTypes, 5)
}
