package generator

import (
	"net/url"
	"strconv"

	"github.com/sakif/readme-studio/internal/model"
)

// Badge image services. The server only builds these URLs — the end viewer's
// browser fetches the rendered images.
const (
	statsBaseURL         = "https://github-readme-stats.vercel.app/api"
	topLangsBaseURL      = "https://github-readme-stats.vercel.app/api/top-langs/"
	trophyBaseURL        = "https://github-profile-trophy.vercel.app/"
	streakBaseURL        = "https://github-readme-streak-stats.herokuapp.com/"
	activityGraphBaseURL = "https://github-readme-activity-graph.vercel.app/graph"
	contributionBaseURL  = "https://ghchart.rshah.org/"
)

func trophyURL(username string, cfg model.TrophyConfig) string {
	q := url.Values{}
	q.Set("username", username)
	q.Set("theme", cfg.Theme)
	q.Set("row", strconv.Itoa(cfg.Row))
	q.Set("column", strconv.Itoa(cfg.Column))
	return trophyBaseURL + "?" + q.Encode()
}

func statsURL(username string) string {
	q := url.Values{}
	q.Set("username", username)
	q.Set("show_icons", "true")
	return statsBaseURL + "?" + q.Encode()
}

func streakURL(username string) string {
	q := url.Values{}
	q.Set("user", username)
	return streakBaseURL + "?" + q.Encode()
}

func topLangsURL(username string) string {
	q := url.Values{}
	q.Set("username", username)
	q.Set("layout", "compact")
	return topLangsBaseURL + "?" + q.Encode()
}

// contributionGraphURL interpolates the username into the chart service path.
func contributionGraphURL(username string) string {
	return contributionBaseURL + url.PathEscape(username)
}

func activityGraphURL(username string, cfg model.AnalyticsConfig) string {
	q := url.Values{}
	q.Set("username", username)
	q.Set("theme", cfg.GraphStyle)
	return activityGraphBaseURL + "?" + q.Encode()
}

func commitStatsURL(username string, cfg model.AnalyticsConfig) string {
	q := url.Values{}
	q.Set("username", username)
	q.Set("include_all_commits", "true")
	q.Set("theme", cfg.GraphStyle)
	if cfg.IncludePrivateRepos {
		q.Set("count_private", "true")
	}
	return statsBaseURL + "?" + q.Encode()
}
