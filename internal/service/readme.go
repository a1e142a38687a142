package service

import (
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/sakif/readme-studio/internal/apperror"
	"github.com/sakif/readme-studio/internal/generator"
	"github.com/sakif/readme-studio/internal/i18n"
	"github.com/sakif/readme-studio/internal/model"
)

// Trophy layout defaults applied when the client omits the customization.
const (
	defaultTrophyTheme  = "flat"
	defaultTrophyRow    = 2
	defaultTrophyColumn = 3

	defaultTimeRange  = "last_30_days"
	defaultGraphStyle = "default"
)

// ReadmeService validates profile submissions and runs the generation
// pipeline: reject invalid input, generate English Markdown, localize.
// Generation is never invoked on an input that fails validation.
type ReadmeService struct {
	logger *slog.Logger
}

func NewReadmeService(logger *slog.Logger) *ReadmeService {
	return &ReadmeService{logger: logger}
}

// Generate returns the localized README for a profile submission.
func (s *ReadmeService) Generate(in model.ProfileInput) (string, error) {
	normalize(&in)
	if err := validate(in); err != nil {
		return "", err
	}

	md := generator.Generate(in)
	md = i18n.Localize(md, in.Language)

	s.logger.Info("readme generated",
		slog.String("githubUsername", in.GitHubUsername),
		slog.String("language", in.Language),
		slog.Int("bytes", len(md)),
	)

	return md, nil
}

// normalize fills the enum defaults the form applies client-side, so a bare
// API call behaves like a form submission.
func normalize(in *model.ProfileInput) {
	in.Name = strings.TrimSpace(in.Name)
	in.GitHubUsername = strings.TrimSpace(in.GitHubUsername)

	if in.Language == "" {
		in.Language = i18n.DefaultLanguage
	}
	if in.CustomizeTrophy.Theme == "" {
		in.CustomizeTrophy.Theme = defaultTrophyTheme
	}
	if in.CustomizeTrophy.Row == 0 {
		in.CustomizeTrophy.Row = defaultTrophyRow
	}
	if in.CustomizeTrophy.Column == 0 {
		in.CustomizeTrophy.Column = defaultTrophyColumn
	}
	if in.Analytics.TimeRange == "" {
		in.Analytics.TimeRange = defaultTimeRange
	}
	if in.Analytics.GraphStyle == "" {
		in.Analytics.GraphStyle = defaultGraphStyle
	}
}

// validate enforces the profile invariants: required fields present, every
// enumerated value a member of its declared set, URLs well formed. The first
// violation is returned as a field-scoped validation error.
func validate(in model.ProfileInput) error {
	if in.Name == "" {
		return apperror.ValidationFailed("name", "name is required")
	}
	if strings.TrimSpace(in.Bio) == "" {
		return apperror.ValidationFailed("bio", "bio is required")
	}
	if in.GitHubUsername == "" {
		return apperror.ValidationFailed("githubUsername", "GitHub username is required")
	}

	if len(in.Skills) == 0 {
		return apperror.ValidationFailed("skills", "at least one skill is required")
	}
	for i, skill := range in.Skills {
		if strings.TrimSpace(skill) == "" {
			return apperror.ValidationFailed(fmt.Sprintf("skills[%d]", i), "skill cannot be empty")
		}
	}

	if len(in.ProgrammingLanguages) == 0 {
		return apperror.ValidationFailed("programmingLanguages", "at least one programming language is required")
	}
	for i, lang := range in.ProgrammingLanguages {
		if _, ok := model.ProgrammingLanguages[lang.Name]; !ok {
			return apperror.ValidationFailed(fmt.Sprintf("programmingLanguages[%d].name", i),
				fmt.Sprintf("unknown programming language %q", lang.Name))
		}
		if !slices.Contains(model.Proficiencies, lang.Proficiency) {
			return apperror.ValidationFailed(fmt.Sprintf("programmingLanguages[%d].proficiency", i),
				fmt.Sprintf("proficiency must be one of Beginner, Intermediate, Advanced, got %q", lang.Proficiency))
		}
	}

	for i, link := range in.SocialLinks {
		if _, ok := model.SocialPlatforms[link.Platform]; !ok {
			return apperror.ValidationFailed(fmt.Sprintf("socialLinks[%d].platform", i),
				fmt.Sprintf("unknown platform %q", link.Platform))
		}
		if strings.TrimSpace(link.Username) == "" {
			return apperror.ValidationFailed(fmt.Sprintf("socialLinks[%d].username", i), "username is required")
		}
	}

	for i, p := range in.Projects {
		if strings.TrimSpace(p.Name) == "" {
			return apperror.ValidationFailed(fmt.Sprintf("projects[%d].name", i), "project name is required")
		}
		if !validURL(p.URL) {
			return apperror.ValidationFailed(fmt.Sprintf("projects[%d].url", i),
				fmt.Sprintf("must be a valid URL, got %q", p.URL))
		}
	}

	for i, cs := range in.CustomSections {
		if strings.TrimSpace(cs.Title) == "" {
			return apperror.ValidationFailed(fmt.Sprintf("customSections[%d].title", i), "section title is required")
		}
	}

	if !slices.Contains(model.TrophyThemes, in.CustomizeTrophy.Theme) {
		return apperror.ValidationFailed("customizeTrophy.theme",
			fmt.Sprintf("unknown trophy theme %q", in.CustomizeTrophy.Theme))
	}
	if in.CustomizeTrophy.Row < 1 || in.CustomizeTrophy.Row > 6 {
		return apperror.ValidationFailed("customizeTrophy.row", "row must be between 1 and 6")
	}
	if in.CustomizeTrophy.Column < 1 || in.CustomizeTrophy.Column > 6 {
		return apperror.ValidationFailed("customizeTrophy.column", "column must be between 1 and 6")
	}

	if !slices.Contains(model.TimeRanges, in.Analytics.TimeRange) {
		return apperror.ValidationFailed("analytics.timeRange",
			fmt.Sprintf("unknown time range %q", in.Analytics.TimeRange))
	}
	if !slices.Contains(model.GraphThemes, in.Analytics.GraphStyle) {
		return apperror.ValidationFailed("analytics.graphStyle",
			fmt.Sprintf("unknown graph style %q", in.Analytics.GraphStyle))
	}

	if in.DetectedProjectType != "" && model.ProjectTypeName(in.DetectedProjectType) == "" {
		return apperror.ValidationFailed("detectedProjectType",
			fmt.Sprintf("unknown project type %q", in.DetectedProjectType))
	}

	if in.Language != i18n.DefaultLanguage && !i18n.Supported(in.Language) {
		return apperror.ValidationFailed("language", fmt.Sprintf("unsupported language %q", in.Language))
	}

	return nil
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
