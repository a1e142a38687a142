package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sakif/readme-studio/internal/model"
)

func minimalInput() model.ProfileInput {
	return model.ProfileInput{
		Name:           "Ada",
		GitHubUsername: "ada",
		Bio:            "I build things",
		Skills:         []string{"C++"},
		ProgrammingLanguages: []model.ProgrammingLanguage{
			{Name: "C++", Proficiency: model.ProficiencyAdvanced},
		},
	}
}

func TestGenerateMinimalProfile(t *testing.T) {
	md := Generate(minimalInput())

	assert.Contains(t, md, "# Hi there! I'm Ada 👋")
	assert.Contains(t, md, "## About Me\nI build things")
	assert.Contains(t, md, "## Skills\n- C++")

	// Languages render as "name (proficiency)" under their own heading,
	// never as a skill bullet.
	assert.Contains(t, md, "C++ (Advanced)")
	assert.Contains(t, md, "## Languages and Tools")

	// All display toggles are off: no centered badge block at all.
	assert.NotContains(t, md, `<div align="center">`)

	assert.Contains(t, md, attributionFooter)
}

func TestGenerateIsDeterministic(t *testing.T) {
	in := minimalInput()
	assert.Equal(t, Generate(in), Generate(in))
}

func TestSkillsBulletsPreserveOrder(t *testing.T) {
	in := minimalInput()
	in.Skills = []string{"Zig", "APL", "Make"}

	md := Generate(in)
	zig := strings.Index(md, "- Zig")
	apl := strings.Index(md, "- APL")
	mk := strings.Index(md, "- Make")
	if zig < 0 || apl < 0 || mk < 0 {
		t.Fatalf("missing skill bullets:\n%s", md)
	}
	if !(zig < apl && apl < mk) {
		t.Errorf("skill bullets out of input order: %d %d %d", zig, apl, mk)
	}
}

func TestEmptyListsKeepHeadings(t *testing.T) {
	in := minimalInput()
	in.Skills = nil
	in.ProgrammingLanguages = nil
	in.SocialLinks = nil
	in.Projects = nil

	md := Generate(in)
	for _, h := range []string{"## Skills", "## Languages and Tools", "## Connect with me", "## Projects"} {
		assert.Contains(t, md, h, "empty section must keep its heading")
	}
}

func TestBadgeBlock(t *testing.T) {
	in := minimalInput()
	in.ShowTrophies = true
	in.ShowGitHubStats = true
	in.ShowStreak = true
	in.ShowLanguageStats = true
	in.CustomizeTrophy = model.TrophyConfig{Theme: "dracula", Row: 2, Column: 3}

	md := Generate(in)

	assert.Contains(t, md, `<div align="center">`)
	assert.Contains(t, md, "github-profile-trophy.vercel.app")
	assert.Contains(t, md, "theme=dracula")
	assert.Contains(t, md, "row=2")
	assert.Contains(t, md, "column=3")
	assert.Contains(t, md, "github-readme-stats.vercel.app/api?")
	assert.Contains(t, md, "github-readme-streak-stats.herokuapp.com")
	assert.Contains(t, md, "top-langs")
	assert.Contains(t, md, "username=ada")
}

func TestBadgeBlockSingleFlag(t *testing.T) {
	in := minimalInput()
	in.ShowStreak = true

	md := Generate(in)
	assert.Contains(t, md, "github-readme-streak-stats.herokuapp.com")
	assert.NotContains(t, md, "github-profile-trophy")
	assert.NotContains(t, md, "top-langs")
}

func TestAnalyticsBlock(t *testing.T) {
	in := minimalInput()
	in.Analytics = model.AnalyticsConfig{
		ShowContributionGraph: true,
		ShowActivityGraph:     true,
		ShowCommitStats:       true,
		GraphStyle:            "react-dark",
		IncludePrivateRepos:   true,
	}

	md := Generate(in)
	assert.Contains(t, md, "ghchart.rshah.org/ada")
	assert.Contains(t, md, "github-readme-activity-graph.vercel.app/graph")
	assert.Contains(t, md, "theme=react-dark")
	assert.Contains(t, md, "include_all_commits=true")
	assert.Contains(t, md, "count_private=true")
}

func TestAnalyticsBlockOmittedWhenDisabled(t *testing.T) {
	md := Generate(minimalInput())
	assert.NotContains(t, md, "ghchart.rshah.org")
	assert.NotContains(t, md, "activity-graph")
}

func TestConnectSection(t *testing.T) {
	in := minimalInput()
	in.SocialLinks = []model.SocialLink{
		{Platform: "GitHub", Username: "ada"},
		{Platform: "LinkedIn", Username: "ada-l"},
		{Platform: "Myspace", Username: "ada"},
	}

	md := Generate(in)
	assert.Contains(t, md, "- [GitHub](https://github.com/ada)")
	assert.Contains(t, md, "- [LinkedIn](https://www.linkedin.com/in/ada-l)")
	// Unknown platform: bullet kept, empty base URL.
	assert.Contains(t, md, "- [Myspace](ada)")
}

func TestLanguagesSectionIcons(t *testing.T) {
	in := minimalInput()
	in.ProgrammingLanguages = []model.ProgrammingLanguage{
		{Name: "Go", Proficiency: model.ProficiencyIntermediate},
		{Name: "Befunge", Proficiency: model.ProficiencyBeginner},
	}

	md := Generate(in)
	assert.Contains(t, md, "devicons/devicon/master/icons/go/go-original.svg")
	assert.Contains(t, md, "Go (Intermediate)")
	// Unknown language: icon markup omitted, line kept.
	assert.Contains(t, md, "- Befunge (Beginner)")
	assert.NotContains(t, md, "befunge-original.svg")
}

func TestProjectsSection(t *testing.T) {
	in := minimalInput()
	in.Projects = []model.Project{
		{
			Name:         "engine",
			Description:  "A difference engine",
			URL:          "https://example.com/engine",
			Technologies: []string{"brass", "steam"},
		},
		{Name: "notes", Description: "Translator notes", URL: "https://example.com/notes"},
	}

	md := Generate(in)
	assert.Contains(t, md, "### engine\nA difference engine\n[View Project](https://example.com/engine)")
	assert.Contains(t, md, "Technologies: brass, steam")
	assert.Contains(t, md, "### notes\nTranslator notes\n[View Project](https://example.com/notes)")

	if strings.Index(md, "### engine") > strings.Index(md, "### notes") {
		t.Error("projects out of input order")
	}
}

func TestProjectTypeNote(t *testing.T) {
	in := minimalInput()
	in.DetectedProjectType = "go"

	md := Generate(in)
	assert.Contains(t, md, "**Project Type:** Go")
}

func TestProjectTypeNoteOmitted(t *testing.T) {
	md := Generate(minimalInput())
	assert.NotContains(t, md, "**Project Type:**")

	in := minimalInput()
	in.DetectedProjectType = "cobol" // unknown id resolves to no label
	assert.NotContains(t, Generate(in), "**Project Type:**")
}

func TestCustomSectionsVerbatim(t *testing.T) {
	in := minimalInput()
	in.CustomSections = []model.CustomSection{
		{Title: "Reading", Content: "Mostly punched cards."},
		{Title: "Talks", Content: "- 1843 keynote"},
	}

	md := Generate(in)
	assert.Contains(t, md, "## Reading\nMostly punched cards.")
	assert.Contains(t, md, "## Talks\n- 1843 keynote")
}
