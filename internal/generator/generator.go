// Package generator assembles a profile form submission into a GitHub
// profile README.
//
// Generate is a pure function over a validated ProfileInput: same input,
// same Markdown, no I/O. Sections are emitted in a fixed order; list-valued
// sections keep their heading even when the list is empty, while the two
// badge blocks disappear entirely when none of their flags are set.
//
// Output is always English — localization is a separate pass (see i18n).
package generator

import (
	"fmt"
	"strings"

	"github.com/sakif/readme-studio/internal/i18n"
	"github.com/sakif/readme-studio/internal/model"
)

const attributionFooter = "*Generated with [README Studio](https://github.com/sakif/readme-studio)*"

// Generate renders the README Markdown for a validated profile input.
func Generate(in model.ProfileInput) string {
	var sections []string

	sections = append(sections, fmt.Sprintf("# %s %s 👋", i18n.Greeting(i18n.DefaultLanguage), in.Name))

	if block := badgeBlock(in); block != "" {
		sections = append(sections, block)
	}
	if block := analyticsBlock(in); block != "" {
		sections = append(sections, block)
	}

	sections = append(sections, heading(i18n.SectionAbout)+"\n"+in.Bio)

	if in.DetectedProjectType != "" {
		if label := model.ProjectTypeName(in.DetectedProjectType); label != "" {
			sections = append(sections, fmt.Sprintf("**Project Type:** %s", label))
		}
	}

	sections = append(sections, languagesSection(in.ProgrammingLanguages))
	sections = append(sections, skillsSection(in.Skills))
	sections = append(sections, connectSection(in.SocialLinks))
	sections = append(sections, projectsSection(in.Projects))

	for _, cs := range in.CustomSections {
		sections = append(sections, "## "+cs.Title+"\n"+cs.Content)
	}

	sections = append(sections, "---\n"+attributionFooter)

	return strings.Join(sections, "\n\n") + "\n"
}

func heading(key string) string {
	return "## " + i18n.Heading(key, i18n.DefaultLanguage)
}

// badgeBlock renders the centered stats-image block, or "" when every
// display toggle is off.
func badgeBlock(in model.ProfileInput) string {
	var imgs []string
	if in.ShowTrophies {
		imgs = append(imgs, img(trophyURL(in.GitHubUsername, in.CustomizeTrophy), "GitHub Trophies"))
	}
	if in.ShowGitHubStats {
		imgs = append(imgs, img(statsURL(in.GitHubUsername), "GitHub Stats"))
	}
	if in.ShowStreak {
		imgs = append(imgs, img(streakURL(in.GitHubUsername), "GitHub Streak"))
	}
	if in.ShowLanguageStats {
		imgs = append(imgs, img(topLangsURL(in.GitHubUsername), "Top Languages"))
	}
	return centered(imgs)
}

// analyticsBlock renders the centered analytics-graph block, or "" when no
// analytics flag is set.
func analyticsBlock(in model.ProfileInput) string {
	var imgs []string
	if in.Analytics.ShowContributionGraph {
		imgs = append(imgs, img(contributionGraphURL(in.GitHubUsername), "Contribution Graph"))
	}
	if in.Analytics.ShowActivityGraph {
		imgs = append(imgs, img(activityGraphURL(in.GitHubUsername, in.Analytics), "Activity Graph"))
	}
	if in.Analytics.ShowCommitStats {
		imgs = append(imgs, img(commitStatsURL(in.GitHubUsername, in.Analytics), "Commit Stats"))
	}
	return centered(imgs)
}

func img(src, alt string) string {
	return fmt.Sprintf(`<img src="%s" alt="%s" />`, src, alt)
}

func centered(imgs []string) string {
	if len(imgs) == 0 {
		return ""
	}
	return "<div align=\"center\">\n\n" + strings.Join(imgs, "\n") + "\n\n</div>"
}

func languagesSection(langs []model.ProgrammingLanguage) string {
	var b strings.Builder
	b.WriteString(heading(i18n.SectionLanguages))
	for _, l := range langs {
		b.WriteString("\n- ")
		// Unknown names simply lose their icon markup; the line is kept.
		if logo, ok := model.ProgrammingLanguages[l.Name]; ok {
			fmt.Fprintf(&b, `<img src="%s" alt="%s" width="20" height="20" /> `, logo, l.Name)
		}
		fmt.Fprintf(&b, "%s (%s)", l.Name, l.Proficiency)
	}
	return b.String()
}

func skillsSection(skills []string) string {
	var b strings.Builder
	b.WriteString(heading(i18n.SectionSkills))
	for _, s := range skills {
		b.WriteString("\n- " + s)
	}
	return b.String()
}

func connectSection(links []model.SocialLink) string {
	var b strings.Builder
	b.WriteString(heading(i18n.SectionConnect))
	for _, l := range links {
		// Unknown platforms resolve to an empty base URL; the bullet is
		// still emitted with an empty link target.
		base := model.SocialPlatforms[l.Platform]
		fmt.Fprintf(&b, "\n- [%s](%s%s)", l.Platform, base, l.Username)
	}
	return b.String()
}

func projectsSection(projects []model.Project) string {
	var b strings.Builder
	b.WriteString(heading(i18n.SectionProjects))
	for _, p := range projects {
		fmt.Fprintf(&b, "\n\n### %s\n%s\n[View Project](%s)", p.Name, p.Description, p.URL)
		if len(p.Technologies) > 0 {
			fmt.Fprintf(&b, "\nTechnologies: %s", strings.Join(p.Technologies, ", "))
		}
	}
	return b.String()
}
