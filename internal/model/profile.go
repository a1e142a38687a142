// Package model defines the data structures used throughout the application.
// Structs here carry no behaviour beyond small lookup helpers — validation
// lives in the service layer, rendering in the generator.
package model

// Proficiency is the self-assessed skill level for a programming language.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
)

// Proficiencies is the full set of accepted proficiency values.
var Proficiencies = []Proficiency{
	ProficiencyBeginner,
	ProficiencyIntermediate,
	ProficiencyAdvanced,
}

// ProgrammingLanguage is one entry of the user's language list.
type ProgrammingLanguage struct {
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

// SocialLink points at the user's profile on an external platform.
// The platform resolves to a base URL via SocialPlatforms; the final link is
// base URL + username.
type SocialLink struct {
	Platform string `json:"platform"`
	Username string `json:"username"`
}

// Project is a highlighted repository or piece of work.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	Technologies []string `json:"technologies"`
}

// CustomSection is a free-text heading/content pair rendered verbatim.
type CustomSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TrophyConfig customizes the github-profile-trophy badge.
type TrophyConfig struct {
	Theme  string `json:"theme"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
}

// AnalyticsConfig selects which analytics graphs to embed and how to style them.
type AnalyticsConfig struct {
	ShowContributionGraph bool   `json:"showContributionGraph"`
	ShowActivityGraph     bool   `json:"showActivityGraph"`
	ShowCommitStats       bool   `json:"showCommitStats"`
	TimeRange             string `json:"timeRange"`
	GraphStyle            string `json:"graphStyle"`
	IncludePrivateRepos   bool   `json:"includePrivateRepos"`
}

// ProfileInput is a validated README form submission. The generator assumes
// an input has already passed service-level validation; it never rejects.
type ProfileInput struct {
	Name                 string                `json:"name"`
	Bio                  string                `json:"bio"`
	GitHubUsername       string                `json:"githubUsername"`
	Skills               []string              `json:"skills"`
	ProgrammingLanguages []ProgrammingLanguage `json:"programmingLanguages"`
	SocialLinks          []SocialLink          `json:"socialLinks"`
	Projects             []Project             `json:"projects"`
	CustomSections       []CustomSection       `json:"customSections"`

	ShowGitHubStats   bool `json:"showGitHubStats"`
	ShowTrophies      bool `json:"showTrophies"`
	ShowLanguageStats bool `json:"showLanguageStats"`
	ShowStreak        bool `json:"showStreak"`

	CustomizeTrophy     TrophyConfig    `json:"customizeTrophy"`
	Analytics           AnalyticsConfig `json:"analytics"`
	DetectedProjectType string          `json:"detectedProjectType"`

	// Language selects the output localization, defaulting to "en".
	Language string `json:"language"`

	// GitHubAPIToken is only ever used to call the GitHub REST API on the
	// user's behalf. It is never persisted.
	GitHubAPIToken string `json:"githubApiToken,omitempty"`
}

// ProgrammingLanguages maps each selectable language name to its devicon logo
// URL. The generator omits the icon markup for names not present here.
var ProgrammingLanguages = map[string]string{
	"TypeScript": "https://raw.githubusercontent.com/devicons/devicon/master/icons/typescript/typescript-original.svg",
	"JavaScript": "https://raw.githubusercontent.com/devicons/devicon/master/icons/javascript/javascript-original.svg",
	"Python":     "https://raw.githubusercontent.com/devicons/devicon/master/icons/python/python-original.svg",
	"Java":       "https://raw.githubusercontent.com/devicons/devicon/master/icons/java/java-original.svg",
	"C++":        "https://raw.githubusercontent.com/devicons/devicon/master/icons/cplusplus/cplusplus-original.svg",
	"Ruby":       "https://raw.githubusercontent.com/devicons/devicon/master/icons/ruby/ruby-original.svg",
	"Go":         "https://raw.githubusercontent.com/devicons/devicon/master/icons/go/go-original.svg",
	"Rust":       "https://raw.githubusercontent.com/devicons/devicon/master/icons/rust/rust-plain.svg",
	"PHP":        "https://raw.githubusercontent.com/devicons/devicon/master/icons/php/php-original.svg",
	"Swift":      "https://raw.githubusercontent.com/devicons/devicon/master/icons/swift/swift-original.svg",
	"Kotlin":     "https://raw.githubusercontent.com/devicons/devicon/master/icons/kotlin/kotlin-original.svg",
	"React":      "https://raw.githubusercontent.com/devicons/devicon/master/icons/react/react-original.svg",
	"Vue":        "https://raw.githubusercontent.com/devicons/devicon/master/icons/vuejs/vuejs-original.svg",
	"Angular":    "https://raw.githubusercontent.com/devicons/devicon/master/icons/angularjs/angularjs-original.svg",
	"Node.js":    "https://raw.githubusercontent.com/devicons/devicon/master/icons/nodejs/nodejs-original.svg",
}

// SocialPlatforms maps each supported platform to the base URL its username
// is appended to. An unknown platform yields an empty base URL — the bullet
// is still rendered, with an empty link target.
var SocialPlatforms = map[string]string{
	"GitHub":    "https://github.com/",
	"Twitter":   "https://twitter.com/",
	"LinkedIn":  "https://www.linkedin.com/in/",
	"Dev.to":    "https://dev.to/",
	"Medium":    "https://medium.com/@",
	"Instagram": "https://www.instagram.com/",
	"YouTube":   "https://www.youtube.com/@",
	"Facebook":  "https://www.facebook.com/",
}

// TrophyThemes are the accepted github-profile-trophy themes.
var TrophyThemes = []string{"flat", "onedark", "gruvbox", "dracula", "monokai"}

// GraphThemes are the accepted github-readme-activity-graph themes.
var GraphThemes = []string{"default", "github", "github-compact", "react", "react-dark", "minimal", "dracula"}

// TimeRanges are the accepted analytics time ranges.
var TimeRanges = []string{"last_7_days", "last_30_days", "last_90_days", "last_year", "all_time"}

// ProjectType is a detectable project ecosystem with its display label.
type ProjectType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectTypes lists the ecosystems the project detector can report.
var ProjectTypes = []ProjectType{
	{ID: "nodejs", Name: "Node.js"},
	{ID: "python", Name: "Python"},
	{ID: "rust", Name: "Rust"},
	{ID: "java", Name: "Java"},
	{ID: "go", Name: "Go"},
}

// ProjectTypeName returns the display label for a project type id, or ""
// when the id is unknown.
func ProjectTypeName(id string) string {
	for _, pt := range ProjectTypes {
		if pt.ID == id {
			return pt.Name
		}
	}
	return ""
}

// Language pairs an ISO-like code with its English display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedLanguages lists the README output languages.
var SupportedLanguages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "ru", Name: "Russian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ar", Name: "Arabic"},
}
