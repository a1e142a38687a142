// Package i18n localizes generated README Markdown.
//
// Localization is a literal find/replace pass over already-generated output:
// every "## <English heading>" occurrence is swapped for its translation, and
// the English greeting phrase is swapped for the localized one. A heading
// string that happens to appear inside user-supplied free text is replaced
// too — that matches the behaviour users already rely on, so it stays.
package i18n

import "strings"

// DefaultLanguage is the code for which Localize is the identity function.
const DefaultLanguage = "en"

// Section keys. Heading lookups are keyed on these, not on display strings.
const (
	SectionAbout        = "about"
	SectionSkills       = "skills"
	SectionLanguages    = "languages"
	SectionProjects     = "projects"
	SectionConnect      = "connect"
	SectionEducation    = "education"
	SectionExperience   = "experience"
	SectionAchievements = "achievements"
	SectionContact      = "contact"
)

// sectionKeys fixes the replacement order so Localize is deterministic.
var sectionKeys = []string{
	SectionAbout,
	SectionSkills,
	SectionLanguages,
	SectionProjects,
	SectionConnect,
	SectionEducation,
	SectionExperience,
	SectionAchievements,
	SectionContact,
}

var sections = map[string]map[string]string{
	"en": {
		SectionAbout:        "About Me",
		SectionSkills:       "Skills",
		SectionLanguages:    "Languages and Tools",
		SectionProjects:     "Projects",
		SectionConnect:      "Connect with me",
		SectionEducation:    "Education",
		SectionExperience:   "Experience",
		SectionAchievements: "Achievements",
		SectionContact:      "Contact",
	},
	"es": {
		SectionAbout:        "Sobre Mí",
		SectionSkills:       "Habilidades",
		SectionLanguages:    "Lenguajes y Herramientas",
		SectionProjects:     "Proyectos",
		SectionConnect:      "Conéctate conmigo",
		SectionEducation:    "Educación",
		SectionExperience:   "Experiencia",
		SectionAchievements: "Logros",
		SectionContact:      "Contacto",
	},
	"fr": {
		SectionAbout:        "À Propos de Moi",
		SectionSkills:       "Compétences",
		SectionLanguages:    "Langages et Outils",
		SectionProjects:     "Projets",
		SectionConnect:      "Me Contacter",
		SectionEducation:    "Éducation",
		SectionExperience:   "Expérience",
		SectionAchievements: "Réalisations",
		SectionContact:      "Contact",
	},
	"de": {
		SectionAbout:        "Über Mich",
		SectionSkills:       "Fähigkeiten",
		SectionLanguages:    "Sprachen und Werkzeuge",
		SectionProjects:     "Projekte",
		SectionConnect:      "Kontaktiere mich",
		SectionEducation:    "Bildung",
		SectionExperience:   "Erfahrung",
		SectionAchievements: "Erfolge",
		SectionContact:      "Kontakt",
	},
	"zh": {
		SectionAbout:        "关于我",
		SectionSkills:       "技能",
		SectionLanguages:    "编程语言和工具",
		SectionProjects:     "项目",
		SectionConnect:      "联系我",
		SectionEducation:    "教育",
		SectionExperience:   "经验",
		SectionAchievements: "成就",
		SectionContact:      "联系方式",
	},
	"ja": {
		SectionAbout:        "自己紹介",
		SectionSkills:       "スキル",
		SectionLanguages:    "言語とツール",
		SectionProjects:     "プロジェクト",
		SectionConnect:      "連絡先",
		SectionEducation:    "学歴",
		SectionExperience:   "経験",
		SectionAchievements: "実績",
		SectionContact:      "連絡先",
	},
	"ko": {
		SectionAbout:        "자기소개",
		SectionSkills:       "기술",
		SectionLanguages:    "언어 및 도구",
		SectionProjects:     "프로젝트",
		SectionConnect:      "연락처",
		SectionEducation:    "교육",
		SectionExperience:   "경력",
		SectionAchievements: "업적",
		SectionContact:      "연락처",
	},
	"ru": {
		SectionAbout:        "Обо мне",
		SectionSkills:       "Навыки",
		SectionLanguages:    "Языки и инструменты",
		SectionProjects:     "Проекты",
		SectionConnect:      "Связаться со мной",
		SectionEducation:    "Образование",
		SectionExperience:   "Опыт",
		SectionAchievements: "Достижения",
		SectionContact:      "Контакты",
	},
	"pt": {
		SectionAbout:        "Sobre Mim",
		SectionSkills:       "Habilidades",
		SectionLanguages:    "Linguagens e Ferramentas",
		SectionProjects:     "Projetos",
		SectionConnect:      "Conecte-se comigo",
		SectionEducation:    "Educação",
		SectionExperience:   "Experiência",
		SectionAchievements: "Conquistas",
		SectionContact:      "Contato",
	},
	"ar": {
		SectionAbout:        "عني",
		SectionSkills:       "المهارات",
		SectionLanguages:    "اللغات والأدوات",
		SectionProjects:     "المشاريع",
		SectionConnect:      "تواصل معي",
		SectionEducation:    "التعليم",
		SectionExperience:   "الخبرة",
		SectionAchievements: "الإنجازات",
		SectionContact:      "اتصل بي",
	},
}

var greetings = map[string]string{
	"en": "Hi there! I'm",
	"es": "¡Hola! Soy",
	"fr": "Salut! Je suis",
	"de": "Hallo! Ich bin",
	"zh": "你好！我是",
	"ja": "こんにちは！私は",
	"ko": "안녕하세요! 저는",
	"ru": "Привет! Я",
	"pt": "Olá! Eu sou",
	"ar": "مرحبا! أنا",
}

// Supported reports whether the language code has translation tables.
func Supported(code string) bool {
	_, ok := sections[code]
	return ok
}

// Heading returns the localized heading for a section key. The English
// heading is returned for the default language, unsupported codes, and
// unknown keys.
func Heading(key, code string) string {
	if code == DefaultLanguage || !Supported(code) {
		return sections[DefaultLanguage][key]
	}
	if h, ok := sections[code][key]; ok {
		return h
	}
	return sections[DefaultLanguage][key]
}

// Greeting returns the localized greeting phrase ("Hi there! I'm" in English).
func Greeting(code string) string {
	if code == DefaultLanguage || !Supported(code) {
		return greetings[DefaultLanguage]
	}
	return greetings[code]
}

// Localize swaps the English section headings and greeting inside generated
// Markdown for their translations. It is the identity function for the
// default language and for unsupported codes.
func Localize(markdown, code string) string {
	if code == DefaultLanguage || !Supported(code) {
		return markdown
	}

	out := markdown
	for _, key := range sectionKeys {
		english := sections[DefaultLanguage][key]
		localized := Heading(key, code)
		if localized == english {
			continue
		}
		out = strings.ReplaceAll(out, "## "+english, "## "+localized)
	}

	return strings.ReplaceAll(out, greetings[DefaultLanguage], Greeting(code))
}
