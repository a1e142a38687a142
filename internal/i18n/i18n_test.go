package i18n

import (
	"strings"
	"testing"
)

func TestLocalizeEnglishIsIdentity(t *testing.T) {
	md := "# Hi there! I'm Ada 👋\n\n## About Me\nI build things\n\n## Skills\n- C++\n"
	if got := Localize(md, "en"); got != md {
		t.Errorf("Localize(md, \"en\") changed the input:\n%s", got)
	}
}

func TestLocalizeUnsupportedIsIdentity(t *testing.T) {
	md := "## About Me\nhello\n"
	for _, code := range []string{"xx", "", "EN", "es-MX"} {
		if got := Localize(md, code); got != md {
			t.Errorf("Localize(md, %q) changed the input", code)
		}
	}
}

func TestLocalizeSpanishHeadings(t *testing.T) {
	md := "# Hi there! I'm Ada 👋\n\n## About Me\nI build things\n\n## Skills\n- C++\n\n## Projects\n"
	got := Localize(md, "es")

	if !strings.Contains(got, "## Sobre Mí") {
		t.Error("missing localized About Me heading")
	}
	if !strings.Contains(got, "## Habilidades") {
		t.Error("missing localized Skills heading")
	}
	if !strings.Contains(got, "## Proyectos") {
		t.Error("missing localized Projects heading")
	}
	if strings.Contains(got, "## About Me") || strings.Contains(got, "## Skills") {
		t.Error("English headings survived localization")
	}
	if !strings.Contains(got, "¡Hola! Soy Ada") {
		t.Errorf("greeting not localized:\n%s", got)
	}
}

func TestLocalizeReplacesEveryOccurrence(t *testing.T) {
	// The find/replace pass is textual: a heading appearing inside
	// user-supplied content is swapped too.
	md := "## About Me\nSee the ## About Me section above.\n"
	got := Localize(md, "es")
	if strings.Contains(got, "## About Me") {
		t.Error("expected every occurrence to be replaced")
	}
	if strings.Count(got, "## Sobre Mí") != 2 {
		t.Errorf("expected 2 replacements, got:\n%s", got)
	}
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "Hi there! I'm"},
		{"es", "¡Hola! Soy"},
		{"fr", "Salut! Je suis"},
		{"xx", "Hi there! I'm"},
	}
	for _, tt := range tests {
		if got := Greeting(tt.code); got != tt.want {
			t.Errorf("Greeting(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestHeadingFallsBackToEnglish(t *testing.T) {
	if got := Heading(SectionAbout, "xx"); got != "About Me" {
		t.Errorf("Heading(about, xx) = %q, want About Me", got)
	}
	if got := Heading(SectionConnect, "de"); got != "Kontaktiere mich" {
		t.Errorf("Heading(connect, de) = %q", got)
	}
}

func TestEveryLanguageHasAllSections(t *testing.T) {
	for code, table := range sections {
		for _, key := range sectionKeys {
			if table[key] == "" {
				t.Errorf("language %q missing section %q", code, key)
			}
		}
		if greetings[code] == "" {
			t.Errorf("language %q missing greeting", code)
		}
	}
}
