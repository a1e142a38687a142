package model

import "time"

// Template is a saved README template. Content uses double-brace placeholder
// markers ({{name}}, {{bio}}, ...) meant for a separate substitution pass —
// the generator builds its output directly and does not consume them.
type Template struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Content     string    `json:"content"`
	Sections    []string  `json:"sections"`
	UserID      string    `json:"userId,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	Tags        []string  `json:"tags"`
	Likes       int       `json:"likes"`
	ShareableID string    `json:"shareableId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DefaultTemplates seeds an empty repository so a fresh instance has
// something to offer in the template picker.
func DefaultTemplates() []Template {
	return []Template{
		{
			Name:     "Basic",
			Content:  "# Hi there 👋\n\nI'm {{name}}\n\n## About Me\n{{bio}}\n\n## Skills\n{{skills}}\n",
			Sections: []string{"About Me", "Skills"},
			IsPublic: true,
			Tags:     []string{"starter"},
		},
		{
			Name:     "Professional",
			Content:  "# {{name}}\n\n## 👨‍💻 About Me\n{{bio}}\n\n## 🛠 Skills\n{{skills}}\n\n## 🔗 Connect with me\n{{socialLinks}}\n\n## 📂 Projects\n{{projects}}",
			Sections: []string{"About Me", "Skills", "Social Links", "Projects"},
			IsPublic: true,
			Tags:     []string{"starter", "professional"},
		},
	}
}
