// Package content defines the resume content model. The backend serves it and
// the site kit renders and summarizes it; content is data, not code, so the
// same types carry JSON tags for the API and YAML tags for the content file.
package content

import "strings"

// Link is a labelled external profile link.
type Link struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Contact holds the site owner's contact details.
type Contact struct {
	Email string `json:"email" yaml:"email"`
	Phone string `json:"phone" yaml:"phone"`
	Links []Link `json:"links" yaml:"links"`
}

// SkillGroup is a named group of skills. A slice keeps the display order
// stable, which a map would not.
type SkillGroup struct {
	Category string `json:"category" yaml:"category"`
	Skills   string `json:"skills" yaml:"skills"`
}

// Experience is one work-history entry.
type Experience struct {
	Company string   `json:"company" yaml:"company"`
	Period  string   `json:"period" yaml:"period"`
	Details []string `json:"details" yaml:"details"`
}

// Project is a highlighted piece of work.
type Project struct {
	Title   string   `json:"title" yaml:"title"`
	Company string   `json:"company" yaml:"company"`
	Details []string `json:"details" yaml:"details"`
}

// Resume is the full static content of the site.
type Resume struct {
	Name             string       `json:"name" yaml:"name"`
	Contact          Contact      `json:"contact" yaml:"contact"`
	Summary          string       `json:"summary" yaml:"summary"`
	Skills           []SkillGroup `json:"skills" yaml:"skills"`
	Experience       []Experience `json:"experience" yaml:"experience"`
	Project          Project      `json:"project" yaml:"project"`
	Certificates     []string     `json:"certificates" yaml:"certificates"`
	Achievements     []string     `json:"achievements" yaml:"achievements"`
	AdditionalSkills []string     `json:"additionalSkills" yaml:"additionalSkills"`
}

// ExperienceText joins all work-history details into the block of text the
// AI summary is generated from: details of one entry joined by spaces,
// entries joined by newlines.
func (r Resume) ExperienceText() string {
	lines := make([]string, 0, len(r.Experience))
	for _, exp := range r.Experience {
		lines = append(lines, strings.Join(exp.Details, " "))
	}
	return strings.Join(lines, "\n")
}
