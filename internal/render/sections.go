// Package render turns catalog records into the section lists and text that
// the HTML pages, the terminal and the MCP tools present.
package render

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"engfolio.dev/internal/models"
)

// Section is one titled bullet list of a project's detail content
type Section struct {
	Key     string
	Heading string
	Items   []string
}

// IconLookup resolves a skill label to an icon path
type IconLookup interface {
	SkillIcon(skill string) (string, bool)
}

func init() {
	err := message.Set(language.English, "%d team members",
		plural.Selectf(1, "%d",
			plural.One, "%d team member",
			plural.Other, "%d team members"))
	if err != nil {
		panic("register team member plural: " + err.Error())
	}
}

// detail headings, lower case; Heading applies title casing
var headings = map[string]string{
	"purpose":       "purpose & motivation",
	"development":   "schematics & development",
	"documentation": "documentation",
	"results":       "tests & results",
	"future_plans":  "future plans",
	"my_role":       "my role",
}

// Heading returns the display heading for a detail key
func Heading(key string) string {
	h, ok := headings[key]
	if !ok {
		h = key
	}
	// casers keep state between calls, so each call gets its own
	return cases.Title(language.English).String(h)
}

// MemberCount formats a team size for display
func MemberCount(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d team members", n)
}

// Sections lists a project's detail content in display order. Team projects
// get a trailing My Role section.
func Sections(p models.Project) ([]Section, error) {
	switch v := p.(type) {
	case models.PersonalProject:
		return detailSections(v.Detail), nil
	case models.TeamProject:
		sections := detailSections(v.Detail.ProjectDetailContent)
		return append(sections, Section{Key: "my_role", Heading: Heading("my_role"), Items: v.Detail.MyRole}), nil
	case nil:
		return nil, fmt.Errorf("render: nil project")
	default:
		return nil, fmt.Errorf("render: unsupported project variant %T", p)
	}
}

func detailSections(d models.ProjectDetailContent) []Section {
	return []Section{
		{Key: "purpose", Heading: Heading("purpose"), Items: d.Purpose},
		{Key: "development", Heading: Heading("development"), Items: d.Development},
		{Key: "documentation", Heading: Heading("documentation"), Items: d.Documentation},
		{Key: "results", Heading: Heading("results"), Items: d.Results},
		{Key: "future_plans", Heading: Heading("future_plans"), Items: d.FuturePlans},
	}
}
