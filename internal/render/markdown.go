package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"engfolio.dev/internal/models"
)

// Markdown renders a project's detail page as a markdown document
func Markdown(p models.Project, icons IconLookup) (string, error) {
	sections, err := Sections(p)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title())

	switch v := p.(type) {
	case models.PersonalProject:
		fmt.Fprintf(&b, "_Personal project · %s_\n\n", v.Ref())
		if v.LearningExperience != "" {
			fmt.Fprintf(&b, "**What I learned:** %s\n\n", v.LearningExperience)
		}
		if v.FuturePlansSummary != "" {
			fmt.Fprintf(&b, "**Where it goes next:** %s\n\n", v.FuturePlansSummary)
		}
	case models.TeamProject:
		fmt.Fprintf(&b, "_Team project · %s · %s · %s_\n\n", v.Ref(), v.TeamName, MemberCount(v.TeamSize))
		if v.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", v.Description)
		}
		if v.RoleSummary != "" {
			fmt.Fprintf(&b, "**Role:** %s\n\n", v.RoleSummary)
		}
	}

	if skills := p.SkillLabels(); len(skills) > 0 {
		b.WriteString("**Skills:** ")
		for i, s := range skills {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(s)
			if icons != nil {
				if _, ok := icons.SkillIcon(s); ok {
					b.WriteString(" ✓")
				}
			}
		}
		b.WriteString("\n\n")
	}

	for _, s := range sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Heading)
		if len(s.Items) == 0 {
			b.WriteString("_Nothing here yet._\n\n")
			continue
		}
		for i, item := range s.Items {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

// Terminal renders markdown for display in a terminal
type Terminal struct {
	renderer *glamour.TermRenderer
}

// NewTerminal builds a renderer with a glamour standard style ("dark",
// "light", "notty", ...) or "auto" to detect from the terminal
func NewTerminal(style string, width int) (*Terminal, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	return &Terminal{renderer: r}, nil
}

// Project renders a project's detail page
func (t *Terminal) Project(p models.Project, icons IconLookup) (string, error) {
	md, err := Markdown(p, icons)
	if err != nil {
		return "", err
	}
	out, err := t.renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", p.Ref(), err)
	}
	return out, nil
}
