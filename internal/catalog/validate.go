package catalog

import (
	"errors"
	"fmt"
	"strings"

	"engfolio.dev/internal/models"
)

// ErrInvalidCatalog is wrapped by every decoding and validation failure
var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks the structural rules of a catalog and reports every
// violation found, not just the first.
func Validate(cat *models.Catalog) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	seen := make(map[int]bool)
	for i, p := range cat.Personal {
		where := fmt.Sprintf("personal[%d]", i)
		if p.ID <= 0 {
			add("%s: id must be a positive integer, got %d", where, p.ID)
		} else if seen[p.ID] {
			add("%s: duplicate personal id %d", where, p.ID)
		}
		seen[p.ID] = true

		if p.Type != models.ProjectTypePersonal {
			add("%s: type must be %q, got %q", where, models.ProjectTypePersonal, p.Type)
		}
		if strings.TrimSpace(p.Name) == "" {
			add("%s: name is required", where)
		}
		if !p.Layout.Valid() {
			add("%s: unknown layout %q", where, p.Layout)
		}
		if p.Skills == nil {
			add("%s: skills is required", where)
		}
		for _, field := range missingDetail(p.Detail) {
			add("%s: detail.%s is required", where, field)
		}
	}

	seen = make(map[int]bool)
	for i, p := range cat.Team {
		where := fmt.Sprintf("team[%d]", i)
		if p.ID <= 0 {
			add("%s: id must be a positive integer, got %d", where, p.ID)
		} else if seen[p.ID] {
			add("%s: duplicate team id %d", where, p.ID)
		}
		seen[p.ID] = true

		if p.Type != models.ProjectTypeTeam {
			add("%s: type must be %q, got %q", where, models.ProjectTypeTeam, p.Type)
		}
		if strings.TrimSpace(p.ProjectName) == "" {
			add("%s: project_name is required", where)
		}
		if p.TeamSize <= 0 {
			add("%s: team_size must be positive, got %d", where, p.TeamSize)
		}
		if p.Skills == nil {
			add("%s: skills is required", where)
		}
		for _, field := range missingDetail(p.Detail.ProjectDetailContent) {
			add("%s: detail.%s is required", where, field)
		}
		if p.Detail.MyRole == nil {
			add("%s: detail.my_role is required", where)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidCatalog, strings.Join(problems, "\n  "))
	}
	return nil
}

// missingDetail lists the detail sequences that are absent. An empty list is
// allowed, a missing one is not.
func missingDetail(d models.ProjectDetailContent) []string {
	var missing []string
	if d.Purpose == nil {
		missing = append(missing, "purpose")
	}
	if d.Development == nil {
		missing = append(missing, "development")
	}
	if d.Documentation == nil {
		missing = append(missing, "documentation")
	}
	if d.Results == nil {
		missing = append(missing, "results")
	}
	if d.FuturePlans == nil {
		missing = append(missing, "future_plans")
	}
	return missing
}

// Lint reports suspicious but valid content
func Lint(cat *models.Catalog) []string {
	var warnings []string

	var featured []int
	for _, p := range cat.Team {
		if p.IsFeatured {
			featured = append(featured, p.ID)
		}
	}
	if len(featured) > 1 {
		warnings = append(warnings, fmt.Sprintf(
			"%d team projects are featured (ids %v); only the first is highlighted", len(featured), featured))
	}

	check := func(ref models.Ref, d models.ProjectDetailContent) {
		sections := map[string][]string{
			"purpose":       d.Purpose,
			"development":   d.Development,
			"documentation": d.Documentation,
			"results":       d.Results,
			"future_plans":  d.FuturePlans,
		}
		for _, name := range []string{"purpose", "development", "documentation", "results", "future_plans"} {
			if len(sections[name]) == 0 {
				warnings = append(warnings, fmt.Sprintf("%s: detail.%s is empty", ref, name))
			}
		}
	}
	for _, p := range cat.Personal {
		check(p.Ref(), p.Detail)
	}
	for _, p := range cat.Team {
		check(p.Ref(), p.Detail.ProjectDetailContent)
		if len(p.Detail.MyRole) == 0 {
			warnings = append(warnings, fmt.Sprintf("%s: detail.my_role is empty", p.Ref()))
		}
	}

	return warnings
}
