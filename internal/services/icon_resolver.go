package services

import (
	"strings"

	"engfolio.dev/internal/models"
)

// skillAliases maps labels used in project records to the label the skill
// reference dataset uses for the same thing. Keys are normalized.
var skillAliases = map[string]string{
	"arduino":               "Arduino variant C/C++",
	"c++":                   "C/C++",
	"c/c++":                 "C/C++",
	"html":                  "HTML5",
	"fusion 360 simulation": "Fusion 360",
	"fusion 360 assemblies": "Fusion 360",
}

type iconEntry struct {
	normalized string
	icon       string
}

// IconResolver maps free-text skill labels to icon paths. It is built once
// and never modified, so it is safe for concurrent use.
type IconResolver struct {
	entries []iconEntry
	byLabel map[string]string
	aliases map[string]string
}

// NewIconResolver indexes every skill that carries an icon
func NewIconResolver(ref *models.SkillReference) *IconResolver {
	r := &IconResolver{
		byLabel: make(map[string]string),
		aliases: make(map[string]string, len(skillAliases)),
	}

	if ref != nil {
		for _, carousel := range ref.Carousels {
			for _, item := range carousel.Items {
				if item.Icon == "" {
					continue
				}
				key := normalizeSkill(item.Label)
				r.entries = append(r.entries, iconEntry{normalized: key, icon: item.Icon})
				// a repeated label takes the icon of its last occurrence
				r.byLabel[key] = item.Icon
			}
		}
	}

	for alias, target := range skillAliases {
		if icon, ok := r.byLabel[normalizeSkill(target)]; ok {
			r.aliases[alias] = icon
		}
	}

	return r
}

// SkillIcon resolves a label by exact match, then the alias table, then the
// first indexed label that contains or is contained by the query.
// An empty or whitespace-only label never resolves, since it would otherwise
// be contained in every indexed label.
func (r *IconResolver) SkillIcon(skill string) (string, bool) {
	key := normalizeSkill(skill)
	if key == "" {
		return "", false
	}

	if icon, ok := r.byLabel[key]; ok {
		return icon, true
	}
	if icon, ok := r.aliases[key]; ok {
		return icon, true
	}
	for _, e := range r.entries {
		if strings.Contains(key, e.normalized) || strings.Contains(e.normalized, key) {
			return e.icon, true
		}
	}
	return "", false
}

// Badges pairs each label with its icon, keeping display order
func (r *IconResolver) Badges(labels []string) []models.SkillBadge {
	badges := make([]models.SkillBadge, 0, len(labels))
	for _, label := range labels {
		icon, _ := r.SkillIcon(label)
		badges = append(badges, models.SkillBadge{Label: label, Icon: icon})
	}
	return badges
}

// Len reports how many skills carry an icon
func (r *IconResolver) Len() int {
	return len(r.entries)
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
