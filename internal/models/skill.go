package models

// SkillItem is one entry of a skill carousel. Icon is empty when the skill has
// no artwork.
type SkillItem struct {
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// SkillCarousel groups skills under a heading
type SkillCarousel struct {
	Title string      `json:"title" yaml:"title"`
	Items []SkillItem `json:"items" yaml:"items"`
}

// SkillReference is the curated skill dataset the icon index is built from
type SkillReference struct {
	Carousels []SkillCarousel `json:"carousels" yaml:"carousels"`
}

// SkillBadge pairs a skill label with its resolved icon, if any
type SkillBadge struct {
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}
