package models

import (
	"errors"
	"fmt"
	"strconv"
)

// ProjectType discriminates the two project variants
type ProjectType string

const (
	ProjectTypePersonal ProjectType = "personal"
	ProjectTypeTeam     ProjectType = "team"
)

// ProjectLayout is a presentation hint for listing pages
type ProjectLayout string

const (
	LayoutLarge  ProjectLayout = "large"
	LayoutMedium ProjectLayout = "medium"
	LayoutSmall  ProjectLayout = "small"
)

var (
	ErrInvalidProjectType = errors.New("invalid project type")
	ErrInvalidProjectID   = errors.New("invalid project id")
)

// ParseProjectType validates a project type string
func ParseProjectType(s string) (ProjectType, error) {
	switch ProjectType(s) {
	case ProjectTypePersonal, ProjectTypeTeam:
		return ProjectType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidProjectType, s)
}

// Valid reports whether the layout is one of the known hints
func (l ProjectLayout) Valid() bool {
	switch l {
	case LayoutLarge, LayoutMedium, LayoutSmall:
		return true
	}
	return false
}

// ProjectDetailContent holds the narrative bullet lists of a detail page
type ProjectDetailContent struct {
	Purpose       []string `json:"purpose"`
	Development   []string `json:"development"`
	Documentation []string `json:"documentation"`
	Results       []string `json:"results"`
	FuturePlans   []string `json:"future_plans"`
}

// TeamProjectDetail adds the author's role to the shared detail content
type TeamProjectDetail struct {
	ProjectDetailContent
	MyRole []string `json:"my_role"`
}

// Project is implemented by PersonalProject and TeamProject only.
// Callers switch on the concrete type before touching variant fields.
type Project interface {
	Kind() ProjectType
	Ref() Ref
	Title() string
	SkillLabels() []string
	ImageURL() string
	isProject()
}

// PersonalProject is a solo project
type PersonalProject struct {
	ID                 int                  `json:"id"`
	Type               ProjectType          `json:"type"`
	Name               string               `json:"name"`
	Image              string               `json:"image"`
	Layout             ProjectLayout        `json:"layout"`
	Skills             []string             `json:"skills"`
	LearningExperience string               `json:"learning_experience"`
	FuturePlansSummary string               `json:"future_plans_summary"`
	Detail             ProjectDetailContent `json:"detail"`
}

func (p PersonalProject) Kind() ProjectType { return ProjectTypePersonal }
func (p PersonalProject) Ref() Ref { return Ref{Type: ProjectTypePersonal, ID: p.ID} }
func (p PersonalProject) Title() string { return p.Name }
func (p PersonalProject) SkillLabels() []string { return p.Skills }
func (p PersonalProject) ImageURL() string { return p.Image }
func (PersonalProject) isProject() {}

// TeamProject is a project built with a team
type TeamProject struct {
	ID          int               `json:"id"`
	Type        ProjectType       `json:"type"`
	IsFeatured  bool              `json:"is_featured,omitempty"`
	TeamSize    int               `json:"team_size"`
	TeamName    string            `json:"team_name"`
	ProjectName string            `json:"project_name"`
	Image       string            `json:"image"`
	Skills      []string          `json:"skills"`
	Description string            `json:"description"`
	RoleSummary string            `json:"role_summary"`
	Detail      TeamProjectDetail `json:"detail"`
}

func (p TeamProject) Kind() ProjectType { return ProjectTypeTeam }
func (p TeamProject) Ref() Ref { return Ref{Type: ProjectTypeTeam, ID: p.ID} }
func (p TeamProject) Title() string { return p.ProjectName }
func (p TeamProject) SkillLabels() []string { return p.Skills }
func (p TeamProject) ImageURL() string { return p.Image }
func (TeamProject) isProject() {}

// Catalog is the full, read-only project dataset
type Catalog struct {
	Personal []PersonalProject `json:"personal"`
	Team     []TeamProject     `json:"team"`
}

// Ref addresses a project by variant and id. Ids are only unique per variant.
type Ref struct {
	Type ProjectType `json:"type"`
	ID   int         `json:"id"`
}

// ParseRef validates the raw path segments of a project address.
// The id must be a plain base-10 positive integer.
func ParseRef(typ, id string) (Ref, error) {
	t, err := ParseProjectType(typ)
	if err != nil {
		return Ref{}, err
	}
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 || id[0] == '+' {
		return Ref{}, fmt.Errorf("%w: %q", ErrInvalidProjectID, id)
	}
	return Ref{Type: t, ID: n}, nil
}

func (r Ref) String() string {
	return fmt.Sprintf("%s/%d", r.Type, r.ID)
}

// Path is the navigation path of the project's detail page
func (r Ref) Path() string {
	return "/projects/" + r.String()
}
