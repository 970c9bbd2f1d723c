package services

import (
	"engfolio.dev/internal/models"
)

// ProjectService answers read-only queries over the project catalog
type ProjectService struct {
	catalog *models.Catalog
}

// NewProjectService creates a new ProjectService. A nil catalog behaves as an
// empty one.
func NewProjectService(catalog *models.Catalog) *ProjectService {
	if catalog == nil {
		catalog = &models.Catalog{}
	}
	return &ProjectService{catalog: catalog}
}

// Personal returns the personal projects in catalog order
func (s *ProjectService) Personal() []models.PersonalProject {
	return s.catalog.Personal
}

// Team returns the team projects in catalog order
func (s *ProjectService) Team() []models.TeamProject {
	return s.catalog.Team
}

// GetAll returns personal projects followed by team projects
func (s *ProjectService) GetAll() []models.Project {
	all := make([]models.Project, 0, len(s.catalog.Personal)+len(s.catalog.Team))
	for _, p := range s.catalog.Personal {
		all = append(all, p)
	}
	for _, p := range s.catalog.Team {
		all = append(all, p)
	}
	return all
}

// ByType returns one variant's collection
func (s *ProjectService) ByType(t models.ProjectType) []models.Project {
	var out []models.Project
	switch t {
	case models.ProjectTypePersonal:
		out = make([]models.Project, 0, len(s.catalog.Personal))
		for _, p := range s.catalog.Personal {
			out = append(out, p)
		}
	case models.ProjectTypeTeam:
		out = make([]models.Project, 0, len(s.catalog.Team))
		for _, p := range s.catalog.Team {
			out = append(out, p)
		}
	}
	return out
}

// GetByID returns the first project of the given type with a matching id.
// The second result is false when nothing matches.
func (s *ProjectService) GetByID(t models.ProjectType, id int) (models.Project, bool) {
	switch t {
	case models.ProjectTypePersonal:
		for i := range s.catalog.Personal {
			if s.catalog.Personal[i].ID == id {
				return s.catalog.Personal[i], true
			}
		}
	case models.ProjectTypeTeam:
		for i := range s.catalog.Team {
			if s.catalog.Team[i].ID == id {
				return s.catalog.Team[i], true
			}
		}
	}
	return nil, false
}

// ByRef is GetByID addressed by a Ref
func (s *ProjectService) ByRef(ref models.Ref) (models.Project, bool) {
	return s.GetByID(ref.Type, ref.ID)
}

// FeaturedTeamProject returns the first team project flagged as featured
func (s *ProjectService) FeaturedTeamProject() (models.TeamProject, bool) {
	for _, p := range s.catalog.Team {
		if p.IsFeatured {
			return p, true
		}
	}
	return models.TeamProject{}, false
}

// AdditionalTeamProjects returns every team project that is not featured
func (s *ProjectService) AdditionalTeamProjects() []models.TeamProject {
	out := make([]models.TeamProject, 0, len(s.catalog.Team))
	for _, p := range s.catalog.Team {
		if !p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

// HighlightedTeamProject is the featured team project, or the first team
// project when none is featured. False only when there are no team projects.
func (s *ProjectService) HighlightedTeamProject() (models.TeamProject, bool) {
	if p, ok := s.FeaturedTeamProject(); ok {
		return p, true
	}
	if len(s.catalog.Team) == 0 {
		return models.TeamProject{}, false
	}
	return s.catalog.Team[0], true
}

// SupportingTeamProjects returns the team projects shown beneath the
// highlighted one
func (s *ProjectService) SupportingTeamProjects() []models.TeamProject {
	highlighted, ok := s.HighlightedTeamProject()
	if !ok {
		return []models.TeamProject{}
	}
	out := make([]models.TeamProject, 0, len(s.catalog.Team))
	for _, p := range s.catalog.Team {
		if p.ID != highlighted.ID {
			out = append(out, p)
		}
	}
	return out
}
