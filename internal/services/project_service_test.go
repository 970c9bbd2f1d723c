package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engfolio.dev/internal/catalog"
	"engfolio.dev/internal/models"
)

func defaultProjects(t *testing.T) *ProjectService {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewProjectService(cat)
}

func TestGetByID(t *testing.T) {
	s := defaultProjects(t)

	t.Run("every catalog entry is found", func(t *testing.T) {
		for _, p := range s.Personal() {
			got, ok := s.GetByID(models.ProjectTypePersonal, p.ID)
			require.True(t, ok)
			assert.Equal(t, p, got)
		}
		for _, p := range s.Team() {
			got, ok := s.GetByID(models.ProjectTypeTeam, p.ID)
			require.True(t, ok)
			assert.Equal(t, p, got)
		}
	})

	t.Run("personal 3", func(t *testing.T) {
		got, ok := s.GetByID(models.ProjectTypePersonal, 3)
		require.True(t, ok)
		personal, isPersonal := got.(models.PersonalProject)
		require.True(t, isPersonal)
		assert.Equal(t, "RC Airplane Based Land Surveying System", personal.Name)
	})

	t.Run("id spaces are per variant", func(t *testing.T) {
		personal, ok := s.GetByID(models.ProjectTypePersonal, 1)
		require.True(t, ok)
		team, ok := s.GetByID(models.ProjectTypeTeam, 1)
		require.True(t, ok)
		assert.Equal(t, models.ProjectTypePersonal, personal.Kind())
		assert.Equal(t, models.ProjectTypeTeam, team.Kind())
		assert.NotEqual(t, personal.Title(), team.Title())
	})

	t.Run("misses", func(t *testing.T) {
		for _, tc := range []struct {
			typ models.ProjectType
			id  int
		}{
			{models.ProjectTypePersonal, 99},
			{models.ProjectTypePersonal, 0},
			{models.ProjectTypeTeam, -1},
			{models.ProjectTypeTeam, 5},
			{models.ProjectType("solo"), 1},
		} {
			got, ok := s.GetByID(tc.typ, tc.id)
			assert.False(t, ok, "%s/%d", tc.typ, tc.id)
			assert.Nil(t, got)
		}
	})

	t.Run("by ref", func(t *testing.T) {
		got, ok := s.ByRef(models.Ref{Type: models.ProjectTypeTeam, ID: 4})
		require.True(t, ok)
		assert.Equal(t, "2024 NASA Space Apps Challenge", got.Title())
	})
}

func TestGetAll(t *testing.T) {
	s := defaultProjects(t)
	all := s.GetAll()

	require.Len(t, all, len(s.Personal())+len(s.Team()))
	for i, p := range s.Personal() {
		assert.Equal(t, p, all[i])
	}
	offset := len(s.Personal())
	for i, p := range s.Team() {
		assert.Equal(t, p, all[offset+i])
	}

	assert.Len(t, s.ByType(models.ProjectTypePersonal), 3)
	assert.Len(t, s.ByType(models.ProjectTypeTeam), 4)
	assert.Empty(t, s.ByType("solo"))
}

func TestFeaturedTeamProject(t *testing.T) {
	s := defaultProjects(t)

	featured, ok := s.FeaturedTeamProject()
	require.True(t, ok)
	assert.Equal(t, 1, featured.ID)

	var ids []int
	for _, p := range s.AdditionalTeamProjects() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{2, 3, 4}, ids)

	highlighted, ok := s.HighlightedTeamProject()
	require.True(t, ok)
	assert.Equal(t, featured, highlighted)
	assert.Equal(t, s.AdditionalTeamProjects(), s.SupportingTeamProjects())
}

func TestFeaturedReconstructsTeam(t *testing.T) {
	s := defaultProjects(t)

	seen := map[int]int{}
	if p, ok := s.FeaturedTeamProject(); ok {
		seen[p.ID]++
	}
	for _, p := range s.AdditionalTeamProjects() {
		seen[p.ID]++
	}

	require.Len(t, seen, len(s.Team()))
	for _, p := range s.Team() {
		assert.Equal(t, 1, seen[p.ID], "team project %d", p.ID)
	}
}

func TestHighlightedFallback(t *testing.T) {
	t.Run("no featured project", func(t *testing.T) {
		s := NewProjectService(&models.Catalog{Team: []models.TeamProject{{ID: 7}, {ID: 8}, {ID: 9}}})

		_, ok := s.FeaturedTeamProject()
		assert.False(t, ok)
		assert.Len(t, s.AdditionalTeamProjects(), 3)

		highlighted, ok := s.HighlightedTeamProject()
		require.True(t, ok)
		assert.Equal(t, 7, highlighted.ID)

		supporting := s.SupportingTeamProjects()
		require.Len(t, supporting, 2)
		assert.Equal(t, 8, supporting[0].ID)
		assert.Equal(t, 9, supporting[1].ID)
	})

	t.Run("featured is not first", func(t *testing.T) {
		s := NewProjectService(&models.Catalog{Team: []models.TeamProject{{ID: 1}, {ID: 2, IsFeatured: true}, {ID: 3}}})

		featured, ok := s.FeaturedTeamProject()
		require.True(t, ok)
		assert.Equal(t, 2, featured.ID)

		additional := s.AdditionalTeamProjects()
		require.Len(t, additional, 2)
		assert.Equal(t, 1, additional[0].ID)
		assert.Equal(t, 3, additional[1].ID)
	})

	t.Run("empty catalog", func(t *testing.T) {
		s := NewProjectService(nil)

		assert.Empty(t, s.GetAll())
		_, ok := s.FeaturedTeamProject()
		assert.False(t, ok)
		_, ok = s.HighlightedTeamProject()
		assert.False(t, ok)
		assert.Empty(t, s.AdditionalTeamProjects())
		assert.NotNil(t, s.SupportingTeamProjects())
		assert.Empty(t, s.SupportingTeamProjects())
		_, ok = s.GetByID(models.ProjectTypePersonal, 1)
		assert.False(t, ok)
	})
}
