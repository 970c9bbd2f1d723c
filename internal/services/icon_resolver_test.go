package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engfolio.dev/internal/catalog"
	"engfolio.dev/internal/models"
)

func defaultResolver(t *testing.T) *IconResolver {
	t.Helper()
	ref, err := catalog.DefaultSkills()
	require.NoError(t, err)
	return NewIconResolver(ref)
}

func mustIcon(t *testing.T, r *IconResolver, label string) string {
	t.Helper()
	icon, ok := r.SkillIcon(label)
	require.True(t, ok, "expected an icon for %q", label)
	require.NotEmpty(t, icon)
	return icon
}

func TestSkillIcon(t *testing.T) {
	r := defaultResolver(t)

	t.Run("normalization", func(t *testing.T) {
		assert.Equal(t, mustIcon(t, r, "arduino"), mustIcon(t, r, " Arduino "))
		assert.Equal(t, mustIcon(t, r, "Python"), mustIcon(t, r, "  PYTHON\t"))
	})

	t.Run("exact", func(t *testing.T) {
		assert.Equal(t, "/static/icons/skills/python.svg", mustIcon(t, r, "Python"))
		assert.Equal(t, "/static/icons/skills/solidworks.svg", mustIcon(t, r, "SolidWorks"))
	})

	t.Run("alias", func(t *testing.T) {
		assert.Equal(t, mustIcon(t, r, "C/C++"), mustIcon(t, r, "C++"))
		assert.Equal(t, mustIcon(t, r, "Arduino variant C/C++"), mustIcon(t, r, "Arduino"))
		assert.Equal(t, mustIcon(t, r, "HTML5"), mustIcon(t, r, "HTML"))
		assert.Equal(t, mustIcon(t, r, "Fusion 360"), mustIcon(t, r, "Fusion 360 Simulation"))
		assert.Equal(t, mustIcon(t, r, "Fusion 360"), mustIcon(t, r, "Fusion 360 Assemblies"))
	})

	t.Run("substring fallback", func(t *testing.T) {
		assert.Equal(t, mustIcon(t, r, "Fusion 360"), mustIcon(t, r, "Fusion 360 Sim"))
		assert.Equal(t, mustIcon(t, r, "CSS3"), mustIcon(t, r, "CSS"))
	})

	t.Run("absent", func(t *testing.T) {
		for _, label := range []string{"totally-unknown-skill-xyz", "", "   ", "OpenRocket", "Team Leadership"} {
			icon, ok := r.SkillIcon(label)
			assert.False(t, ok, label)
			assert.Empty(t, icon, label)
		}
	})
}

func TestSkillIconOrder(t *testing.T) {
	ref := &models.SkillReference{Carousels: []models.SkillCarousel{
		{Title: "a", Items: []models.SkillItem{
			{Label: "Robot Arm", Icon: "/arm.svg"},
			{Label: "Robot", Icon: "/robot.svg"},
			{Label: "Welding"},
		}},
		{Title: "b", Items: []models.SkillItem{
			{Label: "Robotics", Icon: "/robotics.svg"},
		}},
	}}
	r := NewIconResolver(ref)
	assert.Equal(t, 3, r.Len())

	// exact beats the earlier substring hit
	icon, ok := r.SkillIcon("robot")
	require.True(t, ok)
	assert.Equal(t, "/robot.svg", icon)

	// first entry in dataset order wins among substring hits
	icon, ok = r.SkillIcon("Rob")
	require.True(t, ok)
	assert.Equal(t, "/arm.svg", icon)

	// query containing an indexed label
	icon, ok = r.SkillIcon("Robotics Club")
	require.True(t, ok)
	assert.Equal(t, "/robot.svg", icon)

	_, ok = r.SkillIcon("welding")
	assert.False(t, ok)
}

func TestSkillIconAliasWithoutTarget(t *testing.T) {
	r := NewIconResolver(&models.SkillReference{Carousels: []models.SkillCarousel{
		{Title: "x", Items: []models.SkillItem{{Label: "Go", Icon: "/go.svg"}}},
	}})

	_, ok := r.SkillIcon("C++")
	assert.False(t, ok)

	empty := NewIconResolver(nil)
	_, ok = empty.SkillIcon("Python")
	assert.False(t, ok)
	assert.Zero(t, empty.Len())
}

func TestBadges(t *testing.T) {
	r := defaultResolver(t)

	badges := r.Badges([]string{"Python", "Team Leadership", "C++"})
	require.Len(t, badges, 3)
	assert.Equal(t, "Python", badges[0].Label)
	assert.NotEmpty(t, badges[0].Icon)
	assert.Equal(t, "Team Leadership", badges[1].Label)
	assert.Empty(t, badges[1].Icon)
	assert.Equal(t, mustIcon(t, r, "C/C++"), badges[2].Icon)
}
