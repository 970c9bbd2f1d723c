package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		typ, id string
		want    Ref
		wantErr error
	}{
		{"personal", "1", Ref{Type: ProjectTypePersonal, ID: 1}, nil},
		{"team", "4", Ref{Type: ProjectTypeTeam, ID: 4}, nil},
		{"team", "42", Ref{Type: ProjectTypeTeam, ID: 42}, nil},
		{"solo", "1", Ref{}, ErrInvalidProjectType},
		{"", "1", Ref{}, ErrInvalidProjectType},
		{"Personal", "1", Ref{}, ErrInvalidProjectType},
		{"personal", "", Ref{}, ErrInvalidProjectID},
		{"personal", "abc", Ref{}, ErrInvalidProjectID},
		{"personal", "1.5", Ref{}, ErrInvalidProjectID},
		{"personal", "0", Ref{}, ErrInvalidProjectID},
		{"personal", "-3", Ref{}, ErrInvalidProjectID},
		{"personal", "+3", Ref{}, ErrInvalidProjectID},
		{"personal", " 3", Ref{}, ErrInvalidProjectID},
		{"personal", "99999999999999999999999", Ref{}, ErrInvalidProjectID},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.id, func(t *testing.T) {
			got, err := ParseRef(tt.typ, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRefPath(t *testing.T) {
	r := Ref{Type: ProjectTypeTeam, ID: 4}
	assert.Equal(t, "team/4", r.String())
	assert.Equal(t, "/projects/team/4", r.Path())
}

func TestProjectVariants(t *testing.T) {
	var projects []Project = []Project{
		PersonalProject{ID: 3, Type: ProjectTypePersonal, Name: "Survey Plane", Skills: []string{"GPS"}},
		TeamProject{ID: 3, Type: ProjectTypeTeam, ProjectName: "Rocket", TeamName: "USST", Detail: TeamProjectDetail{MyRole: []string{"lead"}}},
	}

	for _, p := range projects {
		switch v := p.(type) {
		case PersonalProject:
			assert.Equal(t, ProjectTypePersonal, v.Kind())
			assert.Equal(t, "Survey Plane", v.Title())
			assert.Equal(t, Ref{Type: ProjectTypePersonal, ID: 3}, v.Ref())
		case TeamProject:
			assert.Equal(t, ProjectTypeTeam, v.Kind())
			assert.Equal(t, "Rocket", v.Title())
			assert.Equal(t, []string{"lead"}, v.Detail.MyRole)
		default:
			t.Fatalf("unexpected variant %T", p)
		}
	}
}

func TestTeamDetailJSONIsFlat(t *testing.T) {
	var d TeamProjectDetail
	require.NoError(t, json.Unmarshal([]byte(`{"purpose": ["a"], "future_plans": ["b"], "my_role": ["c"]}`), &d))
	assert.Equal(t, []string{"a"}, d.Purpose)
	assert.Equal(t, []string{"b"}, d.FuturePlans)
	assert.Equal(t, []string{"c"}, d.MyRole)
}

func TestLayoutValid(t *testing.T) {
	assert.True(t, LayoutLarge.Valid())
	assert.True(t, LayoutSmall.Valid())
	assert.False(t, ProjectLayout("huge").Valid())
}
