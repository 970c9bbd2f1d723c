package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engfolio.dev/internal/config"
	"engfolio.dev/internal/models"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.Defaults()
	require.NoError(t, cfg.LoadContent())
	return NewServer(cfg)
}

func newRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

func getText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestListProjects(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	result, err := srv.handleListProjects(ctx, newRequest(map[string]any{}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var all []projectSummary
	require.NoError(t, json.Unmarshal([]byte(getText(t, result)), &all))
	require.Len(t, all, 7)
	assert.Equal(t, "personal/1", all[0].Ref)
	assert.Equal(t, "team/1", all[3].Ref)
	assert.Equal(t, "/projects/team/1", all[3].Path)

	result, err = srv.handleListProjects(ctx, newRequest(map[string]any{"type": "team"}))
	require.NoError(t, err)
	var team []projectSummary
	require.NoError(t, json.Unmarshal([]byte(getText(t, result)), &team))
	assert.Len(t, team, 4)

	result, err = srv.handleListProjects(ctx, newRequest(map[string]any{"type": "group"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestGetProject(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	result, err := srv.handleGetProject(ctx, newRequest(map[string]any{"type": "personal", "id": float64(3)}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	text := getText(t, result)
	assert.True(t, strings.HasPrefix(text, "# RC Airplane Based Land Surveying System"))
	assert.Contains(t, text, "Python ✓")

	result, err = srv.handleGetProject(ctx, newRequest(map[string]any{"type": "team", "id": "2"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	for name, args := range map[string]map[string]any{
		"absent":       {"type": "personal", "id": float64(999)},
		"zero id":      {"type": "team", "id": float64(0)},
		"missing id":   {"type": "team"},
		"unknown type": {"type": "group", "id": float64(1)},
		"fractional":   {"type": "personal", "id": 3.7},
		"negative":     {"type": "personal", "id": float64(-1)},
		"non-numeric":  {"type": "personal", "id": "abc"},
		"boolean":      {"type": "personal", "id": true},
	} {
		t.Run(name, func(t *testing.T) {
			result, err := srv.handleGetProject(ctx, newRequest(args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
}

func TestFeaturedTeamProject(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.handleFeaturedTeamProject(context.Background(), newRequest(nil))
	require.NoError(t, err)

	var got struct {
		Featured    bool             `json:"featured"`
		Highlighted projectSummary   `json:"highlighted"`
		Supporting  []projectSummary `json:"supporting"`
	}
	require.NoError(t, json.Unmarshal([]byte(getText(t, result)), &got))
	assert.True(t, got.Featured)
	assert.Equal(t, "team/1", got.Highlighted.Ref)
	require.Len(t, got.Supporting, 3)
	for _, p := range got.Supporting {
		assert.NotEqual(t, "team/1", p.Ref)
	}
}

func TestFeaturedTeamProjectEmpty(t *testing.T) {
	cfg := config.Defaults()
	cfg.Catalog = &models.Catalog{}
	cfg.Skills = &models.SkillReference{}
	srv := NewServer(cfg)

	result, err := srv.handleFeaturedTeamProject(context.Background(), newRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "No team projects yet", getText(t, result))
}

func TestSkillIcon(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	result, err := srv.handleSkillIcon(ctx, newRequest(map[string]any{"label": "Fusion 360 Simulation"}))
	require.NoError(t, err)
	assert.Contains(t, getText(t, result), `"icon": "/static/icons/skills/fusion360.svg"`)
	assert.Contains(t, getText(t, result), `"found": true`)

	result, err = srv.handleSkillIcon(ctx, newRequest(map[string]any{"label": "totally-unknown-skill-xyz"}))
	require.NoError(t, err)
	assert.Contains(t, getText(t, result), `"found": false`)

	result, err = srv.handleSkillIcon(ctx, newRequest(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
