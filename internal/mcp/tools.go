package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"engfolio.dev/internal/models"
	"engfolio.dev/internal/render"
)

func (s *Server) registerProjectTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("list_projects",
			mcp.WithDescription("List portfolio projects. Personal projects come first, then team projects, each in catalog order."),
			mcp.WithString("type", mcp.Description("Restrict to one project type: personal or team")),
		),
		s.handleListProjects,
	)
	s.mcpServer.AddTool(
		mcp.NewTool("get_project",
			mcp.WithDescription("Fetch one project by type and id, rendered as markdown."),
			mcp.WithString("type", mcp.Required(), mcp.Description("Project type: personal or team")),
			mcp.WithNumber("id", mcp.Required(), mcp.Description("Project id within its type")),
		),
		s.handleGetProject,
	)
	s.mcpServer.AddTool(
		mcp.NewTool("featured_team_project",
			mcp.WithDescription("Return the team project shown in the showcase slot and the projects listed beside it."),
		),
		s.handleFeaturedTeamProject,
	)
}

func (s *Server) registerSkillTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("skill_icon",
			mcp.WithDescription("Resolve the icon for a skill label using exact, alias, then partial matching."),
			mcp.WithString("label", mcp.Required(), mcp.Description("Skill label, e.g. \"Fusion 360 Simulation\"")),
		),
		s.handleSkillIcon,
	)
}

type projectSummary struct {
	Ref    string   `json:"ref"`
	Path   string   `json:"path"`
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
}

func summarize(projects []models.Project) []projectSummary {
	out := make([]projectSummary, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectSummary{
			Ref:    p.Ref().String(),
			Path:   p.Ref().Path(),
			Title:  p.Title(),
			Skills: p.SkillLabels(),
		})
	}
	return out
}

func (s *Server) handleListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects := s.projects.GetAll()
	if raw := request.GetString("type", ""); raw != "" {
		t, err := models.ParseProjectType(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		projects = s.projects.ByType(t)
	}
	return jsonResult(summarize(projects))
}

func (s *Server) handleGetProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := idArg(request.GetArguments()["id"])
	if !ok {
		return mcp.NewToolResultError("project not found: id must be a positive integer"), nil
	}
	ref, err := models.ParseRef(request.GetString("type", ""), id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	project, ok := s.projects.ByRef(ref)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("project %s not found", ref)), nil
	}

	md, err := render.Markdown(project, s.icons)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render %s: %v", ref, err)), nil
	}
	return mcp.NewToolResultText(md), nil
}

// idArg returns the id argument in the form ParseRef expects. Fractional
// numbers and non-numeric values are rejected rather than coerced.
func idArg(v any) (string, bool) {
	switch id := v.(type) {
	case float64:
		if id != math.Trunc(id) || id < 1 || id > math.MaxInt32 {
			return "", false
		}
		return strconv.FormatInt(int64(id), 10), true
	case string:
		return id, true
	default:
		return "", false
	}
}

func (s *Server) handleFeaturedTeamProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	highlighted, ok := s.projects.HighlightedTeamProject()
	if !ok {
		return mcp.NewToolResultText("No team projects yet"), nil
	}

	supporting := s.projects.SupportingTeamProjects()
	others := make([]models.Project, 0, len(supporting))
	for _, p := range supporting {
		others = append(others, p)
	}

	return jsonResult(struct {
		Featured    bool             `json:"featured"`
		Highlighted projectSummary   `json:"highlighted"`
		Supporting  []projectSummary `json:"supporting"`
	}{
		Featured:    highlighted.IsFeatured,
		Highlighted: summarize([]models.Project{highlighted})[0],
		Supporting:  summarize(others),
	})
}

func (s *Server) handleSkillIcon(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	label := request.GetString("label", "")
	if label == "" {
		return mcp.NewToolResultError("label is required"), nil
	}

	icon, ok := s.icons.SkillIcon(label)
	return jsonResult(struct {
		Label string `json:"label"`
		Icon  string `json:"icon"`
		Found bool   `json:"found"`
	}{Label: label, Icon: icon, Found: ok})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
