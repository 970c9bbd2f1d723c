package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"engfolio.dev/internal/config"
	"engfolio.dev/internal/models"
	"engfolio.dev/internal/render"
	"engfolio.dev/internal/services"
)

// projectFile is the static counterpart of GET /api/projects/{type}/{id}
type projectFile struct {
	Ref         models.Ref          `json:"ref"`
	Path        string              `json:"path"`
	Title       string              `json:"title"`
	SkillBadges []models.SkillBadge `json:"skill_badges"`
	Project     models.Project      `json:"project"`
}

// teamFile is the static counterpart of GET /api/team/featured
type teamFile struct {
	Featured    bool                 `json:"featured"`
	Highlighted *models.TeamProject  `json:"highlighted"`
	Supporting  []models.TeamProject `json:"supporting"`
}

// exporter writes the site's content as static JSON and markdown files
type exporter struct {
	dir      string
	projects *services.ProjectService
	icons    *services.IconResolver
	skills   *models.SkillReference
}

func newExporter(dir string, cfg *config.Config) *exporter {
	return &exporter{
		dir:      dir,
		projects: services.NewProjectService(cfg.Catalog),
		icons:    services.NewIconResolver(cfg.Skills),
		skills:   cfg.Skills,
	}
}

// run writes every file and returns how many project pages were created
func (e *exporter) run() (int, error) {
	if err := e.writeJSON("projects.json", e.projects.GetAll()); err != nil {
		return 0, err
	}

	team := teamFile{Supporting: e.projects.SupportingTeamProjects()}
	if p, ok := e.projects.HighlightedTeamProject(); ok {
		team.Highlighted = &p
		team.Featured = p.IsFeatured
	}
	if err := e.writeJSON("team.json", team); err != nil {
		return 0, err
	}

	if err := e.writeJSON("skills.json", e.skills); err != nil {
		return 0, err
	}

	count := 0
	for _, p := range e.projects.GetAll() {
		ref := p.Ref()
		base := filepath.Join("projects", string(ref.Type), fmt.Sprintf("%d", ref.ID))

		err := e.writeJSON(base+".json", projectFile{
			Ref:         ref,
			Path:        ref.Path(),
			Title:       p.Title(),
			SkillBadges: e.icons.Badges(p.SkillLabels()),
			Project:     p,
		})
		if err != nil {
			return count, err
		}

		md, err := render.Markdown(p, e.icons)
		if err != nil {
			return count, fmt.Errorf("render %s: %w", ref, err)
		}
		if err := e.write(base+".md", []byte(md)); err != nil {
			return count, err
		}

		fmt.Printf("  Created %s (%s)\n", base, p.Title())
		count++
	}
	return count, nil
}

func (e *exporter) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	return e.write(name, data)
}

func (e *exporter) write(name string, data []byte) error {
	path := filepath.Join(e.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println("       generate <output-dir> <config.yaml>  (use settings and data paths from a config file)")
		os.Exit(1)
	}

	outputDir := os.Args[1]
	configPath := ""
	if len(os.Args) > 2 {
		configPath = os.Args[2]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load content: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exporting %d personal and %d team projects to %s...\n",
		len(cfg.Catalog.Personal), len(cfg.Catalog.Team), outputDir)

	count, err := newExporter(outputDir, cfg).run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done! %d project pages written.\n", count)
}
