// Package catalog loads the project and skill datasets the site is built from.
// Both ship embedded in the binary; a file path may override either one.
package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"engfolio.dev/internal/models"
)

//go:embed data/projects.json data/skills.yaml
var dataFS embed.FS

const (
	projectsFile = "data/projects.json"
	skillsFile   = "data/skills.yaml"
)

// Default decodes and validates the embedded project catalog
func Default() (*models.Catalog, error) {
	data, err := dataFS.ReadFile(projectsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", projectsFile, err)
	}
	return Decode(bytes.NewReader(data))
}

// LoadFile decodes and validates a project catalog from disk
func LoadFile(path string) (*models.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	cat, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Decode parses a projects JSON document and validates it.
// Unknown fields are rejected so that typos in hand-edited data surface early.
func Decode(r io.Reader) (*models.Catalog, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var cat models.Catalog
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after the catalog document", ErrInvalidCatalog)
	}
	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// DefaultSkills decodes the embedded skill reference dataset
func DefaultSkills() (*models.SkillReference, error) {
	data, err := dataFS.ReadFile(skillsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", skillsFile, err)
	}
	return DecodeSkills(bytes.NewReader(data))
}

// LoadSkillsFile decodes a skill reference dataset from disk
func LoadSkillsFile(path string) (*models.SkillReference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	ref, err := DecodeSkills(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ref, nil
}

// DecodeSkills parses a skills YAML document
func DecodeSkills(r io.Reader) (*models.SkillReference, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ref models.SkillReference
	if err := dec.Decode(&ref); err != nil {
		if err == io.EOF {
			return &ref, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	for ci, c := range ref.Carousels {
		for ii, item := range c.Items {
			if item.Label == "" {
				return nil, fmt.Errorf("%w: carousel %d (%q) item %d: label is required",
					ErrInvalidCatalog, ci, c.Title, ii)
			}
		}
	}
	return &ref, nil
}
