// Package seed loads the hub's initial member directory and mission board.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/validation"
	"gopkg.in/yaml.v3"
)

//go:embed seed.json
var defaultSeed []byte

// Dataset is the canonical state a hub starts from
type Dataset struct {
	Members  []models.Member  `json:"members" yaml:"members"`
	Projects []models.Project `json:"projects" yaml:"projects"`
}

// Default returns the built-in dataset
func Default() (*Dataset, error) {
	return Decode(defaultSeed, ".json")
}

// Load reads a dataset from path, or the built-in one when path is empty.
// The file extension selects JSON or YAML.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}
	ds, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return ds, nil
}

// Decode parses data in the format named by ext and validates it
func Decode(data []byte, ext string) (*Dataset, error) {
	var ds Dataset

	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ds); err != nil {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&ds); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported seed format %q: %w", ext, models.ErrInvalidArgument)
	}

	ds.normalize()
	if err := validation.ValidateDataset(ds.Members, ds.Projects); err != nil {
		return nil, err
	}
	return &ds, nil
}

// normalize fills list fields a hand-written file may leave out
func (ds *Dataset) normalize() {
	for i := range ds.Members {
		m := &ds.Members[i]
		if m.Skills == nil {
			m.Skills = []models.Skill{}
		}
		if m.Workgroups == nil {
			m.Workgroups = []models.WorkgroupType{}
		}
	}
	for i := range ds.Projects {
		p := &ds.Projects[i]
		if p.UpvoterIDs == nil {
			p.UpvoterIDs = []string{}
		}
		if p.EnlistedIDs == nil {
			p.EnlistedIDs = []string{}
		}
		if p.Tags == nil {
			p.Tags = []string{}
		}
		p.Requirements = models.NormalizeRequirements(p.Requirements)
	}
}
