package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// PlanSchema is the on-disk structure of a cooking plan, the finalized step
// list a session is created from. Plans come from hand-written files or from
// the AI drafting service; both pass through the same validation.
type PlanSchema struct {
	Plan  PlanImport   `json:"plan" toml:"plan"`
	Steps []StepImport `json:"steps" toml:"steps"`
}

// PlanImport defines the session-level fields of a plan file.
type PlanImport struct {
	Title string `json:"title" toml:"title"`
	Notes string `json:"notes,omitempty" toml:"notes"`
}

// StepImport defines one step in a plan file.
type StepImport struct {
	Order           int      `json:"order" toml:"order"`
	Title           string   `json:"title" toml:"title"`
	DurationMin     int      `json:"duration_min" toml:"duration_min"`
	ParallelGroup   int      `json:"parallel_group,omitempty" toml:"parallel_group"`
	Equipment       []string `json:"equipment,omitempty" toml:"equipment"`
	SupervisionOnly bool     `json:"supervision_only,omitempty" toml:"supervision_only"`
	Noisy           bool     `json:"noisy,omitempty" toml:"noisy"`
	TemperatureC    *int     `json:"temperature_c,omitempty" toml:"temperature_c"`
}

// LoadPlanSchema reads and parses a plan file. The format is chosen by
// extension: .toml decodes as TOML, everything else as JSON.
func LoadPlanSchema(path string) (*PlanSchema, error) {
	var schema PlanSchema

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &schema); err != nil {
			return nil, fmt.Errorf("parsing plan file: %w", err)
		}
		return &schema, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &schema, nil
}
