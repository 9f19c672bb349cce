package manifest

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed launcher.yaml
var launcherYAML []byte

var (
	loaded   *Manifest
	loadOnce sync.Once
	loadErr  error
)

// Load parses and validates the embedded launcher manifest once.
func Load() (*Manifest, error) {
	loadOnce.Do(func() {
		loaded, loadErr = ParseValid(launcherYAML)
		if loadErr != nil {
			loadErr = fmt.Errorf("embedded launcher manifest: %w", loadErr)
		}
	})
	return loaded, loadErr
}

// Parse unmarshals YAML data into a Manifest without schema validation.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing launcher manifest: %w", err)
	}
	return &m, nil
}

// ParseValid validates data against the schema and then parses it.
func ParseValid(data []byte) (*Manifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, result.Err()
	}
	return Parse(data)
}

// ParseFile reads a manifest file from disk and parses it after validation.
func ParseFile(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseValid(data)
}

// UsageLines renders the usage header printed above the catalog.
func (m *Manifest) UsageLines() []string {
	lines := []string{"Usage: "}
	lines = append(lines, m.Synopsis...)
	lines = append(lines, "")
	for _, p := range m.Parameters {
		line := p.Placeholder + " represents " + p.Description
		if p.Type == ParamPlanner && len(m.Planners) > 0 {
			line += " (" + m.plannerTable() + ")"
		}
		lines = append(lines, line)
	}
	return append(lines, m.OptionsHeading)
}

// PlannerName returns the planner registered under id.
func (m *Manifest) PlannerName(id int) (string, bool) {
	for _, p := range m.Planners {
		if p.ID == id {
			return p.Name, true
		}
	}
	return "", false
}

func (m *Manifest) plannerTable() string {
	parts := make([]string, 0, len(m.Planners))
	for _, p := range m.Planners {
		parts = append(parts, p.Name+":"+strconv.Itoa(p.ID))
	}
	return strings.Join(parts, ", ")
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
