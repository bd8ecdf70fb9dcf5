// Package practice holds the practice-area evidence checklists and
// governance rule sets the strategy core evaluates against. Built-in areas
// are embedded as YAML; callers can load additional areas from disk.
package practice

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/casemark/strategist/pkg/models"
)

//go:embed data/*.yaml
var builtin embed.FS

// Area is one practice area's rule set.
type Area struct {
	ID         string                  `yaml:"id"`
	Label      string                  `yaml:"label"`
	Checklist  []models.ChecklistItem  `yaml:"checklist"`
	Governance []models.GovernanceRule `yaml:"governance"`
}

// Generic is the fallback area id used when a requested area is unknown.
const Generic = "generic"

var areas = mustLoadBuiltin()

func mustLoadBuiltin() map[string]Area {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		panic(fmt.Sprintf("practice: read embedded data: %v", err))
	}

	loaded := make(map[string]Area, len(entries))
	for _, entry := range entries {
		data, err := builtin.ReadFile("data/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("practice: read %s: %v", entry.Name(), err))
		}
		var area Area
		if err := yaml.Unmarshal(data, &area); err != nil {
			panic(fmt.Sprintf("practice: parse %s: %v", entry.Name(), err))
		}
		loaded[area.ID] = area
	}
	return loaded
}

// Load returns the rule set for a practice area. Unknown or empty names
// fall back to the generic area, never an error.
func Load(name string) Area {
	key := strings.ToLower(strings.TrimSpace(name))
	if area, ok := areas[key]; ok {
		return area
	}
	return areas[Generic]
}

// List returns the built-in area ids in sorted order.
func List() []string {
	names := make([]string, 0, len(areas))
	for name := range areas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile parses an additional practice area from a YAML file on disk.
func LoadFile(path string) (Area, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Area{}, fmt.Errorf("read practice area: %w", err)
	}

	var area Area
	if err := yaml.Unmarshal(data, &area); err != nil {
		return Area{}, fmt.Errorf("parse practice area: %w", err)
	}
	if area.ID == "" {
		return Area{}, fmt.Errorf("practice area %s: missing id", path)
	}
	return area, nil
}
