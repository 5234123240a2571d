// Package formats provides level pack file parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/boulder-tui/boulder/internal/games/boulder/core"
	"gopkg.in/yaml.v3"
)

// YAMLPack is the YAML structure of a level pack file.
type YAMLPack struct {
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is one level entry. Map holds the board as a literal block,
// one line per row.
type YAMLLevel struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Diamonds int    `yaml:"diamonds"`
	Time     int    `yaml:"time"`
	Map      string `yaml:"map"`
}

// Pack is a parsed level pack. Levels are not validated.
type Pack struct {
	Name   string
	Levels []core.Level
}

// ParseYAML parses a YAML level pack.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	pack := Pack{
		Name:   yp.Name,
		Levels: make([]core.Level, 0, len(yp.Levels)),
	}
	for i, yl := range yp.Levels {
		id := yl.ID
		if id == "" {
			id = fmt.Sprintf("%02d", i+1)
		}
		pack.Levels = append(pack.Levels, core.Level{
			ID:       id,
			Name:     yl.Name,
			Diamonds: yl.Diamonds,
			Time:     yl.Time,
			Rows:     splitMap(yl.Map),
		})
	}
	return pack, nil
}

// splitMap breaks a literal block into rows. Tunnel cells are spaces, so
// lines are never trimmed; only the trailing newline is dropped.
func splitMap(m string) []string {
	m = strings.TrimRight(strings.ReplaceAll(m, "\r\n", "\n"), "\n")
	if m == "" {
		return nil
	}
	return strings.Split(m, "\n")
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
