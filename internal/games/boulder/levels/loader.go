// Package levels loads Boulder Dash level packs. The engine only sees the
// core.LevelSource interface; this package depends on core, never the
// other way round.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/boulder-tui/boulder/internal/games/boulder/core"
	"github.com/boulder-tui/boulder/internal/games/boulder/levels/formats"
)

//go:embed default.yaml
var defaultPack []byte

// ErrEmpty is returned when a pack holds no levels.
var ErrEmpty = errors.New("levels: no levels")

// Catalog is a validated, ordered list of levels.
type Catalog struct {
	Name   string
	Source string // file or directory the catalog was read from, "" when embedded
	levels []core.Level
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Level returns level i.
func (c *Catalog) Level(i int) (core.Level, error) {
	if i < 0 || i >= len(c.levels) {
		return core.Level{}, fmt.Errorf("levels: %w: %d", core.ErrOutOfRange, i)
	}
	return c.levels[i], nil
}

// Levels returns a copy of the level list.
func (c *Catalog) Levels() []core.Level {
	out := make([]core.Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// Index returns the position of the level with the given ID.
func (c *Catalog) Index(id string) (int, bool) {
	for i, l := range c.levels {
		if l.ID == id {
			return i, true
		}
	}
	return 0, false
}

// ParseYAML parses and validates a YAML level pack.
func ParseYAML(data []byte) (*Catalog, error) {
	pack, err := formats.ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if len(pack.Levels) == 0 {
		return nil, ErrEmpty
	}
	for _, l := range pack.Levels {
		if err := Validate(l); err != nil {
			return nil, err
		}
	}
	return &Catalog{Name: pack.Name, levels: pack.Levels}, nil
}

// Default returns the embedded level pack.
func Default() (*Catalog, error) {
	return ParseYAML(defaultPack)
}

// Load reads the pack at path, or the embedded pack when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads a pack file. When path is a directory every pack file in
// it is loaded, in file name order, and the levels are concatenated. Files
// that fail to parse are skipped.
func LoadFile(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !info.IsDir() {
		return loadOne(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading directory %s: %w", path, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && isSupportedExtension(filepath.Ext(e.Name())) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	cat := &Catalog{Name: filepath.Base(path), Source: path}
	for _, name := range names {
		part, err := loadOne(filepath.Join(path, name))
		if err != nil {
			continue
		}
		cat.levels = append(cat.levels, part.levels...)
	}
	if len(cat.levels) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmpty, path)
	}
	return cat, nil
}

func loadOne(path string) (*Catalog, error) {
	if !isSupportedExtension(filepath.Ext(path)) {
		return nil, fmt.Errorf("levels: unsupported extension: %s", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading file %s: %w", path, err)
	}
	cat, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cat.Source = path
	if cat.Name == "" {
		cat.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return cat, nil
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
