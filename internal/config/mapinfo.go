package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownMap is returned when no map file exists for the requested name.
var ErrUnknownMap = errors.New("unknown map")

// MapInfo is the per-map metadata file (<maps_dir>/<name>.yaml).
type MapInfo struct {
	Name        string     `yaml:"name"`
	Author      string     `yaml:"author"`
	Description string     `yaml:"description"`
	Extensions  Extensions `yaml:"extensions"`
}

// Extensions holds map-defined feature blocks. Unknown keys are ignored.
type Extensions struct {
	Minefields []FieldRecord `yaml:"minefields"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Minefield records are decoded one by one: a malformed record is skipped
// and never fails the map file.
func (e *Extensions) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		slog.Debug("map extensions ignored, not a mapping", "line", value.Line)
		return nil
	}

	var raw struct {
		Minefields yaml.Node `yaml:"minefields"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	switch raw.Minefields.Kind {
	case 0:
		return nil
	case yaml.SequenceNode:
	default:
		slog.Debug("minefields ignored, not a list", "line", raw.Minefields.Line)
		return nil
	}

	e.Minefields = make([]FieldRecord, 0, len(raw.Minefields.Content))
	for _, node := range raw.Minefields.Content {
		var rec FieldRecord
		if err := node.Decode(&rec); err != nil {
			slog.Debug("minefield record skipped", "line", node.Line, "error", err)
			continue
		}
		e.Minefields = append(e.Minefields, rec)
	}
	return nil
}

// FieldRecord is one raw minefield entry as written by mappers.
// Pointer fields distinguish "missing" from an explicit zero.
type FieldRecord struct {
	Border Flag      `yaml:"border"`
	Left   *float64  `yaml:"left"`
	Top    *float64  `yaml:"top"`
	Right  *float64  `yaml:"right"`
	Bottom *float64  `yaml:"bottom"`
	Area   []float64 `yaml:"area"`
	Height *float64  `yaml:"height"`
}

// Flag is a boolean that also accepts 0/1, since map files write `border: 1`.
type Flag bool

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flag) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err == nil {
		*f = Flag(b)
		return nil
	}

	var n float64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("flag %q: want bool or number", value.Value)
	}
	*f = n != 0
	return nil
}

// LoadMapInfo reads <dir>/<name>.yaml.
func LoadMapInfo(dir, name string) (MapInfo, error) {
	path := filepath.Join(dir, name+".yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return MapInfo{}, fmt.Errorf("map %q: %w", name, ErrUnknownMap)
		}
		return MapInfo{}, fmt.Errorf("reading map info %s: %w", path, err)
	}

	info := MapInfo{Name: name}
	if err := yaml.Unmarshal(data, &info); err != nil {
		return MapInfo{}, fmt.Errorf("parsing map info %s: %w", path, err)
	}

	return info, nil
}
