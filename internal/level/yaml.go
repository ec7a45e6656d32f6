package level

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-gridlock/internal/core"
)

// yamlLevel is the on-disk YAML structure for a level file.
type yamlLevel struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Instruction string     `yaml:"instruction,omitempty"`
	Grid        yamlExtent `yaml:"grid"`
	Margin      *Margins   `yaml:"margin,omitempty"`
	Constraints []string   `yaml:"constraints"`
	Cells       []yamlCell `yaml:"cells"`
}

type yamlExtent struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type yamlCell struct {
	Kind  string   `yaml:"kind"`
	X     int      `yaml:"x"`
	Y     int      `yaml:"y"`
	Faces []string `yaml:"faces,omitempty"` // top, bottom, left, right
}

// defaultMargin mirrors the historical default playfield border.
var defaultMargin = Margins{Top: 4, Bottom: 4, Left: 4, Right: 4}

// ParseYAML parses and validates a single YAML level definition.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("level: yaml unmarshal: %w", err)
	}

	lvl := Level{
		ID:          yl.ID,
		Name:        yl.Name,
		Instruction: yl.Instruction,
		Width:       yl.Grid.W,
		Height:      yl.Grid.H,
		Margins:     defaultMargin,
		Constraints: yl.Constraints,
	}
	if yl.Margin != nil {
		lvl.Margins = *yl.Margin
	}

	for i, yc := range yl.Cells {
		spec, err := parseCell(yc)
		if err != nil {
			return Level{}, fmt.Errorf("level %s: cell %d: %w", yl.ID, i, err)
		}
		lvl.Cells = append(lvl.Cells, spec)
	}

	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

func parseCell(yc yamlCell) (CellSpec, error) {
	spec := CellSpec{Pos: core.C(yc.X, yc.Y)}

	switch yc.Kind {
	case "dark":
		spec.Kind = core.KindDark
	case "sea":
		spec.Kind = core.KindSea
	case "pyramid":
		spec.Kind = core.KindPyramid
	default:
		return CellSpec{}, fmt.Errorf("unknown kind %q", yc.Kind)
	}

	if spec.Kind != core.KindPyramid {
		if len(yc.Faces) > 0 {
			return CellSpec{}, fmt.Errorf("faces given for non-pyramid kind %q", yc.Kind)
		}
		return spec, nil
	}

	if len(yc.Faces) != 4 {
		return CellSpec{}, fmt.Errorf("pyramid needs exactly 4 faces, got %d", len(yc.Faces))
	}
	for i, name := range yc.Faces {
		switch name {
		case "none", "":
			spec.Faces[i] = core.FaceNone
		case "dark":
			spec.Faces[i] = core.FaceDark
		case "sea":
			spec.Faces[i] = core.FaceSea
		default:
			return CellSpec{}, fmt.Errorf("unknown face color %q", name)
		}
	}
	return spec, nil
}
