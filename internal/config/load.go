package config

import (
	"fmt"
	"os"

	"dig2d/internal/clip"
	"dig2d/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when Load gets no path.
const EnvPath = "DIG2D_CONFIG"

// File is the YAML layout of a settings file. Omitted keys keep their
// current values.
type File struct {
	Terrain TerrainFile `yaml:"terrain"`
	Brush   BrushFile   `yaml:"brush"`
	Viewer  ViewerFile  `yaml:"viewer"`
}

type TerrainFile struct {
	Origin      *[2]float32 `yaml:"origin"`
	BlockSize   *float32    `yaml:"block_size"`
	ResolutionX *int        `yaml:"resolution_x"`
	ResolutionY *int        `yaml:"resolution_y"`
	Depth       *float32    `yaml:"depth"`
}

type BrushFile struct {
	Op          string   `yaml:"op"`
	Radius      *float32 `yaml:"radius"`
	Segments    *int     `yaml:"segments"`
	MinMove     *float32 `yaml:"min_move"`
	StartRadius *float32 `yaml:"start_radius"`
	GrowthRate  *float32 `yaml:"growth_rate"`
}

type ViewerFile struct {
	FPSLimit      *int     `yaml:"fps_limit"`
	PixelsPerUnit *float32 `yaml:"pixels_per_unit"`
}

// Load reads a YAML settings file.
// If path == "", it falls back to $DIG2D_CONFIG and returns nil, nil when
// neither is set.
func Load(path string) (*File, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &f, nil
}

// Apply pushes every value present in f through the clamping setters.
// A nil file is a no-op.
func Apply(f *File) error {
	if f == nil {
		return nil
	}
	t := f.Terrain
	if t.Origin != nil {
		SetOrigin(mgl32.Vec2{t.Origin[0], t.Origin[1]})
	}
	if t.BlockSize != nil {
		SetBlockSize(*t.BlockSize)
	}
	if t.ResolutionX != nil || t.ResolutionY != nil {
		x, y := GetResolution()
		if t.ResolutionX != nil {
			x = *t.ResolutionX
		}
		if t.ResolutionY != nil {
			y = *t.ResolutionY
		}
		SetResolution(x, y)
	}
	if t.Depth != nil {
		SetDepth(*t.Depth)
	}

	b := f.Brush
	if b.Op != "" {
		op, err := clip.ParseOp(b.Op)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		SetOp(op)
	}
	if b.Radius != nil {
		SetRadius(*b.Radius)
	}
	if b.Segments != nil {
		SetSegments(*b.Segments)
	}
	if b.MinMove != nil {
		SetMinMove(*b.MinMove)
	}
	if b.StartRadius != nil {
		SetStartRadius(*b.StartRadius)
	}
	if b.GrowthRate != nil {
		SetGrowthRate(*b.GrowthRate)
	}

	if v := f.Viewer; v.FPSLimit != nil {
		SetFPSLimit(*v.FPSLimit)
	}
	if v := f.Viewer; v.PixelsPerUnit != nil {
		SetPixelsPerUnit(*v.PixelsPerUnit)
	}
	return nil
}

// Terrain returns the current grid layout as terrain settings.
func Terrain() terrain.Settings {
	x, y := GetResolution()
	return terrain.Settings{
		Origin:      GetOrigin(),
		BlockSize:   GetBlockSize(),
		Depth:       GetDepth(),
		ResolutionX: x,
		ResolutionY: y,
	}
}
