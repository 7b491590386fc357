package config

import (
	"os"
	"path/filepath"
	"testing"

	"dig2d/internal/clip"
	"dig2d/internal/gesture"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettersClamp(t *testing.T) {
	defer SetBlockSize(GetBlockSize())
	x, y := GetResolution()
	defer SetResolution(x, y)

	SetBlockSize(0.01)
	assert.Equal(t, float32(0.25), GetBlockSize())
	SetBlockSize(9)
	assert.Equal(t, float32(5), GetBlockSize())

	SetResolution(1, 500)
	gx, gy := GetResolution()
	assert.Equal(t, 2, gx)
	assert.Equal(t, 100, gy)
}

func TestLoadWithoutPath(t *testing.T) {
	t.Setenv(EnvPath, "")
	f, err := Load("")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.NoError(t, Apply(f))
}

func TestLoadAndApply(t *testing.T) {
	defer SetBlockSize(GetBlockSize())
	x, y := GetResolution()
	defer SetResolution(x, y)
	defer SetOp(GetOp())
	defer SetRadius(GetRadius())
	defer SetOrigin(GetOrigin())

	path := filepath.Join(t.TempDir(), "dig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
terrain:
  origin: [1, -2]
  block_size: 1.5
  resolution_x: 4
brush:
  op: fill
  radius: 0.8
`), 0o644))
	t.Setenv(EnvPath, path)

	f, err := Load("")
	require.NoError(t, err)
	require.NoError(t, Apply(f))

	s := Terrain()
	assert.Equal(t, mgl32.Vec2{1, -2}, s.Origin)
	assert.Equal(t, float32(1.5), s.BlockSize)
	assert.Equal(t, 4, s.ResolutionX)
	assert.Equal(t, y, s.ResolutionY)
	assert.Equal(t, clip.Add, GetOp())
	assert.Equal(t, float32(0.8), GetRadius())
}

func TestApplyRejectsUnknownOp(t *testing.T) {
	err := Apply(&File{Brush: BrushFile{Op: "explode"}})
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("terrain: [1, 2"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBrushDefaultsMatchGesture(t *testing.T) {
	assert.Equal(t, gesture.DefaultParams(), Brush())
}

func TestFPSLimit(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())
	SetFPSLimit(-5)
	assert.Equal(t, 0, GetFPSLimit())
	SetFPSLimit(10)
	assert.Equal(t, 30, GetFPSLimit())
	SetFPSLimit(144)
	assert.Equal(t, 144, GetFPSLimit())
}
