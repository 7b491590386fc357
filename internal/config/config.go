package config

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// TerrainSettings holds grid layout configuration
type TerrainSettings struct {
	mu          sync.RWMutex
	origin      mgl32.Vec2
	blockSize   float32
	resolutionX int
	resolutionY int
	depth       float32
}

var globalTerrainSettings = &TerrainSettings{
	blockSize:   0.5,
	resolutionX: 10,
	resolutionY: 10,
	depth:       1,
}

// GetOrigin returns the world position of the grid's lower-left corner
func GetOrigin() mgl32.Vec2 {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.origin
}

// SetOrigin sets the world position of the grid's lower-left corner
func SetOrigin(origin mgl32.Vec2) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()
	globalTerrainSettings.origin = origin
}

// GetBlockSize returns the block edge length in render units
func GetBlockSize() float32 {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.blockSize
}

// SetBlockSize sets the block edge length, clamped to 0.25..5
func SetBlockSize(size float32) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()
	globalTerrainSettings.blockSize = mgl32.Clamp(size, 0.25, 5)
}

// GetResolution returns the block count per axis
func GetResolution() (int, int) {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.resolutionX, globalTerrainSettings.resolutionY
}

// SetResolution sets the block count per axis, each clamped to 2..100
func SetResolution(x, y int) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()
	globalTerrainSettings.resolutionX = clampInt(x, 2, 100)
	globalTerrainSettings.resolutionY = clampInt(y, 2, 100)
}

// GetDepth returns the extrusion depth of the edge mesh
func GetDepth() float32 {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.depth
}

// SetDepth sets the extrusion depth; negative values become 0
func SetDepth(depth float32) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()
	if depth < 0 {
		depth = 0
	}
	globalTerrainSettings.depth = depth
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
