package config

import (
	"sync"

	"dig2d/internal/clip"
	"dig2d/internal/gesture"

	"github.com/go-gl/mathgl/mgl32"
)

// BrushSettings holds dig gesture configuration
type BrushSettings struct {
	mu          sync.RWMutex
	op          clip.Op
	radius      float32
	segments    int
	minMove     float32
	startRadius float32
	growthRate  float32
}

var globalBrushSettings = &BrushSettings{
	op:          clip.Subtract,
	radius:      1.2,
	segments:    10,
	minMove:     0.1,
	startRadius: 0.6,
	growthRate:  5,
}

// GetOp returns whether gestures dig or fill
func GetOp() clip.Op {
	globalBrushSettings.mu.RLock()
	defer globalBrushSettings.mu.RUnlock()
	return globalBrushSettings.op
}

// SetOp sets whether gestures dig or fill
func SetOp(op clip.Op) {
	globalBrushSettings.mu.Lock()
	defer globalBrushSettings.mu.Unlock()
	globalBrushSettings.op = op
}

// GetRadius returns the radius a gesture grows to
func GetRadius() float32 {
	globalBrushSettings.mu.RLock()
	defer globalBrushSettings.mu.RUnlock()
	return globalBrushSettings.radius
}

// SetRadius sets the target radius, clamped to 0.05..10
func SetRadius(r float32) {
	globalBrushSettings.mu.Lock()
	defer globalBrushSettings.mu.Unlock()
	globalBrushSettings.radius = mgl32.Clamp(r, 0.05, 10)
}

// GetSegments returns the brush polygon vertex count
func GetSegments() int {
	globalBrushSettings.mu.RLock()
	defer globalBrushSettings.mu.RUnlock()
	return globalBrushSettings.segments
}

// SetSegments sets the vertex count, clamped to 3..256
func SetSegments(n int) {
	globalBrushSettings.mu.Lock()
	defer globalBrushSettings.mu.Unlock()
	globalBrushSettings.segments = clampInt(n, 3, 256)
}

// GetMinMove returns the smallest displacement that triggers a move dig
func GetMinMove() float32 {
	globalBrushSettings.mu.RLock()
	defer globalBrushSettings.mu.RUnlock()
	return globalBrushSettings.minMove
}

// SetMinMove sets the move threshold; negative values become 0
func SetMinMove(d float32) {
	globalBrushSettings.mu.Lock()
	defer globalBrushSettings.mu.Unlock()
	if d < 0 {
		d = 0
	}
	globalBrushSettings.minMove = d
}

// GetStartRadius returns the radius a gesture starts growing from
func GetStartRadius() float32 {
	globalBrushSettings.mu.RLock()
	defer globalBrushSettings.mu.RUnlock()
	return globalBrushSettings.startRadius
}

// SetStartRadius sets the initial radius; negative values become 0
func SetStartRadius(r float32) {
	globalBrushSettings.mu.Lock()
	defer globalBrushSettings.mu.Unlock()
	if r < 0 {
		r = 0
	}
	globalBrushSettings.startRadius = r
}

// GetGrowthRate returns the radius growth in units per second
func GetGrowthRate() float32 {
	globalBrushSettings.mu.RLock()
	defer globalBrushSettings.mu.RUnlock()
	return globalBrushSettings.growthRate
}

// SetGrowthRate sets the growth rate, clamped to 0.1..100
func SetGrowthRate(rate float32) {
	globalBrushSettings.mu.Lock()
	defer globalBrushSettings.mu.Unlock()
	globalBrushSettings.growthRate = mgl32.Clamp(rate, 0.1, 100)
}

// Brush returns the current brush configuration as gesture parameters.
func Brush() gesture.Params {
	return gesture.Params{
		Op:          GetOp(),
		Radius:      GetRadius(),
		Segments:    GetSegments(),
		MinMove:     GetMinMove(),
		StartRadius: GetStartRadius(),
		GrowthRate:  GetGrowthRate(),
	}
}
