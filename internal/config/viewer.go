package config

import "sync"

// ViewerSettings holds window loop configuration
type ViewerSettings struct {
	mu            sync.RWMutex
	fpsLimit      int
	pixelsPerUnit float32
}

var globalViewerSettings = &ViewerSettings{
	fpsLimit:      120,
	pixelsPerUnit: 64,
}

// GetFPSLimit returns the frame cap; 0 means uncapped
func GetFPSLimit() int {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Values <= 0 disable it, others are
// clamped to 30..1000
func SetFPSLimit(limit int) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	if limit <= 0 {
		globalViewerSettings.fpsLimit = 0
		return
	}
	globalViewerSettings.fpsLimit = clampInt(limit, 30, 1000)
}

// GetPixelsPerUnit returns the mask texture resolution
func GetPixelsPerUnit() float32 {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.pixelsPerUnit
}

// SetPixelsPerUnit sets the mask resolution, clamped to 4..256
func SetPixelsPerUnit(ppu float32) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	if ppu < 4 {
		ppu = 4
	}
	if ppu > 256 {
		ppu = 256
	}
	globalViewerSettings.pixelsPerUnit = ppu
}
