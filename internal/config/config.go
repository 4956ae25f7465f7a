package config

import "sync"

// PickSettings holds picking configuration
type PickSettings struct {
	mu            sync.RWMutex
	deepPicking   bool
	pickTolerance int // half-size in pixels of the region picked around the cursor
}

var globalPickSettings = &PickSettings{
	pickTolerance: 3, // default value
}

// GetDeepPicking reports whether resolution should surface every object under
// the cursor instead of only the foremost one.
func GetDeepPicking() bool {
	globalPickSettings.mu.RLock()
	defer globalPickSettings.mu.RUnlock()
	return globalPickSettings.deepPicking
}

// SetDeepPicking toggles deep picking.
func SetDeepPicking(on bool) {
	globalPickSettings.mu.Lock()
	defer globalPickSettings.mu.Unlock()
	globalPickSettings.deepPicking = on
}

// GetPickTolerance returns the half-size in pixels of the pick rectangle
// placed around the cursor.
func GetPickTolerance() int {
	globalPickSettings.mu.RLock()
	defer globalPickSettings.mu.RUnlock()
	return globalPickSettings.pickTolerance
}

// SetPickTolerance sets the pick rectangle half-size in pixels.
func SetPickTolerance(px int) {
	globalPickSettings.mu.Lock()
	defer globalPickSettings.mu.Unlock()

	// Clamp to reasonable values
	if px < 0 {
		px = 0
	}
	if px > 32 {
		px = 32
	}

	globalPickSettings.pickTolerance = px
}
