package config

import "sync"

// ControlSettings holds camera control and frame pacing options
type ControlSettings struct {
	mu               sync.RWMutex
	flySpeed         float32 // blocks per second
	mouseSensitivity float32 // degrees per pixel
	fpsLimit         int     // 0 means unlimited
	atlasPath        string
}

const (
	DefaultFlySpeed         = 20.0
	DefaultMouseSensitivity = 0.1
	MaxFPSLimit             = 1000
)

var globalControlSettings = &ControlSettings{
	flySpeed:         DefaultFlySpeed,
	mouseSensitivity: DefaultMouseSensitivity,
}

func GetFlySpeed() float32 {
	globalControlSettings.mu.RLock()
	defer globalControlSettings.mu.RUnlock()
	return globalControlSettings.flySpeed
}

// SetFlySpeed sets the camera speed; non-positive values restore the default.
func SetFlySpeed(speed float32) {
	globalControlSettings.mu.Lock()
	defer globalControlSettings.mu.Unlock()
	if speed <= 0 {
		speed = DefaultFlySpeed
	}
	globalControlSettings.flySpeed = speed
}

func GetMouseSensitivity() float32 {
	globalControlSettings.mu.RLock()
	defer globalControlSettings.mu.RUnlock()
	return globalControlSettings.mouseSensitivity
}

func SetMouseSensitivity(s float32) {
	globalControlSettings.mu.Lock()
	defer globalControlSettings.mu.Unlock()
	if s <= 0 {
		s = DefaultMouseSensitivity
	}
	globalControlSettings.mouseSensitivity = s
}

// GetFPSLimit returns the frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalControlSettings.mu.RLock()
	defer globalControlSettings.mu.RUnlock()
	return globalControlSettings.fpsLimit
}

func SetFPSLimit(limit int) {
	globalControlSettings.mu.Lock()
	defer globalControlSettings.mu.Unlock()
	globalControlSettings.fpsLimit = min(max(limit, 0), MaxFPSLimit)
}

// GetAtlasPath returns the atlas image path, empty for the built-in atlas
func GetAtlasPath() string {
	globalControlSettings.mu.RLock()
	defer globalControlSettings.mu.RUnlock()
	return globalControlSettings.atlasPath
}

func SetAtlasPath(path string) {
	globalControlSettings.mu.Lock()
	defer globalControlSettings.mu.Unlock()
	globalControlSettings.atlasPath = path
}
