package engineconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds viewer preferences: window, frame rate, texture budget and debug overlays.
// Globe orientation and zoom are never persisted.
type EnginePrefs struct {
	WindowWidth     int  `json:"window_width"`
	WindowHeight    int  `json:"window_height"`
	TargetFPS       int  `json:"target_fps"`
	MSAA            bool `json:"msaa"`
	MaxTextureSize  int  `json:"max_texture_size"`
	ShowFPS         bool `json:"show_fps"`
	ShowMemAlloc    bool `json:"show_memalloc"`
	ShowOrientation bool `json:"show_orientation"`
}

// Default returns default preferences: fullscreen at monitor size, 60 FPS, overlays off.
func Default() EnginePrefs {
	return EnginePrefs{
		TargetFPS:      60,
		MSAA:           true,
		MaxTextureSize: 4096,
	}
}

// Load reads preferences from path. A missing file yields Default() and no error.
// An invalid file yields Default() and the error so the caller can log it.
func Load(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("engineconfig: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: %w", err)
	}
	return p, nil
}

// Save writes preferences to path, creating its directory if needed.
func Save(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
