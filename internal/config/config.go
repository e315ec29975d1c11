// Package config loads engine options from a JSON file.
package config

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/elektrokombinacija/surfview/internal/view"
)

// Load reads engine options from the JSON file at path. An empty path returns
// the defaults.
func Load(path string) (view.Config, error) {
	cfg := view.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes engine options from JSON. Missing keys keep their defaults.
func Parse(data []byte) (view.Config, error) {
	cfg := view.DefaultConfig()
	if !gjson.ValidBytes(data) {
		return cfg, fmt.Errorf("parse config: invalid JSON")
	}

	set := func(key string, dst *float64) {
		if v := gjson.GetBytes(data, key); v.Exists() {
			*dst = v.Float()
		}
	}
	set("minZoom", &cfg.MinZoom)
	set("maxZoom", &cfg.MaxZoom)
	set("scrollVelocity", &cfg.ScrollVelocity)
	set("leftBoundary", &cfg.LeftBoundary)
	set("rightBoundary", &cfg.RightBoundary)
	set("topBoundary", &cfg.TopBoundary)
	set("bottomBoundary", &cfg.BottomBoundary)
	set("animDuration", &cfg.AnimDuration)
	return cfg, nil
}
