package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

// RenderConfig is an optional YAML render-job description, decoded in place
// of individual flags when --config is given. A zero value for any field
// falls back to the corresponding flag default.
type RenderConfig struct {
	Scene  string     `yaml:"scene"`  // "default", "group", "csg", or a path to a .obj file
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	FOV    float64    `yaml:"fov"`
	From   [3]float64 `yaml:"from"`
	To     [3]float64 `yaml:"to"`
	Up     [3]float64 `yaml:"up"`
	Output string     `yaml:"output"`
}

// loadConfig reads and decodes a YAML render-job file.
func loadConfig(path string) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("raytrace: reading config %s: %w", path, err)
	}

	var cfg RenderConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("raytrace: parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

func (cfg *RenderConfig) viewFrom() prim.Tuple {
	return prim.NewPoint(cfg.From[0], cfg.From[1], cfg.From[2])
}

func (cfg *RenderConfig) viewTo() prim.Tuple {
	return prim.NewPoint(cfg.To[0], cfg.To[1], cfg.To[2])
}

func (cfg *RenderConfig) viewUp() prim.Tuple {
	if cfg.Up == ([3]float64{}) {
		return prim.NewVector(0, 1, 0)
	}
	return prim.NewVector(cfg.Up[0], cfg.Up[1], cfg.Up[2])
}
