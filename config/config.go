// Package config holds the runtime-tunable numeric parameters of the
// core: iteration caps, convergence tolerances, broad-phase margins.
// None of the pack's retrieved repos use a structured-logging
// library, but two (gazed-vu, Gekko3D-gekko) declare gopkg.in/yaml.v3
// in their go.mod; this is the natural home for it here, parsing a
// plain tuning file an embedder may ship alongside the binary.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config collects every tunable threshold used across broadphase, gjk,
// epa, and the sleep heuristic. Zero-value Config is invalid; always
// start from Default().
type Config struct {
	GJKMaxIterations int     `yaml:"gjk_max_iterations"`
	EPAMaxIterations int     `yaml:"epa_max_iterations"`
	EPATolerance     float64 `yaml:"epa_tolerance"`
	TOIMaxIterations int     `yaml:"toi_max_iterations"`
	TOITolerance     float64 `yaml:"toi_tolerance"`

	DBVTMargin          float64 `yaml:"dbvt_margin"`
	SpatialHashCellSize float64 `yaml:"spatial_hash_cell_size"`

	SleepTimeThreshold     float64 `yaml:"sleep_time_threshold"`
	SleepVelocityThreshold float64 `yaml:"sleep_velocity_threshold"`

	Workers int `yaml:"workers"`
}

// Default returns the tuning used when no config file is supplied.
func Default() Config {
	return Config{
		GJKMaxIterations:       32,
		EPAMaxIterations:       32,
		EPATolerance:           0.001,
		TOIMaxIterations:       32,
		TOITolerance:           1e-6,
		DBVTMargin:             0.1,
		SpatialHashCellSize:    1.0,
		SleepTimeThreshold:     0.5,
		SleepVelocityThreshold: 0.01,
		Workers:                1,
	}
}

// Load reads a YAML tuning file at path, starting from Default() so
// an omitted field keeps its default rather than zeroing out.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
