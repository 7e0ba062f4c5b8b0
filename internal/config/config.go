// Package config loads the engine's tunable knobs from a TOML file and
// the data-shaped documents (locale table, availability rules) from
// JSON. Everything has a working default; a missing config file is not
// an error.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/bytedance/sonic"

	"github.com/chronoview/go-timeline-engine/internal/aggregate"
	"github.com/chronoview/go-timeline-engine/internal/core/grid"
	"github.com/chronoview/go-timeline-engine/internal/util"
)

// Config is the root of the TOML configuration file.
type Config struct {
	Timezone         string            `toml:"timezone"`
	LocaleFile       string            `toml:"locale_file"`
	AvailabilityFile string            `toml:"availability_file"`
	Engine           EngineConfig      `toml:"engine"`
	Grid             GridConfig        `toml:"grid"`
	Layout           LayoutConfig      `toml:"layout"`
	Aggregation      AggregationConfig `toml:"aggregation"`
}

// EngineConfig bounds the zoom scale in pixels per millisecond.
type EngineConfig struct {
	MinZoom float64 `toml:"min_zoom"`
	MaxZoom float64 `toml:"max_zoom"`
}

// GridConfig tunes the time-axis grid.
type GridConfig struct {
	MinSpacingPx float64 `toml:"min_spacing_px"`
}

// LayoutConfig tunes item layout.
type LayoutConfig struct {
	RowHeightPx       float64 `toml:"row_height_px"`
	ClusterDistancePx float64 `toml:"cluster_distance_px"`
}

// AggregationConfig gates and shapes the aggregated view.
// ViewportThreshold is a human duration string like "3m" or "12w".
type AggregationConfig struct {
	Granularity       string `toml:"granularity"`
	ViewportThreshold string `toml:"viewport_threshold"`
	MinItemCount      int    `toml:"min_item_count"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timezone: "UTC",
		Engine: EngineConfig{
			MinZoom: 1e-6,
			MaxZoom: 1.0,
		},
		Grid: GridConfig{
			MinSpacingPx: 60,
		},
		Layout: LayoutConfig{
			RowHeightPx:       40,
			ClusterDistancePx: 40,
		},
		Aggregation: AggregationConfig{
			Granularity:       string(aggregate.GranularityDynamic),
			ViewportThreshold: "3m",
			MinItemCount:      20,
		},
	}
}

// Load reads the TOML file at path on top of the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the numeric knobs for consistency.
func (c *Config) Validate() error {
	if c.Engine.MinZoom <= 0 {
		return fmt.Errorf("engine.min_zoom must be positive, got %g", c.Engine.MinZoom)
	}
	if c.Engine.MaxZoom <= c.Engine.MinZoom {
		return fmt.Errorf("engine.max_zoom (%g) must exceed engine.min_zoom (%g)",
			c.Engine.MaxZoom, c.Engine.MinZoom)
	}
	if c.Grid.MinSpacingPx <= 0 {
		return fmt.Errorf("grid.min_spacing_px must be positive, got %g", c.Grid.MinSpacingPx)
	}
	if c.Layout.ClusterDistancePx < 0 {
		return fmt.Errorf("layout.cluster_distance_px must not be negative, got %g", c.Layout.ClusterDistancePx)
	}
	switch aggregate.Granularity(c.Aggregation.Granularity) {
	case aggregate.GranularityWeek, aggregate.GranularityMonth, aggregate.GranularityDynamic:
	default:
		return fmt.Errorf("aggregation.granularity must be week, month or dynamic, got %q", c.Aggregation.Granularity)
	}
	if c.Aggregation.ViewportThreshold != "" {
		if _, err := util.ParseDurationString(c.Aggregation.ViewportThreshold); err != nil {
			return fmt.Errorf("aggregation.viewport_threshold: %w", err)
		}
	}
	return nil
}

// AggregationThresholdMs resolves the viewport threshold to
// milliseconds. Validate has already vetted the string when the config
// came through Load.
func (c *Config) AggregationThresholdMs() int64 {
	if c.Aggregation.ViewportThreshold == "" {
		return 0
	}
	d, err := util.ParseDurationString(c.Aggregation.ViewportThreshold)
	if err != nil {
		return 0
	}
	return d.Milliseconds()
}

// LoadLocale reads a JSON locale table. An empty path returns the
// built-in English table.
func LoadLocale(path string) (*grid.Locale, error) {
	if path == "" {
		return grid.DefaultLocale(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file: %w", err)
	}
	locale := grid.DefaultLocale()
	if err := sonic.Unmarshal(data, locale); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", path, err)
	}
	return locale, nil
}

// LoadAvailability reads a JSON availability rule set. An empty path
// returns nil, which the aggregator treats as always available.
func LoadAvailability(path string) (*aggregate.AvailabilityConfig, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read availability file: %w", err)
	}
	var availability aggregate.AvailabilityConfig
	if err := sonic.Unmarshal(data, &availability); err != nil {
		return nil, fmt.Errorf("failed to parse availability file %s: %w", path, err)
	}
	return &availability, nil
}
