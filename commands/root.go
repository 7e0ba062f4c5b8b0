package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/chronoview/go-timeline-engine/internal/aggregate"
	"github.com/chronoview/go-timeline-engine/internal/config"
	"github.com/chronoview/go-timeline-engine/internal/core/engine"
	"github.com/chronoview/go-timeline-engine/internal/core/grid"
	"github.com/chronoview/go-timeline-engine/internal/presentation/formatter"
	"github.com/chronoview/go-timeline-engine/internal/util"
)

var (
	// Logging related
	debug bool

	// Configuration
	configPath       string
	localeFile       string
	availabilityFile string

	// Viewport selection
	startStr string
	endStr   string
	spanStr  string
	width    float64

	// Output related
	outputFormat string
	timezone     string

	// Aggregation
	itemsFile      string
	forceAggregate bool

	rootCmd = &cobra.Command{
		Use:   "go-timeline-engine [flags]",
		Short: "Timeline grid and aggregation renderer",
		Long: `go-timeline-engine computes the adaptive time-axis grid, header rows
and period aggregation for a timeline viewport and renders them to stdout.

Examples:
  go-timeline-engine                                        # Current week at default width
  go-timeline-engine --start 2025-03-01 --span 2w           # Two weeks from March 1st
  go-timeline-engine --start 2025-03-01 --end 2025-06-01    # Explicit range
  go-timeline-engine --span 1y --output json                # One year as JSON
  go-timeline-engine --items bookings.json --output table   # Aggregate items into periods
  go-timeline-engine --timezone Europe/Berlin --locale de.json`,
		RunE: runRender,
	}
)

const defaultLogFile = "~/.go-timeline-engine/logs/app.log"

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "",
		"Timezone setting (e.g., Asia/Shanghai, UTC); overrides the config file")
	rootCmd.PersistentFlags().StringVar(&localeFile, "locale", "",
		"Path to JSON locale table; overrides the config file")
	rootCmd.PersistentFlags().StringVar(&availabilityFile, "availability", "",
		"Path to JSON availability rules; overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	rootCmd.PersistentFlags().StringVar(&startStr, "start", "",
		"Viewport start (2006-01-02, '2006-01-02 15:04:05' or RFC3339); default is span-centered on now")
	rootCmd.PersistentFlags().StringVar(&endStr, "end", "",
		"Viewport end; overrides --span")
	rootCmd.PersistentFlags().StringVar(&spanStr, "span", "1w",
		"Viewport span when --end is absent (e.g., 12h, 7d, 2w, 1m, 1y)")
	rootCmd.PersistentFlags().StringVar(&itemsFile, "items", "",
		"Path to JSON items to aggregate into periods")

	rootCmd.Flags().Float64Var(&width, "width", 1000,
		"Container width in pixels")
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.Flags().BoolVar(&forceAggregate, "aggregate", false,
		"Aggregate items even below the configured thresholds")
}

func runRender(cmd *cobra.Command, args []string) error {
	env, err := setupEnvironment()
	if err != nil {
		return err
	}

	start, end, err := resolveRange(env.location, env.now)
	if err != nil {
		return err
	}

	eng := engine.New(start, end, width, engine.Config{
		MinZoom:    env.cfg.Engine.MinZoom,
		MaxZoom:    env.cfg.Engine.MaxZoom,
		MinSpacing: env.cfg.Grid.MinSpacingPx,
		Locale:     env.locale,
		Location:   env.location,
	})

	snap := buildSnapshot(eng, env)

	switch outputFormat {
	case "json":
		return formatter.NewJSONFormatter().Format(os.Stdout, snap)
	case "csv":
		return formatter.NewCSVFormatter().Format(os.Stdout, snap)
	case "summary":
		return formatter.NewSummaryFormatter().Format(os.Stdout, snap)
	case "table":
		return formatter.NewTableFormatter().Format(os.Stdout, snap)
	default:
		return fmt.Errorf("unknown output format: %s", outputFormat)
	}
}

// environment is the shared setup of the render and view commands.
type environment struct {
	cfg          *config.Config
	locale       *grid.Locale
	availability *aggregate.AvailabilityConfig
	items        []aggregate.Item
	location     *time.Location
	timezoneName string
	now          func() time.Time
}

func setupEnvironment() (*environment, error) {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err == nil {
		util.InitLogger(logLevel, logFile)
	} else {
		util.InitLogger(logLevel, "")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	tz := cfg.Timezone
	if timezone != "" {
		tz = timezone
	}
	if err := util.InitializeTimeProvider(tz); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	loc := util.GetTimeProvider().Location()

	localePath := cfg.LocaleFile
	if localeFile != "" {
		localePath = localeFile
	}
	locale, err := config.LoadLocale(localePath)
	if err != nil {
		return nil, err
	}

	availabilityPath := cfg.AvailabilityFile
	if availabilityFile != "" {
		availabilityPath = availabilityFile
	}
	availability, err := config.LoadAvailability(availabilityPath)
	if err != nil {
		return nil, err
	}

	var items []aggregate.Item
	if itemsFile != "" {
		items, err = loadItems(itemsFile)
		if err != nil {
			return nil, err
		}
	}

	return &environment{
		cfg:          cfg,
		locale:       locale,
		availability: availability,
		items:        items,
		location:     loc,
		timezoneName: tz,
		now:          util.GetTimeProvider().Now,
	}, nil
}

func resolveRange(loc *time.Location, now func() time.Time) (int64, int64, error) {
	span, err := util.ParseDurationString(spanStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --span: %w", err)
	}

	var start, end int64
	switch {
	case startStr != "" && endStr != "":
		if start, err = parseTime(startStr, loc); err != nil {
			return 0, 0, fmt.Errorf("invalid --start: %w", err)
		}
		if end, err = parseTime(endStr, loc); err != nil {
			return 0, 0, fmt.Errorf("invalid --end: %w", err)
		}
	case startStr != "":
		if start, err = parseTime(startStr, loc); err != nil {
			return 0, 0, fmt.Errorf("invalid --start: %w", err)
		}
		end = start + span.Milliseconds()
	case endStr != "":
		if end, err = parseTime(endStr, loc); err != nil {
			return 0, 0, fmt.Errorf("invalid --end: %w", err)
		}
		start = end - span.Milliseconds()
	default:
		center := now().UnixMilli()
		start = center - span.Milliseconds()/2
		end = start + span.Milliseconds()
	}

	if end <= start {
		return 0, 0, fmt.Errorf("viewport end %s is not after start %s", endStr, startStr)
	}
	return start, end, nil
}

var timeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(s string, loc *time.Location) (int64, error) {
	for _, format := range timeFormats {
		if t, err := time.ParseInLocation(format, s, loc); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, fmt.Errorf("unrecognized time %q", s)
}

func loadItems(path string) ([]aggregate.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}
	var items []aggregate.Item
	if err := sonic.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse items file %s: %w", path, err)
	}
	return items, nil
}

// buildSnapshot assembles the render-ready view of the engine's current
// state, aggregating items when they are present and either the
// configured thresholds trip or aggregation is forced.
func buildSnapshot(eng *engine.Engine, env *environment) *formatter.ViewSnapshot {
	vp := eng.GetViewportState()
	snap := &formatter.ViewSnapshot{
		Timezone:       env.timezoneName,
		ContainerWidth: eng.ContainerWidth(),
		Zoom:           eng.GetZoomState(),
		Viewport:       vp,
		HeaderRows:     eng.GetHeaderCells(),
		GridLines:      eng.GetVisibleGridLines(),
	}

	if len(env.items) > 0 {
		gate := aggregate.ShouldUseAggregatedView(vp.SpanMs(), len(env.items), aggregate.Config{
			ViewportThresholdMs: env.cfg.AggregationThresholdMs(),
			MinItemCount:        env.cfg.Aggregation.MinItemCount,
		})
		if gate || forceAggregate {
			agg := aggregate.NewAggregator(env.location, env.availability)
			snap.Periods = agg.AggregatePeriods(env.items, vp.Start, vp.End,
				aggregate.Granularity(env.cfg.Aggregation.Granularity))
		}
	}
	return snap
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
