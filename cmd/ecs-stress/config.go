package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Run     RunConfig     `toml:"run" yaml:"run"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

type RunConfig struct {
	Duration time.Duration `toml:"duration" yaml:"duration"`
	Entities int           `toml:"entities" yaml:"entities"`
	// MaxComponents bounds how many components each spawned entity gets.
	MaxComponents int   `toml:"max_components" yaml:"max_components"`
	Seed          int64 `toml:"seed" yaml:"seed"`
	// ChurnPerFrame entities are destroyed and respawned through Commands
	// after every frame.
	ChurnPerFrame  int  `toml:"churn_per_frame" yaml:"churn_per_frame"`
	GCPauseMetrics bool `toml:"gc_pause_metrics" yaml:"gc_pause_metrics"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

func defaults() *Config {
	return &Config{
		Run: RunConfig{
			Duration:      10 * time.Second,
			Entities:      10000,
			MaxComponents: 5,
			Seed:          1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML or YAML config, picked by the file extension, on top of
// the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch {
	case c.Run.Duration <= 0:
		return fmt.Errorf("run.duration must be positive, got %s", c.Run.Duration)
	case c.Run.Entities < 0:
		return fmt.Errorf("run.entities must not be negative, got %d", c.Run.Entities)
	case c.Run.MaxComponents < 1:
		return fmt.Errorf("run.max_components must be at least 1, got %d", c.Run.MaxComponents)
	case c.Run.ChurnPerFrame < 0:
		return fmt.Errorf("run.churn_per_frame must not be negative, got %d", c.Run.ChurnPerFrame)
	}
	return nil
}

// flagValues holds the command line; only flags the user set override the
// loaded config.
type flagValues struct {
	config         string
	duration       time.Duration
	entities       int
	maxComponents  int
	seed           int64
	churn          int
	gcPauseMetrics bool
	logLevel       string
	logFormat      string
}

func (f *flagValues) register(fs *flag.FlagSet) {
	d := defaults()
	fs.StringVar(&f.config, "config", "", "Path to a .toml or .yaml config file.")
	fs.DurationVar(&f.duration, "duration", d.Run.Duration, "The total duration the test should run for.")
	fs.IntVar(&f.entities, "entities", d.Run.Entities, "The initial number of entities to create.")
	fs.IntVar(&f.maxComponents, "max-components", d.Run.MaxComponents, "The maximum number of components per entity.")
	fs.Int64Var(&f.seed, "seed", d.Run.Seed, "Seed for the random entity layout.")
	fs.IntVar(&f.churn, "churn", d.Run.ChurnPerFrame, "Entities destroyed and respawned each frame.")
	fs.BoolVar(&f.gcPauseMetrics, "gc-pause-metrics", d.Run.GCPauseMetrics, "Enable detailed GC pause metrics in the report.")
	fs.StringVar(&f.logLevel, "log-level", d.Logging.Level, "Log level (debug, info, warn, error).")
	fs.StringVar(&f.logFormat, "log-format", d.Logging.Format, "Log format (json or console).")
}

func (f *flagValues) apply(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "duration":
			cfg.Run.Duration = f.duration
		case "entities":
			cfg.Run.Entities = f.entities
		case "max-components":
			cfg.Run.MaxComponents = f.maxComponents
		case "seed":
			cfg.Run.Seed = f.seed
		case "churn":
			cfg.Run.ChurnPerFrame = f.churn
		case "gc-pause-metrics":
			cfg.Run.GCPauseMetrics = f.gcPauseMetrics
		case "log-level":
			cfg.Logging.Level = f.logLevel
		case "log-format":
			cfg.Logging.Format = f.logFormat
		}
	})
}

// parseConfig builds the effective config from args.
func parseConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("ecs-stress", flag.ContinueOnError)
	var f flagValues
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaults()
	if f.config != "" {
		loaded, err := Load(f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	f.apply(fs, cfg)
	return cfg, cfg.validate()
}
