package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tilereport/pkg/errors"
	"github.com/matzehuels/tilereport/pkg/pipeline"
)

// defaultConfigFile is read from the working directory when --config is not given.
const defaultConfigFile = appName + ".toml"

// fileConfig is the on-disk TOML configuration.
//
//	tiles_dir = "assets/tiles"
//	output_dir = "reports"
//	formats = ["xlsx", "json"]
//	evacuation_images = ["ev1.png", "ev2.png", "ev3.png"]
type fileConfig struct {
	TilesDir         string   `toml:"tiles_dir"`
	OutputDir        string   `toml:"output_dir"`
	Formats          []string `toml:"formats"`
	EvacuationImages []string `toml:"evacuation_images"`
}

// loadConfig reads the config file at path. An empty path reads
// defaultConfigFile if it exists and yields an empty config otherwise.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); stderrors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		path = defaultConfigFile
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// apply fills options left unset by flags from the config file.
func (cfg fileConfig) apply(opts *pipeline.Options) {
	if opts.TilesDir == "" {
		opts.TilesDir = cfg.TilesDir
	}
	if opts.OutputDir == "" {
		opts.OutputDir = cfg.OutputDir
	}
	if len(opts.Formats) == 0 {
		opts.Formats = cfg.Formats
	}
	if len(opts.EvacuationImages) == 0 {
		opts.EvacuationImages = cfg.EvacuationImages
	}
}

// resolveOptions merges flag values, the config file and pipeline defaults,
// in that order of precedence.
func (c *CLI) resolveOptions(opts pipeline.Options) (pipeline.Options, error) {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return opts, err
	}
	cfg.apply(&opts)
	opts.SetDefaults()
	return opts, nil
}
