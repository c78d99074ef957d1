package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/discodec/internal/logging"
)

const (
	FormatHex = "hex"
	FormatRaw = "raw"
)

// Config is the disctl tool configuration.
type Config struct {
	InputFormat    string `toml:"input_format"`
	DumpIndent     int    `toml:"dump_indent"`
	StrictTrailing bool   `toml:"strict_trailing"`
	LogLevel       string `toml:"log_level"`
	Stats          bool   `toml:"stats"`
}

func Default() Config {
	return Config{
		InputFormat:    FormatHex,
		DumpIndent:     2,
		StrictTrailing: true,
		LogLevel:       "info",
		Stats:          false,
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("input_format") {
		cfg.InputFormat = strings.ToLower(strings.TrimSpace(raw.InputFormat))
	}
	if meta.IsDefined("dump_indent") {
		cfg.DumpIndent = raw.DumpIndent
	}
	if meta.IsDefined("strict_trailing") {
		cfg.StrictTrailing = raw.StrictTrailing
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("stats") {
		cfg.Stats = raw.Stats
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	switch cfg.InputFormat {
	case FormatHex, FormatRaw:
	default:
		return fmt.Errorf("input_format must be %q or %q, got %q", FormatHex, FormatRaw, cfg.InputFormat)
	}
	if cfg.DumpIndent < 0 || cfg.DumpIndent > 16 {
		return fmt.Errorf("dump_indent out of range [0,16]: %d", cfg.DumpIndent)
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(logging.LevelNames(), ", "), cfg.LogLevel)
	}
	return nil
}
