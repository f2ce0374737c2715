// Package config loads the settings of the tinytindb CLI from an optional
// YAML file, command line flags override the file.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/kumarUjjawal/tinytindb/logger"
	"gopkg.in/yaml.v3"
)

const (
	PageDirArray = "array"
	PageDirBTree = "btree"
)

type Config struct {
	Prompt      string        `yaml:"prompt"`
	HistoryFile string        `yaml:"history_file"`
	PageDir     string        `yaml:"page_dir"`
	Log         logger.Config `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Prompt:  "db > ",
		PageDir: PageDirArray,
		Log: logger.Config{
			Level:      "warn",
			Format:     "console",
			OutputFile: "stderr",
		},
	}
}

// Load read the YAML file at path on top of the defaults, an empty path only return defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.PageDir {
	case PageDirArray, PageDirBTree:
		return nil
	default:
		return fmt.Errorf("unknown page_dir %q", c.PageDir)
	}
}

// Parse build the config from args (without the program name)
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	configPath := fs.String("config", "", "path to a YAML config file")
	prompt := fs.String("prompt", "", "prompt shown before each command")
	history := fs.String("history", "", "readline history file")
	pageDir := fs.String("pagedir", "", "page directory backend: array or btree")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "log format: console or json")
	logOutput := fs.String("log-output", "", "log destination: stderr, stdout or a file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := Load(*configPath)
	if err != nil {
		return nil, err
	}

	overrides := []struct {
		value string
		field *string
	}{
		{*prompt, &cfg.Prompt},
		{*history, &cfg.HistoryFile},
		{*pageDir, &cfg.PageDir},
		{*logLevel, &cfg.Log.Level},
		{*logFormat, &cfg.Log.Format},
		{*logOutput, &cfg.Log.OutputFile},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.field = o.value
		}
	}

	return cfg, cfg.Validate()
}
