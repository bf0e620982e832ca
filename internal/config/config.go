package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/cli/safeexec"
)

// ErrNoSearchRoots is returned when a search is requested with no
// directories to scan.
var ErrNoSearchRoots = errors.New("no folders to search in")

// EngineCaps describes engine-specific behavior quirks.
type EngineCaps struct {
	// NeedsStderrToConfirmError marks engines that exit nonzero on a
	// benign "no matches" result. For those, a run only counts as failed
	// when the exit code is nonzero and stderr has content.
	NeedsStderrToConfirmError bool `toml:"needs_stderr_to_confirm_error"`
}

// defaultEngineCaps covers the engines we know about. Anything absent
// gets the zero value: nonzero exit is always an error.
var defaultEngineCaps = map[string]EngineCaps{
	"ripgrep":               {NeedsStderrToConfirmError: true},
	"the_silver_searcher":   {NeedsStderrToConfirmError: true},
	"the_platinum_searcher": {NeedsStderrToConfirmError: true},
}

// Config holds the process-wide search settings. Loaded once, read-only
// for the lifetime of a search.
type Config struct {
	EngineName        string   `toml:"engine_name"`
	ExecutablePath    string   `toml:"executable_path"`
	RequiredArgs      []string `toml:"required_args"`
	ShowListByDefault bool     `toml:"show_list_by_default"`

	// Engines lets a config file extend or override the built-in
	// capability table, keyed by engine name.
	Engines map[string]EngineCaps `toml:"engines"`
}

// Default returns the configuration used when no config file exists:
// ripgrep with vimgrep-style output.
func Default() Config {
	return Config{
		EngineName:     "ripgrep",
		ExecutablePath: "rg",
		RequiredArgs:   []string{"--vimgrep", "--no-heading", "--color=never"},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "grep-tui", "config.toml")
}

// Load reads a TOML config file on top of the defaults. A missing file at
// the default location is not an error; a missing explicit path is.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Caps returns the capability record for the configured engine.
func (c Config) Caps() EngineCaps {
	if caps, ok := c.Engines[c.EngineName]; ok {
		return caps
	}
	return defaultEngineCaps[c.EngineName]
}

// ResolveExecutable locates the engine binary. Relative names are looked
// up on PATH via safeexec, which skips the working directory.
func (c Config) ResolveExecutable() (string, error) {
	if filepath.IsAbs(c.ExecutablePath) {
		if _, err := os.Stat(c.ExecutablePath); err != nil {
			return "", fmt.Errorf("search engine %s: %w", c.EngineName, err)
		}
		return c.ExecutablePath, nil
	}
	bin, err := safeexec.LookPath(c.ExecutablePath)
	if err != nil {
		return "", fmt.Errorf("search engine %s not found (is %q installed?): %w",
			c.EngineName, c.ExecutablePath, err)
	}
	return bin, nil
}

func (c Config) Validate() error {
	if c.EngineName == "" {
		return fmt.Errorf("engine_name is required")
	}
	if c.ExecutablePath == "" {
		return fmt.Errorf("executable_path is required")
	}
	return nil
}
