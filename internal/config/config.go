// Package config loads .realign.toml, the per-project settings of realign.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"realign/internal/format"
	"realign/internal/lexer"
)

// FileName is looked up in the working directory and its parents.
const FileName = ".realign.toml"

// Config holds the settings shared by every file of a run.
type Config struct {
	// Indentation replaces block indentation when non-empty.
	Indentation string `toml:"indentation"`
	// LineBreak is "lf", "crlf" or empty to keep each file's own.
	LineBreak string `toml:"line_break"`
	// ScannerExtensionsMap maps tokenizer names to file extensions.
	ScannerExtensionsMap map[string][]string `toml:"scanner_extensions_map"`
	// Exclude holds glob patterns matched against base names while walking directories.
	Exclude []string `toml:"exclude"`
	// Jobs caps parallel files; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`
}

// Manifest is a discovered config file.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{ScannerExtensionsMap: lexer.DefaultExtensionsMap()}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the nearest config file. ok is false when there is none.
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// Load reads and validates one config file. Omitted keys keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	cfg.ScannerExtensionsMap = nil
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if !meta.IsDefined("scanner_extensions_map") {
		cfg.ScannerExtensionsMap = lexer.DefaultExtensionsMap()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be expressed in the TOML schema.
func (c Config) Validate() error {
	if strings.TrimLeft(c.Indentation, " \t") != "" {
		return fmt.Errorf("indentation must contain only spaces and tabs, got %q", c.Indentation)
	}
	if _, err := format.ParseLineBreak(c.LineBreak); err != nil {
		return fmt.Errorf("line_break: %w", err)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	for _, pattern := range c.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("exclude: bad pattern %q: %w", pattern, err)
		}
	}
	if _, err := lexer.NewRegistry(c.ScannerExtensionsMap); err != nil {
		return fmt.Errorf("scanner_extensions_map: %w", err)
	}
	return nil
}

// Registry builds the tokenizer registry.
func (c Config) Registry() (*lexer.Registry, error) {
	return lexer.NewRegistry(c.ScannerExtensionsMap)
}

// FormatOptions converts the settings into formatter options.
func (c Config) FormatOptions() (format.Options, error) {
	lineBreak, err := format.ParseLineBreak(c.LineBreak)
	if err != nil {
		return format.Options{}, err
	}
	return format.Options{Indentation: c.Indentation, LineBreak: lineBreak}, nil
}

// Excluded reports whether a base name matches one of the exclude patterns.
func (c Config) Excluded(name string) bool {
	for _, pattern := range c.Exclude {
		if ok, _ := filepath.Match(pattern, name); ok { //nolint:errcheck
			return true
		}
	}
	return false
}
