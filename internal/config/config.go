// Package config loads the numlist configuration file.
//
// The file is optional. It may be YAML (.yaml, .yml), parsed with
// gopkg.in/yaml.v3, or JSON with comments (.json, .jsonc), which is passed
// through github.com/tidwall/jsonc to strip comments and trailing commas
// before the standard encoding/json decoder sees it. Unknown keys are
// rejected in both formats so that typos do not go unnoticed.
//
// Values missing from the file keep their defaults; command-line flags are
// applied on top by the cli package.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/numlist/internal/model"
)

// DefaultFileName is looked up in the user's home directory when no
// --config flag is given.
const DefaultFileName = ".numlist.yaml"

// DefaultPrompt is shown before every input line.
const DefaultPrompt = ">> "

// Config holds the user-tunable settings of the interactive session.
type Config struct {
	// Prompt is printed before each input line.
	Prompt string `yaml:"prompt" json:"prompt"`

	// NaN is the policy for NaN values typed or imported.
	NaN model.NaNPolicy `yaml:"nan" json:"nan"`

	// Imports lists numbers files loaded before the first prompt, in order.
	// Relative paths are resolved against the config file's directory.
	Imports []string `yaml:"imports,omitempty" json:"imports,omitempty"`

	// Banner controls whether the two-line greeting is shown at start-up.
	// A pointer so that an absent key keeps the default (shown).
	Banner *bool `yaml:"banner,omitempty" json:"banner,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Prompt: DefaultPrompt,
		NaN:    model.NaNAllow,
	}
}

// ShowBanner reports whether the start-up greeting should be printed.
func (c *Config) ShowBanner() bool {
	return c.Banner == nil || *c.Banner
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.Prompt == "" {
		return fmt.Errorf("prompt must not be empty")
	}
	if strings.ContainsAny(c.Prompt, "\r\n") {
		return fmt.Errorf("prompt must be a single line, got %q", c.Prompt)
	}
	if !c.NaN.IsValid() {
		return fmt.Errorf("invalid nan policy %q (valid: allow, reject)", c.NaN)
	}
	for i, p := range c.Imports {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("imports[%d] must not be empty", i)
		}
	}
	return nil
}

// Load reads the configuration file at path and validates the result.
// The format is chosen by file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	case ".json", ".jsonc":
		err = decodeJSONC(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (use .yaml, .yml, .json or .jsonc)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Import paths in the file are relative to the file, not to the
	// directory numlist happens to be started from.
	base := filepath.Dir(path)
	for i, p := range cfg.Imports {
		if p != "" && !filepath.IsAbs(p) {
			cfg.Imports[i] = filepath.Join(base, p)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads $HOME/.numlist.yaml when it exists and returns the
// built-in defaults otherwise. The second return value is the path that was
// loaded, or "" for defaults.
func LoadDefault() (*Config, string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), "", nil
	}
	path := filepath.Join(home, DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeJSONC(data []byte, cfg *Config) error {
	clean := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(clean)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(clean))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}
