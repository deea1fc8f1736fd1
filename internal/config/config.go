// Package config loads riskdash.yaml: which sections the dashboard shows, in
// what order, which one opens first, and where the content catalog lives.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
	"riskdash/internal/catalog"
)

// FileName is the default config file looked up in the working directory.
const FileName = "riskdash.yaml"

// Config represents riskdash.yaml.
type Config struct {
	Title          string            `yaml:"title,omitempty"`
	DefaultSection catalog.Section   `yaml:"defaultSection,omitempty"`
	Sections       []catalog.Section `yaml:"sections,omitempty"`
	Catalog        string            `yaml:"catalog,omitempty"` // yaml or toml catalog file; empty means built-in
	LogFile        string            `yaml:"logFile,omitempty"`
}

// Load reads the config at path. A missing file yields a zero Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks section names against the closed set.
func (c *Config) Validate() error {
	for _, s := range c.Sections {
		if !s.Valid() {
			return fmt.Errorf("config: unknown section %q", s)
		}
	}
	if c.DefaultSection == "" {
		return nil
	}
	if !c.DefaultSection.Valid() {
		return fmt.Errorf("config: unknown default section %q", c.DefaultSection)
	}
	if len(c.Sections) > 0 && !c.HasSection(c.DefaultSection) {
		return fmt.Errorf("config: default section %q is not listed in sections", c.DefaultSection)
	}
	return nil
}

// HasSection reports whether s is listed in Sections.
func (c *Config) HasSection(s catalog.Section) bool {
	for _, x := range c.Sections {
		if x == s {
			return true
		}
	}
	return false
}

// VisibleSections returns the configured sections, or all of them.
func (c *Config) VisibleSections() []catalog.Section {
	if len(c.Sections) == 0 {
		return catalog.AllSections()
	}
	out := make([]catalog.Section, len(c.Sections))
	copy(out, c.Sections)
	return out
}

// LoadCatalog returns the configured catalog, or the built-in one.
func (c *Config) LoadCatalog() (*catalog.Catalog, error) {
	if c.Catalog == "" {
		cat := catalog.Builtin()
		if c.Title != "" {
			cat.Title = c.Title
		}
		return cat, nil
	}
	cat, err := catalog.LoadFile(c.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", c.Catalog, err)
	}
	if c.Title != "" {
		cat.Title = c.Title
	}
	return cat, nil
}
