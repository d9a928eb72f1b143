// Package config loads and validates the site configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default directory and layout names used when the configuration omits them.
const (
	DefaultContentDir   = "content"
	DefaultTemplatesDir = "templates"
	DefaultAssetsDir    = "assets"
	DefaultOutputDir    = "public"
	DefaultIndexLayout  = "index"
	DefaultTagLayout    = "tag-index"
)

// Config represents the site configuration (config.yaml).
type Config struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	BaseURL     string `yaml:"base_url,omitempty"`

	ContentDir   string `yaml:"content_dir,omitempty"`
	TemplatesDir string `yaml:"templates_dir,omitempty"`
	AssetsDir    string `yaml:"assets_dir,omitempty"`
	OutputDir    string `yaml:"output_dir,omitempty"`

	// IndexLayout and TagLayout name the templates used for the derived
	// chronological index and per-tag pages.
	IndexLayout string `yaml:"index_layout,omitempty"`
	TagLayout   string `yaml:"tag_layout,omitempty"`

	// FlatOutput renders authored documents to <slug>.html instead of
	// <slug>/index.html.
	FlatOutput bool `yaml:"flat_output,omitempty"`

	// Atom disables the atom.xml feed when set to false explicitly.
	Atom *bool `yaml:"atom,omitempty"`
}

// Load reads the configuration file, expands environment variables in it,
// and applies defaults.
//
// A .env or .env.local file next to the working directory is loaded first
// so that ${VAR} references in the YAML can come from either the process
// environment or a local env file. Existing environment variables win.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with all defaults applied, suitable for
// building without a config file.
func Default(title string) *Config {
	cfg := &Config{Title: title}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = DefaultTemplatesDir
	}
	if c.AssetsDir == "" {
		c.AssetsDir = DefaultAssetsDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.IndexLayout == "" {
		c.IndexLayout = DefaultIndexLayout
	}
	if c.TagLayout == "" {
		c.TagLayout = DefaultTagLayout
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
}

// AtomEnabled reports whether the atom feed should be written. The feed is
// on by default.
func (c *Config) AtomEnabled() bool {
	return c.Atom == nil || *c.Atom
}

// Validate checks the configuration for required values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("config: title is required")
	}
	if c.OutputDir == "." || c.OutputDir == "/" {
		return fmt.Errorf("config: output_dir %q is not allowed", c.OutputDir)
	}
	return nil
}

// Init writes an example configuration file. An existing file is only
// overwritten with force.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Config{
		Title:       "My Blog",
		Description: "Notes and posts",
		BaseURL:     "https://example.com",
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("marshal example config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// loadEnvFiles loads .env then .env.local, first hit wins. Missing files
// are not an error.
func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err == nil {
			fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", name)
			return
		}
	}
}
