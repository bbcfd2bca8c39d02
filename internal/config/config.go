// Package config loads the folio.json project configuration.
//
// The file is optional; every field has a default, and commands fall back
// to Default() when no folio.json is found in the working directory or any
// parent.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FileName is the name of the configuration file.
	FileName = "folio.json"

	// DefaultPort is the default dev server port.
	DefaultPort = 3000

	// DefaultHost is the default dev server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultAssets is the default static assets directory.
	DefaultAssets = "assets"
)

// PublishConfig configures S3 publishing.
type PublishConfig struct {
	// Bucket is the destination S3 bucket. Required for publish.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix under which the site is uploaded.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket's AWS region.
	Region string `json:"region,omitempty"`
}

// Config represents the complete folio.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Title is the document title of the rendered page.
	Title string `json:"title,omitempty"`

	// Owner is the site owner's display name.
	Owner string `json:"owner,omitempty"`

	// Tagline is the hero tagline.
	Tagline string `json:"tagline,omitempty"`

	// Host is the dev server bind host.
	Host string `json:"host,omitempty"`

	// Port is the dev server port.
	Port int `json:"port,omitempty"`

	// Output is the build output directory.
	Output string `json:"output,omitempty"`

	// Assets is the static assets directory served under /assets/.
	Assets string `json:"assets,omitempty"`

	// Publish configures S3 publishing.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores where the config was loaded from.
	configPath string
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		Name:   "folio",
		Host:   DefaultHost,
		Port:   DefaultPort,
		Output: DefaultOutput,
		Assets: DefaultAssets,
	}
}

// applyDefaults fills unset fields.
func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "folio"
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Assets == "" {
		c.Assets = DefaultAssets
	}
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string { return c.configPath }

// Addr returns the host:port address for the dev server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads and parses a folio.json file, applying defaults to unset
// fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.configPath = path
	cfg.applyDefaults()
	return &cfg, nil
}

// Find searches dir and its parents for a folio.json file. It returns the
// path, or "" when no config file exists.
func Find(dir string) string {
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadOrDefault loads the nearest folio.json at or above dir, falling back
// to Default() when none exists.
func LoadOrDefault(dir string) (*Config, error) {
	path := Find(dir)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
