package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for a config file unless told otherwise.
const DefaultPath = "iconsmith.yaml"

// Config represents the tool configuration
type Config struct {
	Source string      `yaml:"source"`
	Output string      `yaml:"output"`
	Atomic bool        `yaml:"atomic"`
	Icons  IconsConfig `yaml:"icons"`
}

// IconsConfig holds the icon sets to generate. The launcher table is always
// populated (defaults below); the web icon size lists are empty by default
// and each set is skipped when its list is empty.
type IconsConfig struct {
	Launcher        []LauncherEntry `yaml:"launcher"`
	FaviconSizes    []int           `yaml:"favicon_sizes"`
	AppleTouchSizes []int           `yaml:"apple_touch_sizes"`
	WebIconSizes    []int           `yaml:"web_icon_sizes"`
}

// LauncherEntry maps a density-bucket directory name to a square edge length
// in pixels. Entries are processed in table order.
type LauncherEntry struct {
	Label string `yaml:"label"`
	Size  int    `yaml:"size"`
}

// Default returns the configuration used when no file or overrides are given:
// the standard five-density Android launcher table.
func Default() *Config {
	return &Config{
		Source: "assets/images/app_logo.png",
		Output: "android/app/src/main/res",
		Icons: IconsConfig{
			Launcher: []LauncherEntry{
				{Label: "mipmap-mdpi", Size: 48},
				{Label: "mipmap-hdpi", Size: 72},
				{Label: "mipmap-xhdpi", Size: 96},
				{Label: "mipmap-xxhdpi", Size: 144},
				{Label: "mipmap-xxxhdpi", Size: 192},
			},
		},
	}
}

// Load reads and parses the configuration file over the defaults. A missing
// file is not an error: the defaults apply unchanged. ICONSMITH_SOURCE and
// ICONSMITH_OUTPUT environment variables (including values from a .env file)
// override both.
func Load(path string) (*Config, error) {
	// Make .env values visible to the ICONSMITH_* overrides below.
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if v := os.Getenv("ICONSMITH_SOURCE"); v != "" {
		cfg.Source = v
	}
	if v := os.Getenv("ICONSMITH_OUTPUT"); v != "" {
		cfg.Output = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration fields are set
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}

	total := len(c.Icons.Launcher) + len(c.Icons.FaviconSizes) +
		len(c.Icons.AppleTouchSizes) + len(c.Icons.WebIconSizes)
	if total == 0 {
		return fmt.Errorf("no icon sizes configured")
	}

	seen := make(map[string]bool)
	for i, entry := range c.Icons.Launcher {
		if entry.Label == "" {
			return fmt.Errorf("icons.launcher[%d]: label is required", i)
		}
		if entry.Size <= 0 {
			return fmt.Errorf("icons.launcher[%d] (%s): size must be positive, got %d", i, entry.Label, entry.Size)
		}
		if seen[entry.Label] {
			return fmt.Errorf("icons.launcher: duplicate label %q", entry.Label)
		}
		seen[entry.Label] = true
	}

	lists := map[string][]int{
		"favicon_sizes":     c.Icons.FaviconSizes,
		"apple_touch_sizes": c.Icons.AppleTouchSizes,
		"web_icon_sizes":    c.Icons.WebIconSizes,
	}
	for name, sizes := range lists {
		for _, size := range sizes {
			if size <= 0 {
				return fmt.Errorf("icons.%s: size must be positive, got %d", name, size)
			}
		}
	}

	return nil
}
