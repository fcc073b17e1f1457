package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/legend.yaml
var defaultYAML []byte

const fileName = "legend.yaml"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: Display{Width: 320, Height: 200, Scale: 2},
		Assets: Assets{
			Root:       ".",
			Palette:    "palette.dat",
			NarrowFont: "ascii.fnt",
			WideFont:   "big5.fnt",
		},
		Colors: Colors{
			Text:       "#fcfcfc",
			Shadow:     "#000000",
			Background: "#000000",
		},
		Animation: Animation{FPS: 10},
		LogLevel:  "warn",
	}
}

// Load reads the configuration. Fields missing from the file keep their
// defaults.
// Search order: customPath -> ~/.legend/legend.yaml -> ./legend.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		cfg = Default()
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(), fileName} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		return candidate, candidate.Validate()
	}

	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".legend", fileName)
}
