package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DEFAULT []byte

func readFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch filepath.Ext(path) {
	case ".json":
		return json.Unmarshal(data, config)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, config)
	}

	return fmt.Errorf("%s is not in a valid format", path)
}

// Process reads the provided configuration files in order, each overriding
// the settings of the previous ones, starting from the embedded default
// configuration. The result is validated before being returned.
func Process(configPaths []string) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(DEFAULT, &config); err != nil {
		return nil, fmt.Errorf("invalid default config: %v", err)
	}

	for _, path := range configPaths {
		if err := readFile(&config, path); err != nil {
			return nil, fmt.Errorf("failed to read %s: %v", path, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings under which the game cannot place the coin (or
// players) legally. These are configuration defects and fatal at startup.
func (c *Config) Validate() error {
	server := c.Server

	if server.Field.Width <= 0 || server.Field.Height <= 0 {
		return fmt.Errorf(
			"field dimensions must be positive, got %gx%g",
			server.Field.Width,
			server.Field.Height,
		)
	}

	if server.Coin.Footprint < 0 ||
		server.Coin.Footprint >= server.Field.Width ||
		server.Coin.Footprint >= server.Field.Height {
		return fmt.Errorf(
			"coin footprint %g does not fit a %gx%g field",
			server.Coin.Footprint,
			server.Field.Width,
			server.Field.Height,
		)
	}

	if server.Coin.Sprites < 1 {
		return fmt.Errorf("coin sprite set is empty")
	}

	if server.Coin.Value < 1 {
		return fmt.Errorf("coin value must be positive, got %d", server.Coin.Value)
	}

	if server.Ingress.Web.Port < 1 || server.Ingress.Web.Port > 65535 {
		return fmt.Errorf("invalid web ingress port %d", server.Ingress.Web.Port)
	}

	return nil
}
