package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port int `koanf:"port"`
	} `koanf:"server"`

	Diff struct {
		Context  int  `koanf:"context"`
		Collapse bool `koanf:"collapse"`
	} `koanf:"diff"`

	Output struct {
		Format string `koanf:"format"`
	} `koanf:"output"`
}

// LoadConfig loads the configuration: built-in defaults, then a TOML file,
// then DIFFSIGHT_* environment variables, later layers overriding earlier
// ones.
func LoadConfig(configPath string) (*Config, error) {
	var k = koanf.New(".")

	k.Load(confmap.Provider(map[string]interface{}{
		"server.port":   8811,
		"diff.context":  3,
		"diff.collapse": true,
		"output.format": "pretty",
	}, "."), nil)

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		defaultPaths := []string{"./diffsight.toml", "$HOME/.diffsight.toml"}
		for _, path := range defaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	k.Load(env.Provider("DIFFSIGHT_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "DIFFSIGHT_")), "_", ".", -1)
	}), nil)

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &config, nil
}

// InitConfig initializes a new configuration file
func InitConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	sampleConfig := `# diffsight configuration

[server]
port = 8811

[diff]
# Unchanged lines kept visible around each change when collapsing.
context = 3
collapse = true

[output]
# pretty or json
format = "pretty"
`

	return os.WriteFile(configPath, []byte(sampleConfig), 0644)
}

// Validate validates the configuration
func Validate(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", config.Server.Port)
	}

	if config.Diff.Context < 0 {
		return fmt.Errorf("diff context must be non-negative, got %d", config.Diff.Context)
	}

	switch config.Output.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("output format must be pretty or json, got %q", config.Output.Format)
	}

	return nil
}
