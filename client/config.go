package client

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML client configuration
type Config struct {
	User     string `yaml:"user"`
	Passcode string `yaml:"passcode"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Filter   string `yaml:"filter"`
}

// LoadConfig reads a client configuration file, filling in the connection
// defaults for anything left out
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:   DefaultHost,
		Port:   DefaultPort,
		Filter: DefaultFilter,
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}

	if cfg.User == "" {
		return nil, fmt.Errorf("config %s has no user callsign", path)
	}

	return cfg, nil
}

// NewFromConfig builds a client out of a loaded configuration
func NewFromConfig(cfg *Config, handler Handler, options ...Option) *Client {
	options = append([]Option{
		WithHost(cfg.Host, cfg.Port),
		WithFilter(cfg.Filter),
	}, options...)
	return NewClient(cfg.User, cfg.Passcode, handler, options...)
}
