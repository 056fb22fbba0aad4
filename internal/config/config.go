// Package config loads server tunables from an embedded JSON default
// document, with environment-variable overrides, in the same
// embed-plus-override shape the teacher uses for its own Server/Game/Net
// config groups.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// GoldConfig holds the gold-distribution constants from spec.md §4.4.
type GoldConfig struct {
	MinPiles int `json:"minPiles"`
	MaxPiles int `json:"maxPiles"`
	Total    int `json:"total"`
}

// PlayerConfig holds player-identity and capacity limits.
type PlayerConfig struct {
	MaxNameLength int `json:"maxNameLength"`
	MaxPlayers    int `json:"maxPlayers"`
}

// NetConfig holds transport and rate-limiting tunables.
type NetConfig struct {
	Port           int     `json:"port"`
	MetricsPort    int     `json:"metricsPort"`
	RateLimitRPS   float64 `json:"rateLimitRPS"`
	RateLimitBurst int     `json:"rateLimitBurst"`
}

// LogConfig holds logging verbosity.
type LogConfig struct {
	Level string `json:"level"`
}

// Config is the full set of server tunables.
type Config struct {
	Gold   GoldConfig   `json:"gold"`
	Player PlayerConfig `json:"player"`
	Net    NetConfig    `json:"net"`
	Log    LogConfig    `json:"log"`
}

// envOverrides maps NUGGETS_* environment variables onto Config fields.
// Only operational tunables an operator would plausibly want to flip at
// deploy time are exposed this way; the gold constants are part of the
// protocol's documented behavior and are deliberately not overridable.
var envOverrides = []struct {
	name  string
	apply func(c *Config, v string) error
}{
	{"NUGGETS_PORT", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Net.Port = n
		return nil
	}},
	{"NUGGETS_METRICS_PORT", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Net.MetricsPort = n
		return nil
	}},
	{"NUGGETS_RATE_LIMIT_RPS", func(c *Config, v string) error {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		c.Net.RateLimitRPS = n
		return nil
	}},
	{"NUGGETS_LOG_LEVEL", func(c *Config, v string) error {
		c.Log.Level = v
		return nil
	}},
}

// Load parses the embedded defaults document and applies any matching
// environment-variable overrides.
func Load() (*Config, error) {
	var c Config
	if err := json.Unmarshal(defaultsJSON, &c); err != nil {
		return nil, fmt.Errorf("config: parse embedded defaults: %w", err)
	}
	for _, o := range envOverrides {
		v, ok := os.LookupEnv(o.name)
		if !ok {
			continue
		}
		if err := o.apply(&c, v); err != nil {
			return nil, fmt.Errorf("config: %s=%q: %w", o.name, v, err)
		}
	}
	return &c, nil
}
