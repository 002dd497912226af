// Copyright 2026 Silver Diamond
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads CLI and example-program settings from a YAML
// file and the SILVERDIAMOND_* environment. The client library itself
// takes plain arguments and options; this package only feeds them.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is everything the CLI needs to build a client.
type Config struct {
	APIKey    string          `mapstructure:"api_key"`
	BaseURL   string          `mapstructure:"base_url"`
	Timeout   string          `mapstructure:"timeout"` // e.g. "30s"; empty means no timeout
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

// RateLimitConfig caps outgoing request rate. Zero RPS disables it.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// LogConfig mirrors pkg/log.Config.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// envKeys are the settings that can come from the environment, as
// SILVERDIAMOND_API_KEY, SILVERDIAMOND_LOG_LEVEL and so on.
var envKeys = []string{
	"api_key", "base_url", "timeout",
	"rate_limit.rps", "rate_limit.burst",
	"log.level", "log.format",
}

// Load reads configuration from path, overlaid by environment
// variables. An empty path skips the file and uses the environment
// alone. An api_key written as ${SOME_VAR} is resolved from the
// environment so keys stay out of config files.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SILVERDIAMOND")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if strings.HasPrefix(cfg.APIKey, "${") {
		envVar := strings.TrimPrefix(strings.TrimSuffix(cfg.APIKey, "}"), "${")
		if val := os.Getenv(envVar); val != "" {
			cfg.APIKey = val
		}
	}

	return &cfg, nil
}

// HTTPTimeout parses the configured timeout. Zero means none.
func (c *Config) HTTPTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parse timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}
