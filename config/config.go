// Package config loads the mjstat configuration from an optional config
// file, MJSTAT_* environment variables and command-line flags, in
// ascending order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// TargetAll is the sentinel target meaning "every player in the log".
const TargetAll = "all"

type Config struct {
	Input         string `mapstructure:"input"`
	Encoding      string `mapstructure:"encoding"`
	Target        string `mapstructure:"target"`
	Since         string `mapstructure:"since"`
	Until         string `mapstructure:"until"`
	Fundamental   bool   `mapstructure:"fundamental"`
	YakuFrequency bool   `mapstructure:"yaku"`
	Language      string `mapstructure:"lang"`
	Strict        bool   `mapstructure:"strict"`
	Dump          bool   `mapstructure:"dump"`
	Verbose       bool   `mapstructure:"verbose"`
}

// Load reads the configuration. path may be empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("input", "mjscore.txt")
	v.SetDefault("encoding", "utf-8")
	v.SetDefault("target", TargetAll)
	v.SetDefault("fundamental", true)
	v.SetDefault("lang", "en")

	v.SetEnvPrefix("MJSTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
