// Package config loads bojctl configuration.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// Config holds all bojctl configuration.
type Config struct {
	BOJ      BOJConfig      `mapstructure:"boj"`
	Solvedac SolvedacConfig `mapstructure:"solvedac"`
	Run      RunConfig      `mapstructure:"run"`
	Solution SolutionConfig `mapstructure:"solution"`
}

// BOJConfig holds problem page fetch settings.
type BOJConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// SolvedacConfig holds solved.ac API settings.
type SolvedacConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// RunConfig holds candidate execution settings.
type RunConfig struct {
	// Command is the interpreter argv prefix; the solution file path is
	// appended when a candidate is executed.
	Command        []string `mapstructure:"command"`
	TimeoutSeconds float64  `mapstructure:"timeout_seconds"`
	MaxOutputBytes int      `mapstructure:"max_output_bytes"`
}

// SolutionConfig holds solution file settings.
type SolutionConfig struct {
	Dir       string `mapstructure:"dir"`
	Extension string `mapstructure:"extension"`
}

// LoadConfigWithFile loads configuration from a specific file if provided,
// otherwise falls back to LoadConfig with the working directory.
func LoadConfigWithFile(workDir, configFile string) (*Config, error) {
	if configFile != "" {
		return LoadConfigFromPath(configFile)
	}
	return LoadConfig(workDir)
}

// LoadConfig loads configuration from bojctl.yaml in the given directory.
// If no config file exists, defaults are returned.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("bojctl")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFromPath loads configuration from a specific file path.
// A missing file yields defaults.
func LoadConfigFromPath(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			if err := v.Unmarshal(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults sets all default values for configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("boj.base_url", DefaultBOJBaseURL)
	v.SetDefault("boj.user_agent", DefaultUserAgent)
	v.SetDefault("boj.timeout_seconds", DefaultFetchTimeoutSeconds)

	v.SetDefault("solvedac.base_url", DefaultSolvedacBaseURL)

	v.SetDefault("run.command", []string{"python3"})
	v.SetDefault("run.timeout_seconds", DefaultRunTimeoutSeconds)
	v.SetDefault("run.max_output_bytes", DefaultMaxOutputBytes)

	v.SetDefault("solution.dir", ".")
	v.SetDefault("solution.extension", ".py")
}
