package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with yaml tags for writing the default file.
type fileConfig struct {
	BOJ struct {
		BaseURL        string `yaml:"base_url"`
		UserAgent      string `yaml:"user_agent"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"boj"`
	Solvedac struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"solvedac"`
	Run struct {
		Command        []string `yaml:"command"`
		TimeoutSeconds float64  `yaml:"timeout_seconds"`
		MaxOutputBytes int      `yaml:"max_output_bytes"`
	} `yaml:"run"`
	Solution struct {
		Dir       string `yaml:"dir"`
		Extension string `yaml:"extension"`
	} `yaml:"solution"`
}

// WriteDefault writes a config file populated with the defaults to path.
// An existing file is only overwritten when force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	var fc fileConfig
	fc.BOJ.BaseURL = DefaultBOJBaseURL
	fc.BOJ.UserAgent = DefaultUserAgent
	fc.BOJ.TimeoutSeconds = DefaultFetchTimeoutSeconds
	fc.Solvedac.BaseURL = DefaultSolvedacBaseURL
	fc.Run.Command = []string{"python3"}
	fc.Run.TimeoutSeconds = DefaultRunTimeoutSeconds
	fc.Run.MaxOutputBytes = DefaultMaxOutputBytes
	fc.Solution.Dir = "."
	fc.Solution.Extension = ".py"

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
