package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Summarization SummarizationConfig `yaml:"summarization"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Paths         PathsConfig         `yaml:"paths"`
	Logging       LoggingConfig       `yaml:"logging"`
	Performance   PerformanceConfig   `yaml:"performance"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type SummarizationConfig struct {
	// UseMock selects the deterministic generator instead of the
	// Gemini API. Fixed for the lifetime of the process.
	UseMock                 bool `yaml:"use_mock"`
	TimelineIntervalSeconds int  `yaml:"timeline_interval_seconds"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type PathsConfig struct {
	// Inbox enables drop-folder mode when set: meeting transcript
	// JSON files placed there are summarized into Summaries.
	Inbox     string `yaml:"inbox"`
	Summaries string `yaml:"summaries"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.Summarization.TimelineIntervalSeconds < 0 {
		return fmt.Errorf("summarization.timeline_interval_seconds must be positive")
	}
	if !c.Summarization.UseMock && len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required when summarization.use_mock is false")
	}
	if c.Paths.Inbox != "" && c.Paths.Summaries == "" {
		return fmt.Errorf("paths.summaries is required when paths.inbox is set")
	}

	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Summarization.TimelineIntervalSeconds == 0 {
		c.Summarization.TimelineIntervalSeconds = 300
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
