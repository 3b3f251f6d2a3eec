package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	OutputMarkdown = "markdown"
	OutputDoc      = "doc"
)

type Config struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	Output       string `yaml:"output"`       // "markdown" or "doc"
	OutputPath   string `yaml:"output_path"`  // markdown only
	DocTitle     string `yaml:"doc_title"`    // doc only
	Emoji        bool   `yaml:"emoji"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return FromEnvFallback(), err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return FromEnvFallback(), err
	}
	c.ApplyEnvOverrides()
	return &c, nil
}

func FromEnvFallback() *Config {
	c := &Config{
		Output: OutputMarkdown,
		Emoji:  true,
	}
	c.ApplyEnvOverrides()
	return c
}

func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("DRIVETOC_CLIENT_ID"); v != "" {
		c.ClientID = v
	}
	if v := os.Getenv("DRIVETOC_CLIENT_SECRET"); v != "" {
		c.ClientSecret = v
	}
	if v := os.Getenv("DRIVETOC_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("DRIVETOC_OUTPUT_PATH"); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv("DRIVETOC_DOC_TITLE"); v != "" {
		c.DocTitle = v
	}
	if v := os.Getenv("DRIVETOC_EMOJI"); v != "" {
		c.Emoji = v == "1" || v == "true" || v == "yes"
	}
}

func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("client_id is required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("client_secret is required")
	}
	if c.Output == "" {
		c.Output = OutputMarkdown
	}
	if c.Output != OutputMarkdown && c.Output != OutputDoc {
		return fmt.Errorf("output must be %q or %q, got %q", OutputMarkdown, OutputDoc, c.Output)
	}
	if c.Output == OutputMarkdown && c.OutputPath == "" {
		c.OutputPath = "outline.md"
	}
	return nil
}
