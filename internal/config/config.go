package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/viant/afs"
	"github.com/viant/roomplanner/genai/llm"
	"github.com/viant/roomplanner/genai/llm/provider"
	"github.com/viant/roomplanner/genai/planner"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModelID   = "room-planner"
	DefaultModel     = "gemini-3-pro-image-preview"
	DefaultOutputURL = "output"
)

// Config is the room planner configuration.
type Config struct {
	Model     *provider.Config `yaml:"model" json:"model"`
	Prompts   planner.Prompts  `yaml:"prompts,omitempty" json:"prompts,omitempty"`
	OutputURL string           `yaml:"outputURL,omitempty" json:"outputURL,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	ret := &Config{}
	ret.Init()
	return ret
}

// Init fills in defaults.
func (c *Config) Init() {
	if c.Model == nil {
		c.Model = &provider.Config{}
	}
	if c.Model.ID == "" {
		c.Model.ID = DefaultModelID
	}
	options := &c.Model.Options
	if options.Provider == "" {
		options.Provider = provider.ProviderGeminiAI
	}
	if options.Model == "" {
		options.Model = DefaultModel
	}
	if options.MediaResolution == "" {
		options.MediaResolution = llm.MediaResolutionHigh
	}
	if options.TimeoutSec == 0 {
		options.TimeoutSec = int((5 * time.Minute).Seconds())
	}
	if c.OutputURL == "" {
		c.OutputURL = DefaultOutputURL
	}
}

// Validate checks provider and resolution values.
func (c *Config) Validate() error {
	switch c.Model.Options.Provider {
	case provider.ProviderGeminiAI, provider.ProviderGoogleAI:
	default:
		return fmt.Errorf("unsupported provider: %v", c.Model.Options.Provider)
	}
	switch c.Model.Options.MediaResolution {
	case llm.MediaResolutionLow, llm.MediaResolutionMedium, llm.MediaResolutionHigh:
	default:
		return fmt.Errorf("unsupported media resolution: %v", c.Model.Options.MediaResolution)
	}
	if c.Model.Options.RequestsPerMinute < 0 {
		return fmt.Errorf("requestsPerMinute must not be negative")
	}
	return nil
}

// Load reads a YAML config from URL; an empty URL yields defaults.
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	ret := &Config{}
	if URL != "" {
		data, err := fs.DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
		}
		if err = yaml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
		}
	}
	ret.Init()
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// LoadEnv loads .env files into the process environment; missing files are ignored.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	var existing []string
	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			existing = append(existing, name)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}
