package provider

import (
	"github.com/viant/roomplanner/genai/llm"
	basecfg "github.com/viant/roomplanner/genai/llm/provider/base"
)

type Options struct {
	Model             string                `yaml:"model,omitempty" json:"model,omitempty"`
	Provider          string                `yaml:"provider,omitempty" json:"provider,omitempty"`
	APIKeyURL         string                `yaml:"apiKeyURL,omitempty" json:"apiKeyURL,omitempty"`
	EnvKey            string                `yaml:"envKey,omitempty" json:"envKey,omitempty"` // environment variable key to use for API key
	URL               string                `yaml:"url,omitempty" json:"url,omitempty"`
	ImageSize         string                `yaml:"imageSize,omitempty" json:"imageSize,omitempty"`
	AspectRatio       string                `yaml:"aspectRatio,omitempty" json:"aspectRatio,omitempty"`
	MediaResolution   string                `yaml:"mediaResolution,omitempty" json:"mediaResolution,omitempty"`
	Temperature       float64               `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	RequestsPerMinute int                   `yaml:"requestsPerMinute,omitempty" json:"requestsPerMinute,omitempty"`
	TimeoutSec        int                   `yaml:"timeoutSec,omitempty" json:"timeoutSec,omitempty"`
	UsageListener     basecfg.UsageListener `yaml:"-" json:"-"`
}

// GenerateOptions returns per-call options derived from the model config.
func (o *Options) GenerateOptions() *llm.Options {
	return &llm.Options{
		ImageSize:       o.ImageSize,
		AspectRatio:     o.AspectRatio,
		MediaResolution: o.MediaResolution,
		Temperature:     o.Temperature,
	}
}
