package provider

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/viant/roomplanner/genai/llm"
	"github.com/viant/roomplanner/genai/llm/provider/gemini"
	"github.com/viant/roomplanner/genai/llm/provider/googleai"
	"github.com/viant/scy/cred/secret"
)

type Factory struct {
	secrets *secret.Service
	lookup  func(key string) (string, bool)
}

// CreateModel creates a new language model instance. It returns
// llm.ErrMissingCredential when no API key can be resolved.
func (f *Factory) CreateModel(ctx context.Context, options *Options) (llm.Model, error) {
	if options.Provider == "" {
		return nil, fmt.Errorf("provider was empty")
	}
	timeout := time.Duration(options.TimeoutSec) * time.Second
	switch options.Provider {
	case ProviderGeminiAI:
		apiKey, err := f.apiKey(ctx, options)
		if err != nil {
			return nil, err
		}
		return gemini.NewClient(apiKey, options.Model,
			gemini.WithBaseURL(options.URL),
			gemini.WithTimeout(timeout),
			gemini.WithRequestsPerMinute(options.RequestsPerMinute),
			gemini.WithUsageListener(options.UsageListener)), nil
	case ProviderGoogleAI:
		apiKey, err := f.apiKey(ctx, options)
		if err != nil {
			return nil, err
		}
		return googleai.NewClient(ctx, apiKey, options.Model,
			googleai.WithTimeout(timeout),
			googleai.WithRequestsPerMinute(options.RequestsPerMinute),
			googleai.WithUsageListener(options.UsageListener))
	default:
		return nil, fmt.Errorf("unsupported provider: %v", options.Provider)
	}
}

// apiKey resolves the credential: secret URL first, then the configured
// environment variable, then the default ones.
func (f *Factory) apiKey(ctx context.Context, options *Options) (string, error) {
	if options.APIKeyURL != "" {
		key, err := f.secrets.GeyKey(ctx, options.APIKeyURL)
		if err != nil {
			return "", fmt.Errorf("failed to load API key from %v: %w", options.APIKeyURL, err)
		}
		if key != nil && key.Secret != "" {
			return key.Secret, nil
		}
	}
	envKeys := defaultEnvKeys
	if options.EnvKey != "" {
		envKeys = append([]string{options.EnvKey}, defaultEnvKeys...)
	}
	for _, envKey := range envKeys {
		if value, ok := f.lookup(envKey); ok && value != "" {
			return value, nil
		}
	}
	return "", llm.ErrMissingCredential
}

func New() *Factory {
	return &Factory{secrets: secret.New(), lookup: os.LookupEnv}
}
