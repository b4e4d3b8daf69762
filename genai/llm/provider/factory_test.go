package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/roomplanner/genai/llm"
	"github.com/viant/roomplanner/genai/llm/provider/gemini"
)

func TestFactory_CreateModel(t *testing.T) {
	testCases := []struct {
		name          string
		env           map[string]string
		options       *Options
		expectKey     string
		expectMissing bool
		expectErr     bool
	}{
		{
			name:      "custom env key wins",
			env:       map[string]string{"PLANNER_KEY": "custom", "GEMINI_API_KEY": "default"},
			options:   &Options{Provider: ProviderGeminiAI, Model: "m", EnvKey: "PLANNER_KEY"},
			expectKey: "custom",
		},
		{
			name:      "gemini env fallback",
			env:       map[string]string{"GEMINI_API_KEY": "default"},
			options:   &Options{Provider: ProviderGeminiAI, Model: "m", EnvKey: "PLANNER_KEY"},
			expectKey: "default",
		},
		{
			name:      "api key fallback",
			env:       map[string]string{"API_KEY": "plain"},
			options:   &Options{Provider: ProviderGeminiAI, Model: "m"},
			expectKey: "plain",
		},
		{
			name:          "no credential",
			env:           map[string]string{},
			options:       &Options{Provider: ProviderGeminiAI, Model: "m"},
			expectMissing: true,
		},
		{
			name:          "no credential sdk",
			env:           map[string]string{},
			options:       &Options{Provider: ProviderGoogleAI, Model: "m"},
			expectMissing: true,
		},
		{
			name:      "unsupported provider",
			env:       map[string]string{"API_KEY": "plain"},
			options:   &Options{Provider: "bedrock/claude"},
			expectErr: true,
		},
		{
			name:      "empty provider",
			options:   &Options{},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			factory := New()
			factory.lookup = func(key string) (string, bool) {
				value, ok := tc.env[key]
				return value, ok
			}
			model, err := factory.CreateModel(context.Background(), tc.options)
			if tc.expectMissing {
				assert.True(t, errors.Is(err, llm.ErrMissingCredential))
				return
			}
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			client, ok := model.(*gemini.Client)
			require.True(t, ok)
			assert.EqualValues(t, tc.expectKey, client.APIKey)
		})
	}
}

func TestConfigs_Find(t *testing.T) {
	configs := Configs{{ID: "a"}, {ID: "b"}}
	assert.EqualValues(t, "b", configs.Find("b").ID)
	assert.Nil(t, configs.Find("c"))
}
