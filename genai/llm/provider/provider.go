package provider

const (
	// ProviderGeminiAI identifies the Gemini REST API
	ProviderGeminiAI = "gemini"

	// ProviderGoogleAI identifies the Gemini API accessed through the Google GenAI SDK
	ProviderGoogleAI = "googleai"
)

// Fallback environment variables consulted for the API key.
var defaultEnvKeys = []string{"GEMINI_API_KEY", "API_KEY"}
