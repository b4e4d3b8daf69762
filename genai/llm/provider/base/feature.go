package base

const (
	IsMultimodal string = "is-multimodal"
	// CanGenerateImages indicates the model returns inline images.
	CanGenerateImages string = "can-generate-images"
	// SupportsContinuationTokens indicates the provider issues opaque
	// continuation tokens (thought signatures) that must be echoed back.
	SupportsContinuationTokens string = "supports-continuation-tokens"
)
