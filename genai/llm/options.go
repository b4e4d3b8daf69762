package llm

// Options tune a single generate call.
type Options struct {
	// ResponseModalities lists the output kinds requested from the model,
	// e.g. TEXT and IMAGE.
	ResponseModalities []string `json:"responseModalities,omitempty" yaml:"responseModalities,omitempty"`

	// ImageSize is the requested output resolution (1K, 2K, 4K).
	ImageSize string `json:"imageSize,omitempty" yaml:"imageSize,omitempty"`

	// AspectRatio is the requested output aspect ratio, e.g. 16:9.
	AspectRatio string `json:"aspectRatio,omitempty" yaml:"aspectRatio,omitempty"`

	// MediaResolution is the resolution hint attached to every inline image.
	MediaResolution string `json:"mediaResolution,omitempty" yaml:"mediaResolution,omitempty"`

	// Temperature is the temperature for sampling, between 0 and 2.
	Temperature float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
}

const (
	ModalityText  = "TEXT"
	ModalityImage = "IMAGE"

	MediaResolutionLow    = "MEDIA_RESOLUTION_LOW"
	MediaResolutionMedium = "MEDIA_RESOLUTION_MEDIUM"
	MediaResolutionHigh   = "MEDIA_RESOLUTION_HIGH"
)

// Modalities returns configured modalities or TEXT+IMAGE when none were set.
func (o *Options) Modalities() []string {
	if o == nil || len(o.ResponseModalities) == 0 {
		return []string{ModalityText, ModalityImage}
	}
	return o.ResponseModalities
}
