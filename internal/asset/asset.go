// Package asset loads subject images and stores generated ones through afs,
// so any registered storage scheme (file, mem, gs, s3) can be used.
package asset

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/roomplanner/genai/llm"
)

var supported = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/heic": ".heic",
	"image/heif": ".heif",
}

// Service reads and writes images.
type Service struct {
	fs afs.Service
}

// Load downloads the image at URL and detects its MIME type.
func (s *Service) Load(ctx context.Context, URL string) (*llm.ImageSegment, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %v: %w", URL, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image %v is empty", URL)
	}
	mimeType := MimeType(URL, data)
	if _, ok := supported[mimeType]; !ok {
		return nil, fmt.Errorf("unsupported image type %q: %v", mimeType, URL)
	}
	return &llm.ImageSegment{Data: data, MimeType: mimeType}, nil
}

// Save uploads image as baseURL/name with an extension matching its MIME type
// and returns the destination URL.
func (s *Service) Save(ctx context.Context, baseURL, name string, image *llm.ImageSegment) (string, error) {
	if image == nil || len(image.Data) == 0 {
		return "", fmt.Errorf("image was empty")
	}
	dest := url.Join(baseURL, name+Extension(image.MimeType))
	if err := s.fs.Upload(ctx, dest, file.DefaultFileOsMode, bytes.NewReader(image.Data)); err != nil {
		return "", fmt.Errorf("failed to save image %v: %w", dest, err)
	}
	return dest, nil
}

// MimeType resolves the MIME type by extension, falling back to content sniffing.
func MimeType(URL string, data []byte) string {
	if ext := strings.ToLower(path.Ext(url.Path(URL))); ext != "" {
		if mimeType := mime.TypeByExtension(ext); mimeType != "" {
			if idx := strings.Index(mimeType, ";"); idx != -1 {
				mimeType = mimeType[:idx]
			}
			if _, ok := supported[mimeType]; ok {
				return mimeType
			}
		}
	}
	mimeType := http.DetectContentType(data)
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = mimeType[:idx]
	}
	return mimeType
}

// Extension returns the file extension for mimeType.
func Extension(mimeType string) string {
	if ext, ok := supported[mimeType]; ok {
		return ext
	}
	return ".bin"
}

// New creates an asset service.
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}
