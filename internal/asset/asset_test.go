package asset

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/roomplanner/genai/llm"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestService_Load(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	testCases := []struct {
		name       string
		url        string
		data       []byte
		expectMime string
		expectErr  bool
	}{
		{name: "png by extension", url: "mem://localhost/assets/plan.png", data: pngHeader, expectMime: "image/png"},
		{name: "png by content", url: "mem://localhost/assets/plan", data: pngHeader, expectMime: "image/png"},
		{name: "jpeg by extension", url: "mem://localhost/assets/room.JPG", data: []byte{0xFF, 0xD8, 0xFF}, expectMime: "image/jpeg"},
		{name: "text is rejected", url: "mem://localhost/assets/notes.txt", data: []byte("hello"), expectErr: true},
		{name: "missing file", url: "mem://localhost/assets/missing.png", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.data != nil {
				require.NoError(t, fs.Upload(ctx, tc.url, file.DefaultFileOsMode, bytes.NewReader(tc.data)))
			}
			image, err := New(fs).Load(ctx, tc.url)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tc.expectMime, image.MimeType)
			assert.EqualValues(t, tc.data, image.Data)
		})
	}
}

func TestService_Save(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	srv := New(fs)

	dest, err := srv.Save(ctx, "mem://localhost/out", "session-1", &llm.ImageSegment{Data: pngHeader, MimeType: "image/png"})
	require.NoError(t, err)
	assert.EqualValues(t, "mem://localhost/out/session-1.png", dest)
	data, err := fs.DownloadWithURL(ctx, dest)
	require.NoError(t, err)
	assert.EqualValues(t, pngHeader, data)

	_, err = srv.Save(ctx, "mem://localhost/out", "empty", nil)
	assert.Error(t, err)
}

func TestExtension(t *testing.T) {
	assert.EqualValues(t, ".jpg", Extension("image/jpeg"))
	assert.EqualValues(t, ".bin", Extension("application/octet-stream"))
}
