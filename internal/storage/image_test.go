package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
	gifBytes  = append([]byte("GIF89a"), make([]byte, 32)...)
	jpegBytes = append([]byte{0xff, 0xd8, 0xff, 0xe0}, make([]byte, 32)...)
	webpBytes = append([]byte("RIFF\x24\x00\x00\x00WEBPVP8 "), make([]byte, 32)...)
)

func TestReadImage(t *testing.T) {
	testCases := []struct {
		name         string
		filename     string
		declaredType string
		data         []byte
		max          int64
		wantType     string
		wantErr      error
	}{
		{name: "png", filename: "logo.png", declaredType: "image/png", data: pngBytes, max: 1024, wantType: "image/png"},
		{name: "gif", filename: "logo.GIF", declaredType: "image/gif", data: gifBytes, max: 1024, wantType: "image/gif"},
		{name: "jpeg with jpg extension", filename: "logo.jpg", declaredType: "image/jpeg", data: jpegBytes, max: 1024, wantType: "image/jpeg"},
		{name: "webp", filename: "logo.webp", declaredType: "image/webp", data: webpBytes, max: 1024, wantType: "image/webp"},
		{name: "no declared type", filename: "logo.png", data: pngBytes, max: 1024, wantType: "image/png"},
		{name: "wrong extension", filename: "logo.pdf", declaredType: "image/png", data: pngBytes, max: 1024, wantErr: ErrNotImage},
		{name: "no extension", filename: "logo", declaredType: "image/png", data: pngBytes, max: 1024, wantErr: ErrNotImage},
		{name: "declared pdf", filename: "logo.png", declaredType: "application/pdf", data: pngBytes, max: 1024, wantErr: ErrNotImage},
		{name: "text posing as png", filename: "logo.png", declaredType: "image/png", data: []byte("hello world"), max: 1024, wantErr: ErrNotImage},
		{name: "too large", filename: "logo.png", declaredType: "image/png", data: pngBytes, max: 10, wantErr: ErrTooLarge},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img, err := ReadImage(tc.filename, tc.declaredType, bytes.NewReader(tc.data), tc.max)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, img.ContentType)
			assert.Equal(t, int64(len(tc.data)), img.Size())
			assert.Equal(t, tc.filename, img.Filename)
		})
	}
}

func TestReadImageExactLimit(t *testing.T) {
	img, err := ReadImage("logo.png", "image/png", bytes.NewReader(pngBytes), int64(len(pngBytes)))
	require.NoError(t, err)
	assert.Equal(t, int64(len(pngBytes)), img.Size())
}

func TestNewObjectKey(t *testing.T) {
	key := NewObjectKey(BankLogoFolder, "My Logo.PNG")

	assert.True(t, strings.HasPrefix(key, "bank-logos/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.NotContains(t, key, "-")
	assert.Len(t, strings.TrimSuffix(strings.TrimPrefix(key, "bank-logos/"), ".png"), 32)
	assert.NotEqual(t, key, NewObjectKey(BankLogoFolder, "My Logo.PNG"))
}

func TestKeyFromURL(t *testing.T) {
	base := "http://localhost:9000/loanboard"

	testCases := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{name: "own base", url: base + "/bank-logos/abc.png", wantKey: "bank-logos/abc.png", wantOK: true},
		{name: "foreign host", url: "https://cdn.example.com/x/y/bank-logos/abc.png", wantKey: "bank-logos/abc.png", wantOK: true},
		{name: "single segment", url: "https://cdn.example.com/abc.png", wantKey: "abc.png", wantOK: true},
		{name: "empty", url: "", wantOK: false},
		{name: "base only", url: base + "/", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, ok := keyFromURL(base, tc.url)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantKey, key)
			}
		})
	}
}
