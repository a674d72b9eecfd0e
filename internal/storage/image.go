package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	// ErrNotImage is returned when an upload is not a jpeg, png, gif or webp image.
	ErrNotImage = errors.New("only image files are allowed (jpeg, jpg, png, gif, webp)")

	// ErrTooLarge is returned when an upload exceeds the configured size limit.
	ErrTooLarge = errors.New("file too large")
)

var (
	imageExtensions = map[string]bool{".jpeg": true, ".jpg": true, ".png": true, ".gif": true, ".webp": true}
	imageMIMETypes  = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
)

// Image is an uploaded image held in memory and ready for Upload.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the byte length of the image.
func (img *Image) Size() int64 { return int64(len(img.Data)) }

// Reader returns a fresh reader over the image bytes.
func (img *Image) Reader() io.Reader { return bytes.NewReader(img.Data) }

// ReadImage reads at most maxBytes from r and checks that filename, declaredType and
// the sniffed content all describe an allowed image format.
func ReadImage(filename, declaredType string, r io.Reader, maxBytes int64) (*Image, error) {
	ext := strings.ToLower(path.Ext(filename))
	if !imageExtensions[ext] {
		return nil, ErrNotImage
	}

	if declaredType != "" && !allowedMIME(declaredType) {
		return nil, ErrNotImage
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}

	detected := mimetype.Detect(data)
	if !allowedMIME(detected.String()) {
		return nil, ErrNotImage
	}

	return &Image{
		Filename:    filename,
		ContentType: detected.String(),
		Data:        data,
	}, nil
}

func allowedMIME(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	for _, m := range imageMIMETypes {
		if ct == m {
			return true
		}
	}
	return false
}
