// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup:
// MinioStorage works with any S3-compatible provider, S3Storage talks to AWS S3 through aws-sdk-go-v2.
package storage

import (
	"context"
	"io"
	"net/url"
	"strings"
)

// Storage is the interface for uploading and removing objects.
type Storage interface {
	// Upload streams data to the store under the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Delete removes an object identified by key.
	Delete(ctx context.Context, key string) error
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
	// KeyFromURL recovers the object key from a URL produced by PublicURL.
	KeyFromURL(rawURL string) (string, bool)
}

// keyFromURL strips publicBase from rawURL. URLs from another base fall back to the
// last two path segments ("folder/file.ext"), the layout every upload key uses.
func keyFromURL(publicBase, rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}

	if publicBase != "" && strings.HasPrefix(rawURL, publicBase+"/") {
		key := strings.TrimPrefix(rawURL, publicBase+"/")
		return key, key != ""
	}

	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}

	var segments []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	switch len(segments) {
	case 0:
		return "", false
	case 1:
		return segments[0], true
	default:
		return strings.Join(segments[len(segments)-2:], "/"), true
	}
}
