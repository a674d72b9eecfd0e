package storage

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage("https://files.example.com/")

	require.NoError(t, s.Upload(ctx, "bank-logos/a.png", bytes.NewReader(pngBytes), int64(len(pngBytes)), "image/png"))
	assert.True(t, s.Has("bank-logos/a.png"))
	assert.Equal(t, "https://files.example.com/bank-logos/a.png", s.PublicURL("bank-logos/a.png"))

	key, ok := s.KeyFromURL(s.PublicURL("bank-logos/a.png"))
	require.True(t, ok)
	assert.Equal(t, "bank-logos/a.png", key)

	require.Error(t, s.Upload(ctx, "bank-logos/b.png", bytes.NewReader(pngBytes), 1, "image/png"))

	require.NoError(t, s.Delete(ctx, "bank-logos/a.png"))
	require.NoError(t, s.Delete(ctx, "bank-logos/a.png"))
	assert.Equal(t, 0, s.Len())
}
