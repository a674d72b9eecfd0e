package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanboard/cms/internal/auth"
	"github.com/loanboard/cms/internal/config"
	"github.com/loanboard/cms/internal/storage"
)

func TestTokenCommand(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("LOG_CONSOLE", "false")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "--subject", "ops"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())

	claims, err := auth.ParseToken("cli-secret", strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
}

func TestOpenRepositoriesBolt(t *testing.T) {
	cfg := &config.Config{DocumentStore: config.StoreBolt, BoltPath: filepath.Join(t.TempDir(), "cms.db")}

	repos, err := openRepositories(context.Background(), cfg)
	require.NoError(t, err)
	defer repos.close()

	svc := newServices(repos, storage.NewMemoryStorage("http://blobs.test"), 1<<20)
	settings, err := svc.ApplyNow.Get(context.Background(), "usa")
	require.NoError(t, err)
	assert.True(t, settings.IsActive)
}

func TestOpenRepositoriesUnknown(t *testing.T) {
	_, err := openRepositories(context.Background(), &config.Config{DocumentStore: "redis"})
	require.Error(t, err)
}

func TestOpenBlobStoreMemory(t *testing.T) {
	blobs, err := openBlobStore(context.Background(), &config.Config{BlobStore: config.BlobMemory, StoragePublicBase: "http://blobs.test/"})
	require.NoError(t, err)
	assert.Equal(t, "http://blobs.test/bank-logos/a.png", blobs.PublicURL("bank-logos/a.png"))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
