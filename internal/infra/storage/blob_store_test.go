package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestImageStore(t *testing.T) (*blobImageStore, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Images = &config.ImagesConfig{
		BucketURL:     "file://" + dir,
		PublicBaseURL: "https://cdn.example.com/images/",
	}

	lc := fxtest.NewLifecycle(t)
	store, err := NewBlobImageStore(ImageStoreParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return store.(*blobImageStore), dir
}

func TestBlobImageStore_SaveReturnsPublicURL(t *testing.T) {
	store, dir := createTestImageStore(t)

	url, err := store.Save(context.Background(), "products/apple.png", []byte{0x89, 0x50, 0x4E, 0x47}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/products/apple.png", url)

	written, err := os.ReadFile(filepath.Join(dir, "products", "apple.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, written)
}

func TestNewBlobImageStore_MissingBucketURL(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewBlobImageStore(ImageStoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
