package storage_test

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/storage"
)

func TestNewBlobName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		pattern  string
	}{
		{name: "jpg extension", filename: "photo.jpg", pattern: `^\d+-[0-9a-f]{8}\.jpg$`},
		{name: "uppercase extension lowercased", filename: "PHOTO.JPG", pattern: `^\d+-[0-9a-f]{8}\.jpg$`},
		{name: "no extension", filename: "photo", pattern: `^\d+-[0-9a-f]{8}$`},
		{name: "multiple dots keep last extension", filename: "tire.front.png", pattern: `^\d+-[0-9a-f]{8}\.png$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Regexp(t, regexp.MustCompile(tt.pattern), storage.NewBlobName(tt.filename))
		})
	}
}

func TestNewBlobName_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := storage.NewBlobName("tire.png")
		assert.False(t, seen[name], "blob names should not collide")
		seen[name] = true
	}
}

func TestLocalStorage_UploadDownloadDelete(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	content := []byte("image-bytes")
	blobName, size, err := store.Upload(ctx, "tire.png", "image/png", bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)
	assert.Regexp(t, `^\d+-[0-9a-f]{8}\.png$`, blobName)

	reader, err := store.Download(ctx, blobName)
	require.NoError(t, err)
	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	reader.Close()
	assert.Equal(t, content, got)

	require.NoError(t, store.Delete(ctx, blobName))

	_, err = store.Download(ctx, blobName)
	assert.Error(t, err)
}

func TestLocalStorage_DeleteMissingIsNoError(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "1700000000000-deadbeef.png"))
}

func TestLocalStorage_RejectsBadBlobNames(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"", "../secrets", "a/b.png", `a\b.png`, "..", "x..y"} {
		t.Run(name, func(t *testing.T) {
			_, err := store.Download(ctx, name)
			assert.Error(t, err, "path-like blob names must be rejected")

			err = store.Delete(ctx, name)
			assert.Error(t, err)
		})
	}
}

func TestLocalStorage_PublicURL(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/media/1700000000000-abcd1234.jpg", store.PublicURL("1700000000000-abcd1234.jpg"))
}
