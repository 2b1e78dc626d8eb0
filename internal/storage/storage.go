package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/config"
)

// Storage defines the interface for image blob operations. Upload returns
// the generated blob name; records keep that name as their opaque image
// reference and PublicURL turns it back into something a browser can load.
type Storage interface {
	Upload(ctx context.Context, filename string, contentType string, data io.Reader) (string, int64, error)
	Download(ctx context.Context, blobName string) (io.ReadCloser, error)
	Delete(ctx context.Context, blobName string) error
	PublicURL(blobName string) string
}

// NewStorage creates a storage instance based on configuration.
// "local" keeps blobs on disk and serves them from the API's /media route,
// "supabase" talks to the hosted object storage REST API, and "azure" uses
// Azure Blob Storage.
func NewStorage(cfg *config.StorageConfig, logger *zap.Logger) (Storage, error) {
	switch cfg.Mode {
	case "local":
		return NewLocalStorage(cfg.LocalBasePath)
	case "supabase":
		return NewSupabaseStorage(cfg.SupabaseURL, cfg.SupabaseKey, cfg.Bucket, logger)
	case "cloud", "azure":
		if cfg.CloudConnectionString == "" {
			return nil, fmt.Errorf("cloud connection string required for azure storage")
		}
		return NewAzureBlobStorage(cfg.CloudConnectionString, cfg.CloudContainer, logger)
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", cfg.Mode)
	}
}

// NewBlobName generates the storage name for an uploaded file: unix
// millisecond timestamp, a random suffix, and the original extension
// (lowercased, empty when the filename has none).
func NewBlobName(filename string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

// LocalStorage implements Storage on the local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	// Create base path if it doesn't exist
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
	}, nil
}

// Upload writes a file under a freshly generated blob name
func (s *LocalStorage) Upload(ctx context.Context, filename string, contentType string, data io.Reader) (string, int64, error) {
	blobName := NewBlobName(filename)
	fullPath := filepath.Join(s.basePath, blobName)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, data)
	if err != nil {
		os.Remove(fullPath) // Cleanup on error
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	return blobName, size, nil
}

// Download opens a stored file. Blob names never contain path separators,
// so anything that does is rejected outright.
func (s *LocalStorage) Download(ctx context.Context, blobName string) (io.ReadCloser, error) {
	if err := validateBlobName(blobName); err != nil {
		return nil, err
	}

	fullPath := filepath.Join(s.basePath, blobName)

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", blobName)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Delete removes a stored file. Deleting a missing blob is not an error.
func (s *LocalStorage) Delete(ctx context.Context, blobName string) error {
	if err := validateBlobName(blobName); err != nil {
		return err
	}

	fullPath := filepath.Join(s.basePath, blobName)

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// PublicURL returns the API-relative media route for a blob
func (s *LocalStorage) PublicURL(blobName string) string {
	return "/media/" + blobName
}

func validateBlobName(blobName string) error {
	if blobName == "" || strings.ContainsAny(blobName, `/\`) || strings.Contains(blobName, "..") {
		return fmt.Errorf("invalid blob name: %s", blobName)
	}
	return nil
}
