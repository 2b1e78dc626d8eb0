package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// SupabaseStorage implements Storage against the hosted object storage
// REST API. Objects live in a single bucket and are publicly readable via
// the /object/public URL form, which is what record image URLs point at.
type SupabaseStorage struct {
	httpClient *resty.Client
	baseURL    string
	bucket     string
	logger     *zap.Logger
}

// storageError mirrors the API's error payload.
type storageError struct {
	StatusCode string `json:"statusCode"`
	ErrorCode  string `json:"error"`
	Message    string `json:"message"`
}

type uploadResult struct {
	Key string `json:"Key"`
}

// NewSupabaseStorage creates a client for the hosted object storage.
// baseURL is the project URL and apiKey its public API key, the same two
// values the browser client is configured with.
func NewSupabaseStorage(baseURL, apiKey, bucket string, logger *zap.Logger) (*SupabaseStorage, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("supabase url required for supabase storage")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("supabase api key required for supabase storage")
	}
	if bucket == "" {
		return nil, fmt.Errorf("bucket required for supabase storage")
	}

	base := strings.TrimSuffix(baseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey)).
		SetHeader("apikey", apiKey).
		SetTimeout(30 * time.Second)

	logger.Info("Supabase object storage initialized",
		zap.String("bucket", bucket),
	)

	return &SupabaseStorage{
		httpClient: restyClient,
		baseURL:    base,
		bucket:     bucket,
		logger:     logger,
	}, nil
}

// Upload streams a file to the bucket under a freshly generated blob name
func (s *SupabaseStorage) Upload(ctx context.Context, filename string, contentType string, data io.Reader) (string, int64, error) {
	blobName := NewBlobName(filename)

	result := new(uploadResult)
	apiErr := new(storageError)
	reader := &countingReader{r: data}

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(reader).
		SetResult(result).
		SetError(apiErr).
		Post(fmt.Sprintf("/storage/v1/object/%s/%s", s.bucket, blobName))
	if err != nil {
		return "", 0, fmt.Errorf("upload object: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return "", 0, fmt.Errorf("object storage error: status=%d, message=%s", resp.StatusCode(), apiErr.Message)
	}

	s.logger.Info("File uploaded to object storage",
		zap.String("blobName", blobName),
		zap.String("bucket", s.bucket),
		zap.String("contentType", contentType),
		zap.String("originalFilename", filename),
		zap.Int64("size", reader.count),
	)

	return blobName, reader.count, nil
}

// Download streams an object from the bucket
func (s *SupabaseStorage) Download(ctx context.Context, blobName string) (io.ReadCloser, error) {
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(fmt.Sprintf("/storage/v1/object/%s/%s", s.bucket, blobName))
	if err != nil {
		return nil, fmt.Errorf("download object: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		resp.RawBody().Close()
		if resp.StatusCode() == http.StatusNotFound {
			return nil, fmt.Errorf("file not found: %s", blobName)
		}
		return nil, fmt.Errorf("object storage error: status=%d", resp.StatusCode())
	}

	return resp.RawBody(), nil
}

// Delete removes an object. Deleting a missing object is not an error.
func (s *SupabaseStorage) Delete(ctx context.Context, blobName string) error {
	apiErr := new(storageError)

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetError(apiErr).
		Delete(fmt.Sprintf("/storage/v1/object/%s/%s", s.bucket, blobName))
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		s.logger.Debug("Object already deleted or not found",
			zap.String("blobName", blobName),
			zap.String("bucket", s.bucket),
		)
		return nil
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("object storage error: status=%d, message=%s", resp.StatusCode(), apiErr.Message)
	}

	s.logger.Info("File deleted from object storage",
		zap.String("blobName", blobName),
		zap.String("bucket", s.bucket),
	)

	return nil
}

// PublicURL returns the public read URL for a blob:
// {base}/storage/v1/object/public/{bucket}/{blobName}
func (s *SupabaseStorage) PublicURL(blobName string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, blobName)
}
