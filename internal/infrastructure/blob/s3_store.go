package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"bidtrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store keeps uploaded file bytes in an S3 bucket and hands back the URL
// clients retrieve them from.
//
// Supported env vars (local-friendly):
//   - FILES_BUCKET (default: bidtrack-files)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000, switches to path-style)
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ interfaces.IBlobStore = (*S3Store)(nil)

func NewS3Store(cfg aws.Config) *S3Store {
	endpoint := strings.TrimRight(os.Getenv("S3_ENDPOINT"), "/")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	bucket := getenvDefault("FILES_BUCKET", "bidtrack-files")
	baseURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
	if endpoint != "" {
		baseURL = fmt.Sprintf("%s/%s", endpoint, bucket)
	}

	return &S3Store{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
