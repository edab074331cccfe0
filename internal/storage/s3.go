// Package storage provides the S3-backed object store for uploaded assets.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/platform/config"
)

// S3FileStore stores objects in a single bucket and serves them through a
// public base URL (typically a CDN or the bucket website endpoint).
type S3FileStore struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
}

// Ensure S3FileStore implements the FileStore interface
var _ portssvc.FileStore = (*S3FileStore)(nil)

// NewS3FileStore builds a file store from application config, loading AWS
// credentials from the default chain.
func NewS3FileStore(ctx context.Context, cfg *config.Config) (*S3FileStore, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required for file storage")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &S3FileStore{
		client:        s3.NewFromConfig(awsCfg),
		bucket:        cfg.S3Bucket,
		region:        cfg.S3Region,
		publicBaseURL: strings.TrimSuffix(cfg.S3PublicBaseURL, "/"),
	}, nil
}

// Put uploads the content and returns its public URL.
func (s *S3FileStore) Put(ctx context.Context, key string, contentType string, size int64, content io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          content,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object to bucket %s key %s: %w", s.bucket, key, err)
	}
	return s.publicURL(key), nil
}

func (s *S3FileStore) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
