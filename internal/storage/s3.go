// Package storage wraps an S3-compatible object store behind the narrow
// surface the image resolver needs: public URL construction and object
// existence checks.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// Config holds object-storage settings. Credentials come from the
// standard AWS config/credential chain.
type Config struct {
	// Region for requests, e.g. "ap-northeast-1".
	Region string
	// Endpoint overrides the service endpoint for S3-compatible
	// providers; path-style addressing is forced when set.
	Endpoint string
	// PublicBaseURL is the base for public object URLs
	// ({base}/{bucket}/{key}). When empty, the virtual-hosted-style AWS
	// URL is used.
	PublicBaseURL string
}

// S3Storage implements public URL resolution and existence checks over
// an S3-compatible store.
type S3Storage struct {
	client        *s3.Client
	region        string
	publicBaseURL string
}

// NewS3Storage creates an S3Storage using the default AWS configuration
// chain with optional overrides from cfg.
func NewS3Storage(ctx context.Context, cfg Config) (*S3Storage, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:        client,
		region:        cfg.Region,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// PublicURL returns the public URL for bucket/key. The construction is
// deterministic; it does not verify that the object exists.
func (s *S3Storage) PublicURL(bucket, key string) string {
	if bucket == "" || key == "" {
		return ""
	}
	key = strings.TrimPrefix(key, "/")
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, bucket, key)
	}
	if s.region == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.region, key)
}

// ObjectExists reports whether bucket/key exists via a HEAD request.
func (s *S3Storage) ObjectExists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case "NotFound", "NoSuchKey":
				return false, nil
			}
		}
		return false, fmt.Errorf("head object %s/%s: %w", bucket, key, err)
	}
	return true, nil
}
