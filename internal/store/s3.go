// internal/store/s3.go
//
// S3-backed config store.
//
// Objects live under <prefix>/<slug>.json in one bucket.  A missing key
// maps to ErrNotFound; every other SDK failure is surfaced as-is so the
// loader can log it.  The client is built once from the ambient AWS config
// chain (env, shared credentials, instance role).

package store

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3 reads configs from an S3 bucket.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string // e.g. "restaurants"
}

// NewS3 builds a store for bucket/prefix using the default AWS config chain.
func NewS3(ctx context.Context, region, bucket, prefix string) (*S3, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &S3{client: s3.NewFromConfig(cfg), bucket: bucket, prefix: prefix}, nil
}

// Fetch downloads <prefix>/<slug>.json.
func (s *S3) Fetch(ctx context.Context, slug string) ([]byte, error) {
	if slug == "" {
		return nil, ErrNotFound
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path.Join(s.prefix, slug+".json")),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}
