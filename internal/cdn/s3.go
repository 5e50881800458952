package cdn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config configures an S3-compatible bucket (AWS, R2, MinIO)
type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
}

// S3Store is an ObjectStore backed by an S3-compatible bucket
type S3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Store creates a new S3-backed object store
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, errors.New("invalid object storage configuration: bucket and credentials are required")
	}
	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" && cfg.Endpoint != "" {
		publicBaseURL = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return &S3Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL,
	}, nil
}

// Upload stores data under folder/name
func (s *S3Store) Upload(ctx context.Context, folder, name, contentType string, data []byte) (*UploadResult, error) {
	key := Key(folder, name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object (key: %s): %w", key, err)
	}

	return &UploadResult{
		PublicID: key,
		URL:      s.PublicURL(key),
		Bytes:    int64(len(data)),
	}, nil
}

// Destroy deletes the object with the given public id
func (s *S3Store) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object (key: %s): %w", publicID, err)
	}
	return nil
}

// PublicURL builds the public address of key
func (s *S3Store) PublicURL(key string) string {
	if s.publicBaseURL == "" || key == "" {
		return ""
	}
	base, err := url.Parse(strings.TrimSuffix(s.publicBaseURL, "/") + "/")
	if err != nil {
		return ""
	}
	ref, err := url.Parse(strings.TrimPrefix(key, "/"))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
