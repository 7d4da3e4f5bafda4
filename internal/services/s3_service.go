package services

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/itc-media/cms-backend/internal/config"
)

// S3Service mirrors uploaded files into an S3-compatible bucket. The mirror is
// strictly best-effort; local disk remains the source of truth for serving.
type S3Service struct {
	client *s3.Client
	cfg    *config.Config
}

// NewS3Service builds the mirror client. When no endpoint is configured the
// service is disabled and every call is a no-op.
func NewS3Service(cfg *config.Config) (*S3Service, error) {
	if cfg.MediaS3Endpoint == "" {
		return &S3Service{cfg: cfg}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.MediaS3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.MediaS3AccessKeyID, cfg.MediaS3SecretAccessKey, "")),
	)
	if err != nil {
		return nil, err
	}

	endpoint := cfg.MediaS3Endpoint
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.MediaS3UsePathStyle
		o.BaseEndpoint = &endpoint
	})
	return &S3Service{client: client, cfg: cfg}, nil
}

// Enabled reports whether a mirror bucket is configured.
func (s *S3Service) Enabled() bool {
	return s != nil && s.client != nil
}

// Upload pushes an object to the mirror bucket.
func (s *S3Service) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if !s.Enabled() {
		return nil
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.MediaS3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}

// Delete removes an object from the mirror bucket.
func (s *S3Service) Delete(ctx context.Context, key string) error {
	if !s.Enabled() {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.MediaS3Bucket),
		Key:    aws.String(key),
	})
	return err
}
