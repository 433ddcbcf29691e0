package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/notevault/vtu-notes-api/pkg/config"
)

// S3 stores objects in an S3 bucket. Objects are assumed to be served
// publicly, either directly or through a CDN in front of the bucket.
type S3 struct {
	client        *s3.S3
	uploader      *s3manager.Uploader
	bucket        string
	keyPrefix     string
	publicBaseURL string
}

func NewS3(cfg config.StorageConfig) (*S3, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3 storage requires a bucket name")
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.S3Region),
	})
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	publicBase := cfg.PublicBaseURL
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3{
		client:        s3.New(sess),
		uploader:      s3manager.NewUploader(sess),
		bucket:        cfg.S3Bucket,
		keyPrefix:     cfg.S3KeyPrefix,
		publicBaseURL: publicBase,
	}, nil
}

func (s *S3) SaveStream(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	fullKey := s.objectKey(key)

	input := &s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fullKey),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.uploader.UploadWithContext(ctx, input); err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}

	return key, nil
}

func (s *S3) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3 object: %w", err)
	}

	return out.Body, nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil
		}
		return fmt.Errorf("delete s3 object: %w", err)
	}

	return nil
}

func (s *S3) PublicURL(key string) string {
	return s.publicBaseURL + "/" + s.objectKey(key)
}

func (s *S3) objectKey(key string) string {
	if s.keyPrefix == "" {
		return key
	}
	return s.keyPrefix + "/" + strings.TrimLeft(key, "/")
}
