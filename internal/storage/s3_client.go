// Package storage wraps the S3-compatible object store holding avatar images.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	social_errors "github.com/ninjaCoderr/social-app-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStorage is the surface the services depend on.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	FileURL(key string) string
	ValidateContentType(contentType string) error
}

type S3Config struct {
	Region     string
	Bucket     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	PublicHost string
}

type Client struct {
	cfg S3Config
	s3  *s3.Client
}

func NewClient(ctx context.Context, cfg S3Config) (*Client, error) {
	if cfg.Region == "" || cfg.Bucket == "" {
		return nil, errors.New("s3 region and bucket are required")
	}

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{
		cfg: cfg,
		s3:  s3Client,
	}, nil
}

// Upload stores the object under key, tagging the stored content type.
// Non-resumable single put; callers decide retry policy (there is none).
func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	if c == nil {
		return errors.New("s3 client not initialized")
	}
	if key == "" {
		return errors.New("object key is required")
	}

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	return err
}

// FileURL builds the public media URL for a stored object:
// https://<host>/v0/b/<bucket>/o/<name>?alt=media
func (c *Client) FileURL(key string) string {
	if c == nil || key == "" {
		return ""
	}
	return FileURL(c.cfg.PublicHost, c.cfg.Bucket, key)
}

// ValidateContentType accepts only the image types avatars may carry.
func (c *Client) ValidateContentType(contentType string) error {
	switch contentType {
	case "image/png", "image/jpeg":
		return nil
	default:
		return social_errors.ErrWrongFileType
	}
}

func FileURL(publicHost, bucket, key string) string {
	return fmt.Sprintf("%s/v0/b/%s/o/%s?alt=media", publicHost, bucket, url.PathEscape(key))
}
