package publish

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Environment variables for static S3 credentials. When unset the default
// AWS credential chain applies.
const (
	EnvAccessKeyID     = "NETSCI_S3_ACCESS_KEY_ID"
	EnvSecretAccessKey = "NETSCI_S3_SECRET_ACCESS_KEY"
)

// PutObjectAPI is the subset of the S3 client used here.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options configures NewS3Publisher.
type S3Options struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string
}

// S3Publisher uploads artifacts to Bucket under Prefix.
type S3Publisher struct {
	Client PutObjectAPI
	Bucket string
	Prefix string
}

// NewS3Publisher builds a client from the default AWS configuration.
// A custom endpoint switches to path-style addressing.
func NewS3Publisher(ctx context.Context, opts S3Options) (*S3Publisher, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if id, secret := os.Getenv(EnvAccessKeyID), os.Getenv(EnvSecretAccessKey); id != "" && secret != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(id, secret, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Publisher{Client: client, Bucket: opts.Bucket, Prefix: opts.Prefix}, nil
}

// Key returns the object key for name.
func (p *S3Publisher) Key(name string) string {
	prefix := strings.Trim(p.Prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// Publish uploads r as Prefix/name. Non-seekable readers are buffered so
// the payload can be signed.
func (p *S3Publisher) Publish(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}

	body, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", name, err)
		}
		body = bytes.NewReader(data)
	}

	key := p.Key(name)
	_, err := p.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType(name)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", p.Bucket, key), nil
}
