package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client defines the S3 operations used by S3Transport.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config contains configuration for the S3 transport.
type S3Config struct {
	Region         string
	AccessKeyID    string
	SecretKey      string
	Endpoint       string // Optional: for S3-compatible services
	ForcePathStyle bool   // For S3-compatible services like MinIO
}

// S3Transport reads s3://bucket/key objects. It is safe for concurrent use.
type S3Transport struct {
	client S3Client
}

// S3Option defines a function that configures S3Transport.
type S3Option func(*s3Options)

type s3Options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3.Options)
}

// WithS3Client sets a custom pre-configured S3 client.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.s3Client = client
	}
}

// WithS3HTTPClient sets a custom HTTP client for S3 requests.
func WithS3HTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3.Options)) S3Option {
	return func(o *s3Options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// NewS3Transport creates an S3 transport. Region is required unless a client
// is supplied with WithS3Client.
func NewS3Transport(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Transport, error) {
	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	if options.s3Client != nil {
		return &S3Transport{client: options.s3Client}, nil
	}

	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: S3 region is required", ErrInvalidConfig)
	}

	awsOptions := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		awsOptions = append(awsOptions,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretKey,
				"",
			)),
		)
	}
	if options.httpClient != nil {
		awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
	}
	awsOptions = append(awsOptions, options.s3ConfigOptions...)

	awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
		for _, opt := range options.s3ClientOptions {
			opt(o)
		}
	})

	return &S3Transport{client: client}, nil
}

// Open issues one GetObject call for an s3://bucket/key identifier.
func (t *S3Transport) Open(ctx context.Context, resource string) (Response, error) {
	bucket, key, err := parseS3URL(resource)
	if err != nil {
		return nil, err
	}

	out, err := t.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return classifyS3Error(err)
	}
	if out.Body == nil {
		return nil, ErrNoBody
	}
	return NewResponse(out.Body), nil
}

func parseS3URL(resource string) (bucket, key string, err error) {
	u, err := url.Parse(resource)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidResource, err)
	}
	if !strings.EqualFold(u.Scheme, SchemeS3) {
		return "", "", fmt.Errorf("%w: expected %s:// scheme", ErrInvalidResource, SchemeS3)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s requires bucket and key", ErrInvalidResource, resource)
	}
	if strings.Contains(key, "..") {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidResource, key)
	}
	return bucket, key, nil
}

// classifyS3Error turns missing objects and denied access into non-OK
// responses; everything else is a transport failure.
func classifyS3Error(err error) (Response, error) {
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: get object", ErrOperationTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return nil, fmt.Errorf("%w: get object", ErrOperationCanceled)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return notFound(), nil
	}
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return notFound(), nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return notFound(), nil
		case "AccessDenied", "Forbidden":
			return forbidden(), nil
		default:
			return nil, fmt.Errorf("%w: get object (code: %s): %w", ErrTransportFailed, apiErr.ErrorCode(), err)
		}
	}

	return nil, fmt.Errorf("%w: get object: %w", ErrTransportFailed, err)
}
