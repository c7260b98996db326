package storage

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of the S3 client used by S3Store.
type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Store implements Store on S3-compatible object storage.
type S3Store struct {
	client s3API
	cfg    Config
}

// New creates an S3Store with the given configuration.
func New(cfg Config) (*S3Store, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		},
	}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3Store{client: s3.New(s3.Options{}, opts...), cfg: cfg}, nil
}

// Get opens an object for reading.
func (s *S3Store) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	full, err := s.fullKey(key)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(full),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrReadFailed)
	}
	return out.Body, nil
}

// Stat returns object metadata.
func (s *S3Store) Stat(ctx context.Context, key string) (*ObjectInfo, error) {
	full, err := s.fullKey(key)
	if err != nil {
		return nil, err
	}

	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(full),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrNotFound)
	}

	return &ObjectInfo{
		Key:         key,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}, nil
}

// List returns keys under prefix, relative to the configured store prefix.
func (s *S3Store) List(ctx context.Context, prefix string) ([]string, error) {
	full := s.cfg.Prefix
	if p := strings.Trim(prefix, "/"); p != "" {
		if full != "" {
			full += "/"
		}
		full += p
	}

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.cfg.Bucket),
		Prefix: aws.String(full),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapS3Error(err, ErrListFailed)
		}
		for _, obj := range page.Contents {
			keys = append(keys, s.relativeKey(aws.ToString(obj.Key)))
		}
	}

	slices.Sort(keys)
	return keys, nil
}

func (s *S3Store) fullKey(key string) (string, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return "", fmt.Errorf("%w: %q", err, key)
	}
	if s.cfg.Prefix == "" {
		return cleaned, nil
	}
	return s.cfg.Prefix + "/" + cleaned, nil
}

func (s *S3Store) relativeKey(full string) string {
	if s.cfg.Prefix == "" {
		return full
	}
	return strings.TrimPrefix(full, s.cfg.Prefix+"/")
}

var _ Store = (*S3Store)(nil)
