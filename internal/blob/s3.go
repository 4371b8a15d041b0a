package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3 stores blobs in a single bucket on an S3-compatible backend. A custom
// endpoint with path-style addressing covers MinIO deployments.
type S3 struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string // optional, for MinIO
	AccessKeyID     string // optional, default credentials chain when empty
	SecretAccessKey string
	PathStyle       bool
	PublicURL       string // base the public site loads images from
}

func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	publicURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
	}
	return &S3{client: client, bucket: cfg.Bucket, publicURL: publicURL}, nil
}

func (s *S3) Put(ctx context.Context, key, contentType string, r io.Reader) (Info, error) {
	if err := validateKey(key); err != nil {
		return Info{}, err
	}
	input := &s3.PutObjectInput{Bucket: &s.bucket, Key: &key, Body: r}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return Info{}, err
	}
	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		return Info{}, err
	}
	return s.info(key, head.ContentLength, head.ContentType, head.ETag, head.LastModified), nil
}

func (s *S3) Open(ctx context.Context, key string) (Info, io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return Info{}, nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		var nk *types.NoSuchKey
		if errors.As(err, &nk) {
			return Info{}, nil, ErrNotExist
		}
		return Info{}, nil, err
	}
	return s.info(key, out.ContentLength, out.ContentType, out.ETag, out.LastModified), out.Body, nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &key})
	return err
}

func (s *S3) URL(key string) string {
	return s.publicURL + "/" + key
}

func (s *S3) info(key string, size *int64, contentType, etag *string, lastModified *time.Time) Info {
	info := Info{Key: key, UpdatedAt: time.Now().UTC()}
	if size != nil {
		info.Size = *size
	}
	if contentType != nil {
		info.ContentType = *contentType
	}
	if etag != nil {
		info.ETag = strings.Trim(*etag, `"`)
	}
	if lastModified != nil {
		info.UpdatedAt = *lastModified
	}
	return info
}
