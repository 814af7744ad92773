package client

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appConfig "github.com/kim0hyeon/CRUDBoard/internal/config"
)

// presignTTL is how long an upload URL stays valid
const presignTTL = 5 * time.Minute

// StorageRecorder receives timing and error info for each storage call
type StorageRecorder interface {
	RecordStorageOperation(operation string, duration time.Duration, err error)
}

// ImageStore stores post images in S3 (or a MinIO endpoint in local dev)
type ImageStore struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	region        string
	endpoint      string
	metrics       StorageRecorder
}

// NewImageStore creates an S3-backed image store
func NewImageStore(cfg *appConfig.S3Config) (*ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		// MinIO requires explicit credentials
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key are required for a custom endpoint")
		}
		awsCfg, err = awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(cfg.Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)),
			awsconfig.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					return aws.Endpoint{
						URL:               cfg.Endpoint,
						HostnameImmutable: true,
						SigningRegion:     cfg.Region,
					}, nil
				},
			)),
		)
	} else {
		// AWS SDK default credential chain (IAM role on EC2, ~/.aws/credentials locally)
		awsCfg, err = awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(cfg.Region),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.UsePathStyle = true // required for MinIO
		}
	})

	return &ImageStore{
		client:        s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		endpoint:      cfg.Endpoint,
	}, nil
}

// WithMetrics attaches a storage recorder. Without one, calls go unrecorded.
func (c *ImageStore) WithMetrics(recorder StorageRecorder) *ImageStore {
	c.metrics = recorder
	return c
}

func (c *ImageStore) record(operation string, start time.Time, err error) {
	if c.metrics != nil {
		c.metrics.RecordStorageOperation(operation, time.Since(start), err)
	}
}

// generateKey builds a unique object key for a post image.
// Format: posts/{year}/{month}/{uuid}_{timestamp}{ext}
func (c *ImageStore) generateKey(fileName string) string {
	now := time.Now()
	return fmt.Sprintf("posts/%s/%s/%s_%d%s",
		now.Format("2006"), now.Format("01"),
		uuid.New().String(), now.Unix(), path.Ext(fileName))
}

// GeneratePresignedURL returns a short-lived upload URL together with the
// public URL the image will be served from after the upload
func (c *ImageStore) GeneratePresignedURL(ctx context.Context, fileName, contentType string) (string, string, error) {
	key := c.generateKey(fileName)

	start := time.Now()
	presignedReq, err := c.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = presignTTL
	})
	c.record("presign_put", start, err)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return presignedReq.URL, c.fileURL(key), nil
}

// DeleteFile removes a stored image given its public URL
func (c *ImageStore) DeleteFile(ctx context.Context, fileURL string) error {
	key := c.keyFromURL(fileURL)
	if key == "" {
		return fmt.Errorf("cannot extract object key from %q", fileURL)
	}

	start := time.Now()
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	c.record("delete_object", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// fileURL returns the public URL for an object key
func (c *ImageStore) fileURL(key string) string {
	if c.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.endpoint, "/"), c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}

// keyFromURL extracts the object key from a public URL. Handles both the
// virtual-hosted AWS format and the path-style endpoint format.
func (c *ImageStore) keyFromURL(fileURL string) string {
	if idx := strings.Index(fileURL, ".amazonaws.com/"); idx != -1 {
		return fileURL[idx+len(".amazonaws.com/"):]
	}
	// Path style: {endpoint}/{bucket}/{key}
	parts := strings.SplitN(fileURL, "/", 5)
	if len(parts) >= 5 {
		return parts[4]
	}
	return ""
}
