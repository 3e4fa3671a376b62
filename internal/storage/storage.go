package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds connection settings for the document object store.
type Config struct {
	Endpoint       string
	AccessKey      string
	SecretKey      string
	Bucket         string
	UseSSL         bool
	Region         string
	TimeoutSeconds int
}

// Client defines the object storage operations the document service needs.
type Client interface {
	// EnsureBucket creates the bucket if it does not exist yet.
	EnsureBucket(ctx context.Context, bucket string) error
	// PutObject uploads an object.
	PutObject(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) error
	// GetObject opens an object for reading.
	GetObject(ctx context.Context, bucket, objectName string) (io.ReadCloser, error)
	// RemoveObject deletes an object.
	RemoveObject(ctx context.Context, bucket, objectName string) error
}

// NewClient creates a Minio-backed storage client.
func NewClient(cfg Config) (Client, error) {
	// Minio expects the endpoint without a scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &minioClientWrapper{client: minioClient}, nil
}

type minioClientWrapper struct {
	client *minio.Client
}

func (c *minioClientWrapper) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := c.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	return c.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}

func (c *minioClientWrapper) PutObject(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := c.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (c *minioClientWrapper) GetObject(ctx context.Context, bucket, objectName string) (io.ReadCloser, error) {
	return c.client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
}

func (c *minioClientWrapper) RemoveObject(ctx context.Context, bucket, objectName string) error {
	return c.client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
}
