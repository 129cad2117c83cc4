package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/tnqbao/gau-drive-service/config"
)

// S3Client is the StorageGateway implementation for AWS S3 and S3-compatible
// endpoints, selected with STORAGE_DRIVER=s3.
type S3Client struct {
	Client  *s3.Client
	Presign *s3.PresignClient
	Bucket  string
}

func InitS3Client(cfg *config.EnvConfig) *S3Client {
	if cfg.S3.AccessKey == "" || cfg.S3.SecretKey == "" {
		panic("S3 credentials are not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		),
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to load S3 configuration: %v", err))
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Client{
		Client:  client,
		Presign: s3.NewPresignClient(client),
		Bucket:  cfg.Storage.Bucket,
	}
}

func (s *S3Client) PresignUpload(ctx context.Context, key, contentType string, expire time.Duration) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key cannot be empty")
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := s.Presign.PresignPutObject(ctx, input, s3.WithPresignExpires(expire))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload URL: %w", err)
	}

	return req.URL, nil
}

func (s *S3Client) PresignDownload(ctx context.Context, key, filename string, expire time.Duration) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key cannot be empty")
	}

	input := &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}
	if filename != "" {
		input.ResponseContentDisposition = aws.String(fmt.Sprintf(`attachment; filename="%s"`, filename))
	}

	req, err := s.Presign.PresignGetObject(ctx, input, s3.WithPresignExpires(expire))
	if err != nil {
		return "", fmt.Errorf("failed to presign download URL: %w", err)
	}

	return req.URL, nil
}

func (s *S3Client) DeleteObject(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

func (s *S3Client) Health(ctx context.Context) error {
	_, err := s.Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.Bucket),
	})
	if err != nil {
		return fmt.Errorf("s3 health check failed: %w", err)
	}
	return nil
}
