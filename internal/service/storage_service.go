package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fadilmartias/resume-matcher/internal/config"
	"github.com/google/uuid"
)

type StorageServiceInterface interface {
	// Save stores src under a fresh key with the given extension.
	Save(ctx context.Context, src io.Reader, ext, contentType string) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Provider() string
}

func NewStorageService(ctx context.Context, cfg *config.StorageConfig) (StorageServiceInterface, error) {
	switch cfg.Driver {
	case config.StorageS3:
		return NewS3Storage(ctx, cfg)
	case config.StorageLocal, "":
		s := NewLocalStorage(cfg.UploadPath)
		if err := s.EnsureUploadDir(); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func newObjectKey(ext string) string {
	return "resumes/" + uuid.New().String() + strings.ToLower(ext)
}

type LocalStorage struct {
	uploadPath string
}

func NewLocalStorage(uploadPath string) *LocalStorage {
	return &LocalStorage{uploadPath: uploadPath}
}

func (s *LocalStorage) EnsureUploadDir() error {
	if err := os.MkdirAll(filepath.Join(s.uploadPath, "resumes"), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

func (s *LocalStorage) Provider() string {
	return config.StorageLocal
}

func (s *LocalStorage) Save(ctx context.Context, src io.Reader, ext, contentType string) (string, error) {
	key := newObjectKey(ext)
	if err := s.EnsureUploadDir(); err != nil {
		return "", err
	}

	dst, err := os.Create(s.path(key))
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	// a failed close can mean the data never reached disk
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	return key, nil
}

func (s *LocalStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if !validKey(key) {
		return nil, fmt.Errorf("invalid storage key %q", key)
	}
	f, err := os.Open(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("failed to open stored file: %w", err)
	}
	return f, nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if !validKey(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	if err := os.Remove(s.path(key)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) path(key string) string {
	return filepath.Join(s.uploadPath, filepath.FromSlash(key))
}

func validKey(key string) bool {
	return key != "" && !strings.Contains(key, "..") && !filepath.IsAbs(key)
}

// S3Storage keeps résumés in an S3-compatible bucket (AWS, R2, MinIO).
type S3Storage struct {
	client *s3.Client
	bucket string
}

func NewS3Storage(ctx context.Context, cfg *config.StorageConfig) (*S3Storage, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required for the s3 storage driver")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Storage{client: client, bucket: cfg.S3Bucket}, nil
}

func (s *S3Storage) Provider() string {
	return config.StorageS3
}

func (s *S3Storage) Save(ctx context.Context, src io.Reader, ext, contentType string) (string, error) {
	key := newObjectKey(ext)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   src,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}
	return key, nil
}

func (s *S3Storage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	return out.Body, nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
