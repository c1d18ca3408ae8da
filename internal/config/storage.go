package config

import (
	"os"
	"sync"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type StorageConfig struct {
	Driver     string
	UploadPath string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		storageConfig = &StorageConfig{
			Driver:      getEnv("STORAGE_DRIVER", StorageLocal),
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			S3Bucket:    os.Getenv("S3_BUCKET"),
			S3Region:    getEnv("S3_REGION", "auto"),
			S3Endpoint:  os.Getenv("S3_ENDPOINT"),
			S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
			S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		}
	})
	return storageConfig
}
