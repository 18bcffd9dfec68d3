// Package upload abstracts where uploaded CSV files are kept: a local
// directory, process memory, or an S3-compatible bucket.
package upload

import (
	"fmt"
	"io"
	"os"
	"strings"

	"reviewer/helper"
)

const (
	STORAGE_MODE_LOCAL  = "local"
	STORAGE_MODE_S3     = "s3"
	STORAGE_MODE_MEMORY = "memory"
)

type File struct {
	Name     string
	Size     int64
	MimeType string
}

// Filesystem is the minimal surface the reviewer needs over its storage
// backend.
type Filesystem interface {
	Write(path string, reader io.Reader, size int64) error
	Open(path string) (io.ReadCloser, error)
	Delete(path string) error
	ListFiles() ([]File, error)
}

// CreateFilesystemFromEnv creates a filesystem based on environment variables
func CreateFilesystemFromEnv() (Filesystem, error) {
	storageMode := strings.ToLower(helper.GetEnvOrDefault("REVIEWER_STORAGE_MODE", STORAGE_MODE_LOCAL))

	switch storageMode {
	case STORAGE_MODE_S3:
		config := S3Config{
			Endpoint:        os.Getenv("S3_ENDPOINT"),
			Region:          helper.GetEnvOrDefault("S3_REGION", "us-east-1"),
			BucketName:      os.Getenv("S3_BUCKET_NAME"),
			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			UseSSL:          helper.GetEnvOrDefault("S3_USE_SSL", "true") == "true",
		}
		if config.BucketName == "" || config.AccessKeyID == "" || config.SecretAccessKey == "" {
			return nil, fmt.Errorf("missing required S3 configuration: S3_BUCKET_NAME, S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY")
		}
		return NewFilesystemS3(config)
	case STORAGE_MODE_MEMORY:
		return NewFilesystemMemory(), nil
	case STORAGE_MODE_LOCAL:
		basePath := helper.GetEnvOrDefault("REVIEWER_STORAGE_PATH", "./uploads")
		return NewFilesystemLocal(basePath), nil
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s (supported: local, s3, memory)", storageMode)
	}
}
