// Package minio provides a MinIO/S3-compatible implementation of vfs.Driver.
package minio

import (
	"fmt"

	"github.com/minio/minio-go/v7"
)

// Config holds MinIO driver configuration.
type Config struct {
	// Endpoint is the MinIO server address (e.g., "localhost:9000")
	Endpoint string `yaml:"endpoint"`

	// Bucket is the S3 bucket name
	Bucket string `yaml:"bucket"`

	// AccessKey is the access key ID for authentication
	AccessKey string `yaml:"access_key"`

	// SecretKey is the secret access key for authentication
	SecretKey string `yaml:"secret_key"`

	// UseSSL enables HTTPS connections
	UseSSL bool `yaml:"use_ssl"`

	// Prefix is an optional prefix for all object keys (for namespacing)
	Prefix string `yaml:"prefix"`

	// Client is an optional pre-configured MinIO client.
	// If provided, Endpoint/AccessKey/SecretKey are ignored.
	Client *minio.Client `yaml:"-"`

	// MaxRenameConcurrency limits concurrent copies during directory rename.
	// Default: 10
	MaxRenameConcurrency int `yaml:"rename_concurrency"`
}

// validate checks if the configuration is valid.
// Either Client OR (Endpoint + Bucket + AccessKey + SecretKey) must be provided.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if c.MaxRenameConcurrency < 0 {
		return fmt.Errorf("rename concurrency must not be negative")
	}

	if c.Client != nil {
		return nil
	}

	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required when client is not provided")
	}
	if c.AccessKey == "" {
		return fmt.Errorf("access key is required when client is not provided")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is required when client is not provided")
	}

	return nil
}
