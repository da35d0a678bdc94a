// Package config assembles a vfs.FileSystem from a YAML document.
//
// A configuration names a driver, the root path inside it and the Policy
// granted at that root:
//
//	root: /srv
//	policy:
//	  readable: true
//	  listable: true
//	log_level: info
//	driver:
//	  type: local
//	  local:
//	    dir: /var/lib/app
//
// Supported driver types are "memory", "local", "minio" and "corefs".
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/vfs"
	"github.com/jmgilman/go/vfs/driver/minio"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Driver types.
const (
	DriverMemory = "memory"
	DriverLocal  = "local"
	DriverMinio  = "minio"
	DriverCoreFS = "corefs"
)

// Config is the top level configuration document.
type Config struct {
	// Root is the path inside the driver that becomes the FileSystem root.
	// Default: "/"
	Root string `yaml:"root"`

	// Policy is the capability ceiling for everything opened through the
	// FileSystem. Omitted flags are denied.
	Policy vfs.Policy `yaml:"policy"`

	// LogLevel is a zerolog level name. Default: "info"
	LogLevel string `yaml:"log_level"`

	Driver DriverConfig `yaml:"driver"`
}

// DriverConfig selects and configures the storage backend.
type DriverConfig struct {
	Type   string       `yaml:"type"`
	Local  LocalConfig  `yaml:"local"`
	Minio  minio.Config `yaml:"minio"`
	CoreFS CoreFSConfig `yaml:"corefs"`
}

// LocalConfig configures the "local" driver.
type LocalConfig struct {
	// Dir is the host directory the driver is confined to.
	Dir string `yaml:"dir"`
}

// CoreFSConfig configures the "corefs" driver.
type CoreFSConfig struct {
	// Provider is "memory" or "local".
	Provider string `yaml:"provider"`

	// Dir scopes a local provider to a host directory. Required when Provider
	// is "local".
	Dir string `yaml:"dir"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, platformerrors.WrapWithContext(err, platformerrors.CodeInvalidConfig,
			"failed to read config", map[string]interface{}{"file": path})
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, platformerrors.WithContext(err, "file", path)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document. Unknown fields are
// rejected.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidConfig, "failed to decode config")
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Root == "" {
		c.Root = "/"
	}
	if c.LogLevel == "" {
		c.LogLevel = zerolog.InfoLevel.String()
	}
}

// Validate checks the configuration. Driver credentials are checked when the
// driver is created.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return invalid("log_level", "unknown log level %q", c.LogLevel)
	}

	switch c.Driver.Type {
	case DriverMemory, DriverMinio:
	case DriverLocal:
		if c.Driver.Local.Dir == "" {
			return invalid("driver.local.dir", "local driver requires a directory")
		}
	case DriverCoreFS:
		switch c.Driver.CoreFS.Provider {
		case DriverMemory:
		case DriverLocal:
			if c.Driver.CoreFS.Dir == "" {
				return invalid("driver.corefs.dir", "local corefs provider requires a directory")
			}
		default:
			return invalid("driver.corefs.provider", "unknown corefs provider %q", c.Driver.CoreFS.Provider)
		}
	case "":
		return invalid("driver.type", "driver type is required")
	default:
		return invalid("driver.type", "unknown driver type %q", c.Driver.Type)
	}
	return nil
}

func invalid(field, format string, args ...interface{}) error {
	err := platformerrors.Newf(platformerrors.CodeInvalidConfig, format, args...)
	return platformerrors.WithContext(err, "field", field)
}
