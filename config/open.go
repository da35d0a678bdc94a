package config

import (
	"io"
	"os"

	platformerrors "github.com/jmgilman/go/errors"
	fsbilly "github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/core"
	"github.com/jmgilman/go/vfs"
	"github.com/jmgilman/go/vfs/driver/billy"
	"github.com/jmgilman/go/vfs/driver/corefs"
	"github.com/jmgilman/go/vfs/driver/minio"
	"github.com/rs/zerolog"
)

// Option configures Open.
type Option func(*options)

type options struct {
	output io.Writer
}

// WithLogOutput sets where log lines are written. Default: os.Stderr
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// Open creates the configured driver and returns a FileSystem over it. The
// same logger is handed to the driver and the FileSystem.
func Open(cfg *Config, opts ...Option) (*vfs.FileSystem, error) {
	o := &options{output: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	logger, err := newLogger(cfg.LogLevel, o.output)
	if err != nil {
		return nil, err
	}

	driver, err := newDriver(cfg.Driver, logger)
	if err != nil {
		return nil, platformerrors.WithContext(err, "driver", cfg.Driver.Type)
	}
	return vfs.New(driver, cfg.Root, cfg.Policy, vfs.WithLogger(logger)), nil
}

func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	if level == "" {
		level = zerolog.InfoLevel.String()
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), invalid("log_level", "unknown log level %q", level)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func newDriver(cfg DriverConfig, logger zerolog.Logger) (vfs.Driver, error) {
	switch cfg.Type {
	case DriverMemory:
		return billy.NewMemory(billy.WithLogger(logger)), nil
	case DriverLocal:
		if cfg.Local.Dir == "" {
			return nil, invalid("driver.local.dir", "local driver requires a directory")
		}
		return billy.NewLocal(cfg.Local.Dir, billy.WithLogger(logger)), nil
	case DriverMinio:
		d, err := minio.New(cfg.Minio, minio.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return d, nil
	case DriverCoreFS:
		return newCoreFSDriver(cfg.CoreFS, logger)
	default:
		return nil, invalid("driver.type", "unknown driver type %q", cfg.Type)
	}
}

func newCoreFSDriver(cfg CoreFSConfig, logger zerolog.Logger) (vfs.Driver, error) {
	var provider core.FS
	switch cfg.Provider {
	case DriverMemory:
		provider = fsbilly.NewMemory()
	case DriverLocal:
		d, err := corefs.NewChroot(fsbilly.NewLocal(), cfg.Dir, corefs.WithLogger(logger))
		if err != nil {
			return nil, platformerrors.WrapWithContext(err, platformerrors.CodeInvalidConfig,
				"failed to scope corefs provider", map[string]interface{}{"dir": cfg.Dir})
		}
		return d, nil
	default:
		return nil, invalid("driver.corefs.provider", "unknown corefs provider %q", cfg.Provider)
	}
	return corefs.New(provider, corefs.WithLogger(logger)), nil
}
