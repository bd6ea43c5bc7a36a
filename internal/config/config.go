package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds packaging parameters shared by the pipeline steps.
type Config struct {
	// ConverterPath is the executable invoked to stream-optimize disks.
	ConverterPath string `yaml:"converter_path"`
	// ConverterFormat is the target disk type code passed to the converter.
	ConverterFormat string `yaml:"converter_format"`
	// DiskExtension is the raw-disk file extension selected from the build manifest.
	DiskExtension string `yaml:"disk_extension"`
	// ManifestFilename is the Packer manifest consumed from the build directory.
	ManifestFilename string `yaml:"manifest_filename"`
}

const (
	// DefaultConverterPath is the VMware disk manager executable.
	DefaultConverterPath = "vmware-vdiskmanager"

	// DefaultConverterFormat selects stream-optimized output (`-t 5`).
	DefaultConverterFormat = "5"

	// DefaultDiskExtension is the raw-disk extension produced by Packer.
	DefaultDiskExtension = ".vmdk"

	// DefaultManifestFilename is the manifest Packer writes into the build directory.
	DefaultManifestFilename = "packer-manifest.json"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errBadDiskExtension is returned when the disk extension does not start with a dot.
	errBadDiskExtension = errors.New("disk extension must start with a dot")
)

// Default returns a configuration populated with the stock tool settings.
func Default() *Config {
	return &Config{
		ConverterPath:    DefaultConverterPath,
		ConverterFormat:  DefaultConverterFormat,
		DiskExtension:    DefaultDiskExtension,
		ManifestFilename: DefaultManifestFilename,
	}
}

// Load reads configuration from the provided path and validates essential fields.
// An empty path yields the defaults without touching the filesystem.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults for absent fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.ConverterPath == "" {
		cfg.ConverterPath = DefaultConverterPath
	}

	if cfg.ConverterFormat == "" {
		cfg.ConverterFormat = DefaultConverterFormat
	}

	if cfg.DiskExtension == "" {
		cfg.DiskExtension = DefaultDiskExtension
	}

	if !strings.HasPrefix(cfg.DiskExtension, ".") {
		return fmt.Errorf("%q: %w", cfg.DiskExtension, errBadDiskExtension)
	}

	if cfg.ManifestFilename == "" {
		cfg.ManifestFilename = DefaultManifestFilename
	}

	return nil
}
