package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks defaulting and format validations for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Empty config picks up all defaults.
	cfg := new(Config)

	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultConverterPath, cfg.ConverterPath)
	require.Equal(t, DefaultConverterFormat, cfg.ConverterFormat)
	require.Equal(t, DefaultDiskExtension, cfg.DiskExtension)
	require.Equal(t, DefaultManifestFilename, cfg.ManifestFilename)

	// Bad disk extension.
	cfg = &Config{
		DiskExtension: "vmdk",
	}

	require.Error(t, Validate(cfg))

	// Nil config.
	require.Error(t, Validate(nil))
}

// TestLoad_EmptyPath ensures defaults are returned without touching the filesystem.
func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		ConverterPath:   "qemu-img",
		ConverterFormat: "9",
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.ConverterPath, loaded.ConverterPath)
	require.Equal(t, cfg.ConverterFormat, loaded.ConverterFormat)

	// Absent fields were defaulted on load.
	require.Equal(t, DefaultDiskExtension, loaded.DiskExtension)
	require.Equal(t, DefaultManifestFilename, loaded.ManifestFilename)
}
