package builder

import (
	"context"
	"fmt"
	"os"

	"github.com/oshokin/image-build-ova/internal/config"
	"github.com/oshokin/image-build-ova/internal/logger"
	"github.com/oshokin/image-build-ova/internal/manifest"
	"github.com/oshokin/image-build-ova/internal/service/archive"
	"github.com/oshokin/image-build-ova/internal/service/checksum"
	"github.com/oshokin/image-build-ova/internal/service/convert"
	"github.com/oshokin/image-build-ova/internal/service/descriptor"
)

// Options contains inputs for the packaging entry point.
type Options struct {
	// BuildDir is the Packer build directory (defaults to the current directory).
	BuildDir string
	// ConfigPath is an optional path to a settings YAML file.
	ConfigPath string
	// Converter overrides the disk converter; when nil the configured
	// vmware-vdiskmanager invocation is used.
	Converter convert.Converter
}

// builder packages one Packer build into an OVA.
// It is unexported—callers should use Run, which encapsulates setup and validation.
type builder struct {
	// cfg holds tool paths and filenames for the pipeline steps.
	cfg *config.Config
	// conv produces stream-optimized disks.
	conv convert.Converter
	// build is the first build from the loaded manifest.
	build *manifest.Build
}

// Run executes the packaging workflow in the build directory.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "image-build-ova")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	if opts.BuildDir != "" && opts.BuildDir != "." {
		if err = os.Chdir(opts.BuildDir); err != nil {
			return fmt.Errorf("enter build directory: %w", err)
		}

		logger.InfoKV(ctx, "Entered build directory", "path", opts.BuildDir)
	}

	b, err := newBuilder(ctx, cfg, opts.Converter)
	if err != nil {
		return fmt.Errorf("initialize builder: %w", err)
	}

	release, err := acquireMarker(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err = b.Run(ctx); err != nil {
		return fmt.Errorf("packaging failed: %w", err)
	}

	logger.Info(ctx, "OVA build completed successfully")

	return nil
}

// newBuilder loads the manifest and wires the converter.
func newBuilder(ctx context.Context, cfg *config.Config, conv convert.Converter) (*builder, error) {
	m, err := manifest.Load(cfg.ManifestFilename)
	if err != nil {
		return nil, err
	}

	build := m.First()

	logger.InfoKV(ctx, "Loaded build manifest",
		"build", build.Name,
		"kubernetes_semver", build.CustomData["kubernetes_semver"])

	if conv == nil {
		conv = convert.NewVDiskManager(cfg.ConverterPath, cfg.ConverterFormat)
	}

	return &builder{
		cfg:   cfg,
		conv:  conv,
		build: build,
	}, nil
}

// Run converts the disk and writes the descriptor, checksum manifest,
// archive and archive checksum, in that order.
func (b *builder) Run(ctx context.Context) error {
	disks := b.build.DiskFiles(b.cfg.DiskExtension)

	if err := convert.StreamOptimize(ctx, b.conv, disks, b.cfg.DiskExtension); err != nil {
		return err
	}

	// TODO(oshokin): package multiple disks into the descriptor and archive.
	disk := disks[0]

	params, err := descriptor.Params(b.build, disk)
	if err != nil {
		return err
	}

	ovfFile := b.build.Name + ".ovf"

	logger.InfoKV(ctx, "Writing descriptor", "path", ovfFile)

	if err = descriptor.Create(ovfFile, params); err != nil {
		return err
	}

	manifestFile := b.build.Name + ".mf"

	logger.InfoKV(ctx, "Writing checksum manifest", "path", manifestFile)

	if err = checksum.WriteManifest(manifestFile, []string{ovfFile, disk.StreamName}); err != nil {
		return err
	}

	ovaFile := b.build.Name + ".ova"

	logger.InfoKV(ctx, "Writing archive", "path", ovaFile)

	if err = archive.Create(ovaFile, []string{ovfFile, manifestFile, disk.StreamName}); err != nil {
		return err
	}

	sidecar, err := archive.WriteChecksum(ovaFile)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Wrote archive checksum", "path", sidecar)

	return nil
}
