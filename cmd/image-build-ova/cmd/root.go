package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/image-build-ova/internal/logger"
	"github.com/oshokin/image-build-ova/internal/service/builder"
	"github.com/oshokin/image-build-ova/internal/version"
)

var (
	// configPath to the optional settings YAML file.
	configPath string

	// logLevel selects the minimum severity for console output.
	logLevel string

	// rootCmd represents the base command that packages a Packer build into an OVA.
	rootCmd = &cobra.Command{
		Use:   "image-build-ova [BUILD_DIR]",
		Short: "Build an OVA from the artifacts of a Packer build",
		Long: "Build an OVA from the VMDK and manifest file produced by a Packer build: " +
			"converts the disk to a stream-optimized VMDK, renders the OVF descriptor, " +
			"writes the checksum manifest and assembles the final archive.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			buildDir := "."
			if len(args) > 0 {
				buildDir = args[0]
			}

			options := &builder.Options{
				BuildDir:   buildDir,
				ConfigPath: configPath,
			}

			return builder.Run(ctx, options)
		},
	}
)

// Execute runs the image-build-ova CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to optional settings file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "logging level (debug, info, warn, error)")
}
