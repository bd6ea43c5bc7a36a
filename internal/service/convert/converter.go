package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/oshokin/image-build-ova/internal/logger"
	"github.com/oshokin/image-build-ova/internal/manifest"
)

// Converter turns a raw virtual disk into a stream-optimized copy.
// It is an interface so tests can substitute a fake that produces a stub file.
type Converter interface {
	// Convert writes a stream-optimized copy of src at dst.
	Convert(ctx context.Context, src, dst string) error
}

// errNoSourceDisks indicates the build produced no candidate disk files.
var errNoSourceDisks = errors.New("no source disks to convert")

// StreamName derives the stream-optimized destination path from a raw disk path
// (`x.vmdk` becomes `x.ova.vmdk`).
func StreamName(src, ext string) string {
	return strings.Replace(src, ext, ".ova"+ext, 1)
}

// StreamOptimize converts every candidate disk file and records the resulting
// path and size on the entry. A pre-existing destination file is removed first,
// so re-running a build never leaves a stale converted disk behind.
func StreamOptimize(ctx context.Context, conv Converter, files []*manifest.FileEntry, ext string) error {
	if len(files) == 0 {
		return errNoSourceDisks
	}

	for _, f := range files {
		dst := StreamName(f.Name, ext)

		if _, err := os.Stat(dst); err == nil {
			if err = os.Remove(dst); err != nil {
				return fmt.Errorf("remove stale %s: %w", dst, err)
			}
		}

		logger.InfoKV(ctx, "Stream optimizing disk (may take a few minutes)",
			"source", f.Name, "destination", dst)

		if err := conv.Convert(ctx, f.Name, dst); err != nil {
			return fmt.Errorf("convert %s: %w", f.Name, err)
		}

		info, err := os.Stat(dst)
		if err != nil {
			return fmt.Errorf("stat %s: %w", dst, err)
		}

		f.StreamName = dst
		f.StreamSize = info.Size()
	}

	return nil
}
