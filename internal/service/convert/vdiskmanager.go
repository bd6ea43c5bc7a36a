package convert

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// VDiskManager invokes vmware-vdiskmanager (or a compatible tool) as an
// external process. The tool's exit code is the sole success signal; its
// output is passed through to the console.
type VDiskManager struct {
	// Path is the converter executable, looked up on PATH if not absolute.
	Path string
	// Format is the target disk type code (`5` selects stream-optimized).
	Format string
}

// NewVDiskManager returns a converter invoking the provided executable
// with the provided target format code.
func NewVDiskManager(path, format string) *VDiskManager {
	return &VDiskManager{
		Path:   path,
		Format: format,
	}
}

// Convert runs `<tool> -r <src> -t <format> <dst>` and waits for completion.
func (m *VDiskManager) Convert(ctx context.Context, src, dst string) error {
	cmd := exec.CommandContext(ctx, m.Path, "-r", src, "-t", m.Format, dst)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", m.Path, err)
	}

	return nil
}
