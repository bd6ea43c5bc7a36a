package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/oshokin/image-build-ova/internal/logger"
)

const (
	// markerFilename records the PID of a packaging run in the build directory.
	markerFilename = "image-build-ova.pid"

	// markerFilePermissions is applied to the marker file.
	markerFilePermissions = 0o600
)

// errBuildRunning indicates another packaging run holds the build directory.
var errBuildRunning = errors.New("another packaging run is in progress")

// acquireMarker claims the build directory for this run. A marker left by a
// still-running process aborts; a marker whose process is gone is treated as
// stale and removed. The returned release function removes the marker.
func acquireMarker(ctx context.Context) (func(), error) {
	if err := checkMarker(ctx); err != nil {
		return nil, err
	}

	pid := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(markerFilename, []byte(pid), markerFilePermissions); err != nil {
		return nil, fmt.Errorf("write run marker: %w", err)
	}

	return func() {
		if err := os.Remove(markerFilename); err != nil {
			logger.WarnKV(ctx, "Unable to remove run marker", "path", markerFilename, "error", err)
		}
	}, nil
}

// checkMarker inspects an existing marker and decides whether the run may proceed.
func checkMarker(ctx context.Context) error {
	contents, err := os.ReadFile(markerFilename)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("read run marker: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(contents)))
	if err == nil {
		process, psErr := ps.FindProcess(pid)
		if psErr == nil && process != nil {
			return fmt.Errorf("pid %d holds %s: %w", pid, markerFilename, errBuildRunning)
		}
	}

	logger.InfoKV(ctx, "Removing stale run marker", "path", markerFilename)

	if err = os.Remove(markerFilename); err != nil {
		return fmt.Errorf("remove stale run marker: %w", err)
	}

	return nil
}
