package checksum

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// copyBufferSize keeps memory bounded while hashing multi-gigabyte disks.
	copyBufferSize = 64 * 1024

	// manifestFilePermissions is applied to the written checksum manifest.
	manifestFilePermissions = 0o644
)

// FileSHA256 returns the hex-encoded SHA-256 digest of the file at path,
// read in fixed-size chunks.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}

	// Best-effort cleanup.
	defer func() {
		_ = f.Close()
	}()

	hasher := sha256.New()

	buf := make([]byte, copyBufferSize)
	if _, err := io.CopyBuffer(hasher, f, buf); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// WriteManifest writes one `SHA256(name)= hexdigest` line per member file,
// in input order, to the provided path.
func WriteManifest(path string, members []string) error {
	f, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, manifestFilePermissions)
	if err != nil {
		return fmt.Errorf("create checksum manifest: %w", err)
	}

	// Best-effort cleanup on error paths; the happy path closes explicitly.
	defer func() {
		_ = f.Close()
	}()

	w := bufio.NewWriter(f)

	for _, member := range members {
		digest, err := FileSHA256(member)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "SHA256(%s)= %s\n", member, digest); err != nil {
			return fmt.Errorf("write checksum manifest: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush checksum manifest: %w", err)
	}

	return f.Close()
}
