package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oshokin/image-build-ova/internal/service/checksum"
)

// archiveFilePermissions is applied to the written OVA and its sidecar.
const archiveFilePermissions = 0o644

// Create writes an uncompressed tar archive at path containing exactly the
// member files, in the given order. Member order matters for OVA consumers:
// the descriptor must come first.
func Create(path string, members []string) error {
	f, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, archiveFilePermissions)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}

	// Best-effort cleanup on error paths; the happy path closes explicitly.
	defer func() {
		_ = f.Close()
	}()

	tw := tar.NewWriter(f)

	for _, member := range members {
		if err := addMember(tw, member); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}

	return f.Close()
}

// WriteChecksum computes the archive's SHA-256 and writes it to a
// `<path>.sha256` sidecar file. It returns the sidecar path.
func WriteChecksum(path string) (string, error) {
	digest, err := checksum.FileSHA256(path)
	if err != nil {
		return "", err
	}

	sidecar := path + ".sha256"
	if err := os.WriteFile(sidecar, []byte(digest), archiveFilePermissions); err != nil {
		return "", fmt.Errorf("write archive checksum: %w", err)
	}

	return sidecar, nil
}

// addMember appends one regular file to the archive.
func addMember(tw *tar.Writer, member string) error {
	info, err := os.Stat(member)
	if err != nil {
		return fmt.Errorf("stat member %s: %w", member, err)
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("header for %s: %w", member, err)
	}

	// Keep the manifest-relative name, not just the basename.
	header.Name = filepath.ToSlash(member)

	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("write header for %s: %w", member, err)
	}

	f, err := os.Open(filepath.Clean(member))
	if err != nil {
		return fmt.Errorf("open member %s: %w", member, err)
	}

	defer func() {
		_ = f.Close()
	}()

	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("write member %s: %w", member, err)
	}

	return nil
}
