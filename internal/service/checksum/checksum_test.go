package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFileSHA256 matches an independently computed digest.
func TestFileSHA256(t *testing.T) {
	t.Parallel()

	contents := []byte("stream-optimized disk bytes")
	path := filepath.Join(t.TempDir(), "disk.ova.vmdk")
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	want := sha256.Sum256(contents)

	got, err := FileSHA256(path)
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(want[:]), got)
}

// TestFileSHA256_Missing surfaces an open error.
func TestFileSHA256_Missing(t *testing.T) {
	t.Parallel()

	_, err := FileSHA256(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

// TestWriteManifest writes one line per member in input order.
func TestWriteManifest(t *testing.T) {
	chdir(t, t.TempDir())

	files := map[string]string{
		"ubuntu.ovf":      "<Envelope/>",
		"ubuntu.ova.vmdk": "disk bytes",
	}
	for name, contents := range files {
		require.NoError(t, os.WriteFile(name, []byte(contents), 0o600))
	}

	members := []string{"ubuntu.ovf", "ubuntu.ova.vmdk"}
	require.NoError(t, WriteManifest("ubuntu.mf", members))

	contents, err := os.ReadFile("ubuntu.mf")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(contents), "\n"), "\n")
	require.Len(t, lines, 2)

	for i, member := range members {
		digest := sha256.Sum256([]byte(files[member]))
		require.Equal(t, fmt.Sprintf("SHA256(%s)= %s", member, hex.EncodeToString(digest[:])), lines[i])
	}
}

// TestWriteManifest_UnreadableMember aborts on a missing member file.
func TestWriteManifest_UnreadableMember(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := WriteManifest(filepath.Join(dir, "out.mf"), []string{filepath.Join(dir, "missing")})
	require.Error(t, err)
}

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (stand-in for t.Chdir, which
// requires Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}
