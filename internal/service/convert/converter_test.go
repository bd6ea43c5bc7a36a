package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/image-build-ova/internal/manifest"
)

// fakeConverter copies the source file to the destination,
// optionally failing instead.
type fakeConverter struct {
	err   error
	calls int
}

func (f *fakeConverter) Convert(_ context.Context, src, dst string) error {
	f.calls++

	if f.err != nil {
		return f.err
	}

	contents, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, contents, 0o600)
}

// TestStreamName checks destination path derivation.
func TestStreamName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ubuntu.ova.vmdk", StreamName("ubuntu.vmdk", ".vmdk"))
	require.Equal(t, filepath.Join("out", "x.ova.vmdk"), StreamName(filepath.Join("out", "x.vmdk"), ".vmdk"))
}

// TestStreamOptimize converts a disk and records path and size on the entry.
func TestStreamOptimize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "ubuntu.vmdk")
	require.NoError(t, os.WriteFile(src, []byte("raw disk contents"), 0o600))

	entry := &manifest.FileEntry{Name: src}
	conv := new(fakeConverter)

	require.NoError(t, StreamOptimize(context.Background(), conv, []*manifest.FileEntry{entry}, ".vmdk"))
	require.Equal(t, 1, conv.calls)
	require.Equal(t, filepath.Join(dir, "ubuntu.ova.vmdk"), entry.StreamName)
	require.EqualValues(t, len("raw disk contents"), entry.StreamSize)
}

// TestStreamOptimize_OverwritesStaleOutput ensures a pre-existing destination
// is removed before conversion runs again.
func TestStreamOptimize_OverwritesStaleOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "ubuntu.vmdk")
	dst := filepath.Join(dir, "ubuntu.ova.vmdk")

	require.NoError(t, os.WriteFile(src, []byte("fresh"), 0o600))
	require.NoError(t, os.WriteFile(dst, []byte("stale output from a previous run"), 0o600))

	entry := &manifest.FileEntry{Name: src}

	require.NoError(t, StreamOptimize(context.Background(), new(fakeConverter), []*manifest.FileEntry{entry}, ".vmdk"))

	contents, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "fresh", string(contents))
	require.EqualValues(t, len("fresh"), entry.StreamSize)
}

// TestStreamOptimize_ConverterFailure propagates the tool error.
func TestStreamOptimize_ConverterFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "ubuntu.vmdk")
	require.NoError(t, os.WriteFile(src, []byte("raw"), 0o600))

	wantErr := errors.New("disk is corrupt")
	conv := &fakeConverter{err: wantErr}

	err := StreamOptimize(context.Background(), conv, []*manifest.FileEntry{{Name: src}}, ".vmdk")
	require.ErrorIs(t, err, wantErr)
}

// TestStreamOptimize_NoDisks rejects an empty candidate list.
func TestStreamOptimize_NoDisks(t *testing.T) {
	t.Parallel()

	err := StreamOptimize(context.Background(), new(fakeConverter), nil, ".vmdk")
	require.Error(t, err)
}

// TestVDiskManager_MissingTool surfaces a failure when the executable does not exist.
func TestVDiskManager_MissingTool(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	m := NewVDiskManager(filepath.Join(dir, "no-such-tool"), "5")

	err := m.Convert(context.Background(), filepath.Join(dir, "a.vmdk"), filepath.Join(dir, "b.vmdk"))
	require.Error(t, err)
}
