package builder

import (
	"archive/tar"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeConverter stands in for vmware-vdiskmanager by copying the source disk.
type fakeConverter struct{}

func (fakeConverter) Convert(_ context.Context, src, dst string) error {
	contents, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, contents, 0o600)
}

// ubuntuManifest is a complete single-build manifest with every metadata key
// the descriptor template references.
const ubuntuManifest = `{
	"builds": [
		{
			"name": "ubuntu",
			"artifact_id": "ubuntu-kube-v1.20.4",
			"custom_data": {
				"build_date": "2021-03-13T01:52:28Z",
				"build_timestamp": "1615600348",
				"capi_version": "v0.7.6",
				"kubernetes_cni_semver": "v0.8.7",
				"os_name": "ubuntu",
				"iso_checksum": "f11bda10f2179e6f",
				"iso_checksum_type": "sha256",
				"iso_url": "http://releases.ubuntu.com/ubuntu.iso",
				"kubernetes_semver": "1.20.4",
				"kubernetes_source_type": "pkg"
			},
			"files": [
				{"name": "ubuntu.vmdk", "size": 17}
			]
		}
	]
}`

// setupBuildDir populates a temp build directory with the manifest and raw disk.
func setupBuildDir(t *testing.T, manifestJSON string) {
	t.Helper()
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile("packer-manifest.json", []byte(manifestJSON), 0o600))
	require.NoError(t, os.WriteFile("ubuntu.vmdk", []byte("raw disk contents"), 0o600))
}

// TestRun_EndToEnd packages the ubuntu scenario and verifies every output.
func TestRun_EndToEnd(t *testing.T) {
	setupBuildDir(t, ubuntuManifest)

	err := Run(context.Background(), &Options{
		BuildDir:  ".",
		Converter: fakeConverter{},
	})
	require.NoError(t, err)

	// Converted disk left on disk as a side effect.
	_, err = os.Stat("ubuntu.ova.vmdk")
	require.NoError(t, err)

	// Descriptor carries the substituted Kubernetes version.
	ovfContents, err := os.ReadFile("ubuntu.ovf")
	require.NoError(t, err)
	require.Contains(t, string(ovfContents), "Kubernetes 1.20.4")

	// Checksum manifest hashes match independently computed digests.
	mfContents, err := os.ReadFile("ubuntu.mf")
	require.NoError(t, err)

	ovfDigest := sha256.Sum256(ovfContents)
	require.Contains(t, string(mfContents), "SHA256(ubuntu.ovf)= "+hex.EncodeToString(ovfDigest[:]))

	diskContents, err := os.ReadFile("ubuntu.ova.vmdk")
	require.NoError(t, err)

	diskDigest := sha256.Sum256(diskContents)
	require.Contains(t, string(mfContents), "SHA256(ubuntu.ova.vmdk)= "+hex.EncodeToString(diskDigest[:]))

	// Archive contains exactly three members in order.
	f, err := os.Open("ubuntu.ova")
	require.NoError(t, err)

	defer func() {
		_ = f.Close()
	}()

	tr := tar.NewReader(f)
	for _, want := range []string{"ubuntu.ovf", "ubuntu.mf", "ubuntu.ova.vmdk"} {
		header, err := tr.Next()
		require.NoError(t, err)
		require.Equal(t, want, header.Name)
	}

	_, err = tr.Next()
	require.ErrorIs(t, err, io.EOF)

	// Sidecar equals the hash of the archive as written.
	ovaContents, err := os.ReadFile("ubuntu.ova")
	require.NoError(t, err)

	ovaDigest := sha256.Sum256(ovaContents)

	sidecar, err := os.ReadFile("ubuntu.ova.sha256")
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(ovaDigest[:]), string(sidecar))

	// Run marker was released.
	_, err = os.Stat(markerFilename)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestRun_Rerun overwrites prior outputs, including a stale converted disk.
func TestRun_Rerun(t *testing.T) {
	setupBuildDir(t, ubuntuManifest)
	require.NoError(t, os.WriteFile("ubuntu.ova.vmdk", []byte("stale output from a previous run"), 0o600))

	opts := &Options{BuildDir: ".", Converter: fakeConverter{}}
	require.NoError(t, Run(context.Background(), opts))

	contents, err := os.ReadFile("ubuntu.ova.vmdk")
	require.NoError(t, err)
	require.Equal(t, "raw disk contents", string(contents))

	// Second run over its own outputs succeeds as well.
	require.NoError(t, Run(context.Background(), opts))
}

// TestRun_MissingMetadata fails before the descriptor is written.
func TestRun_MissingMetadata(t *testing.T) {
	incomplete := `{
		"builds": [
			{
				"name": "ubuntu",
				"artifact_id": "ubuntu-kube-v1.20.4",
				"custom_data": {"os_name": "ubuntu"},
				"files": [{"name": "ubuntu.vmdk", "size": 17}]
			}
		]
	}`
	setupBuildDir(t, incomplete)

	err := Run(context.Background(), &Options{
		BuildDir:  ".",
		Converter: fakeConverter{},
	})
	require.Error(t, err)

	_, err = os.Stat("ubuntu.ovf")
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestRun_NoManifest fails when the build directory has no manifest.
func TestRun_NoManifest(t *testing.T) {
	chdir(t, t.TempDir())

	err := Run(context.Background(), &Options{
		BuildDir:  ".",
		Converter: fakeConverter{},
	})
	require.Error(t, err)
}

// TestRun_GuardedByLiveMarker refuses to run while another process holds the marker.
func TestRun_GuardedByLiveMarker(t *testing.T) {
	setupBuildDir(t, ubuntuManifest)

	// The current test process is certainly alive.
	pid := strconv.Itoa(os.Getpid())
	require.NoError(t, os.WriteFile(markerFilename, []byte(pid), 0o600))

	err := Run(context.Background(), &Options{
		BuildDir:  ".",
		Converter: fakeConverter{},
	})
	require.ErrorIs(t, err, errBuildRunning)
}

// TestCheckMarker_Stale removes an unreadable marker and proceeds.
func TestCheckMarker_Stale(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(markerFilename, []byte("not-a-pid"), 0o600))
	require.NoError(t, checkMarker(context.Background()))

	_, err := os.Stat(markerFilename)
	require.ErrorIs(t, err, os.ErrNotExist)
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
