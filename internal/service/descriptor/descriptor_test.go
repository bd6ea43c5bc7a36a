package descriptor

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmware/govmomi/ovf"

	"github.com/oshokin/image-build-ova/internal/manifest"
)

// testBuild returns a build with the full metadata set the template references.
func testBuild() *manifest.Build {
	return &manifest.Build{
		Name:       "ubuntu",
		ArtifactID: "ubuntu-kube-v1.20.4",
		CustomData: map[string]string{
			"build_date":             "2021-03-13T01:52:28Z",
			"build_timestamp":        "1615600348",
			"capi_version":           "v0.7.6",
			"kubernetes_cni_semver":  "v0.8.7",
			"os_name":                "ubuntu",
			"iso_checksum":           "f11bda10f2179e6f",
			"iso_checksum_type":      "sha256",
			"iso_url":                "http://releases.ubuntu.com/ubuntu.iso",
			"kubernetes_semver":      "1.20.4",
			"kubernetes_source_type": "pkg",
		},
	}
}

// testDisk returns a converted disk entry.
func testDisk() *manifest.FileEntry {
	return &manifest.FileEntry{
		Name:       "ubuntu.vmdk",
		Size:       4025483264,
		StreamName: "ubuntu.ova.vmdk",
		StreamSize: 1242560512,
	}
}

// TestRender substitutes metadata and produces an envelope the canonical
// OVF reader can consume.
func TestRender(t *testing.T) {
	t.Parallel()

	params, err := Params(testBuild(), testDisk())
	require.NoError(t, err)

	contents, err := Render(params)
	require.NoError(t, err)

	require.Contains(t, string(contents), "Kubernetes 1.20.4")
	require.Contains(t, string(contents), `ovf:href="ubuntu.ova.vmdk"`)
	require.Contains(t, string(contents), `ovf:size="1242560512"`)
	require.Contains(t, string(contents), `ovf:populatedSize="4025483264"`)
	require.NotContains(t, string(contents), "{{")

	env, err := ovf.Unmarshal(bytes.NewReader(contents))
	require.NoError(t, err)
	require.NotNil(t, env.VirtualSystem)
	require.Equal(t, "ubuntu-kube-v1.20.4", env.VirtualSystem.ID)
	require.Len(t, env.References, 1)
}

// TestParams_MissingMetadataKey fails before anything is rendered.
func TestParams_MissingMetadataKey(t *testing.T) {
	t.Parallel()

	build := testBuild()
	delete(build.CustomData, "kubernetes_semver")

	_, err := Params(build, testDisk())
	require.ErrorContains(t, err, "kubernetes_semver")
}

// TestCreate_MissingValue ensures no output file is written when a
// placeholder has no supplied value.
func TestCreate_MissingValue(t *testing.T) {
	t.Parallel()

	params, err := Params(testBuild(), testDisk())
	require.NoError(t, err)
	delete(params, "OS_NAME")

	path := filepath.Join(t.TempDir(), "ubuntu.ovf")
	require.Error(t, Create(path, params))

	_, err = os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestCreate writes the rendered descriptor to disk.
func TestCreate(t *testing.T) {
	t.Parallel()

	params, err := Params(testBuild(), testDisk())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ubuntu.ovf")
	require.NoError(t, Create(path, params))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "<Envelope")
}
