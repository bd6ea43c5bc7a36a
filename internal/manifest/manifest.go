package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BuildManifest is the parsed Packer manifest describing one or more builds.
type BuildManifest struct {
	// Builds lists the build results in the order Packer produced them.
	Builds []*Build `json:"builds"`
}

// Build is one named build result from the Packer manifest.
type Build struct {
	// Name is the build name, used as the basename for every produced artifact.
	Name string `json:"name"`
	// ArtifactID identifies the build artifact (virtual system id in the descriptor).
	ArtifactID string `json:"artifact_id"`
	// CustomData carries free-form build metadata (OS name, Kubernetes version, timestamps).
	CustomData map[string]string `json:"custom_data"`
	// Files lists the output files the build produced.
	Files []*FileEntry `json:"files"`
}

// FileEntry describes one produced file. StreamName and StreamSize are
// attached in place once disk conversion runs.
type FileEntry struct {
	// Name is the path of the file relative to the build directory.
	Name string `json:"name"`
	// Size is the populated size of the file in bytes, as reported by Packer.
	Size int64 `json:"size"`
	// StreamName is the path of the stream-optimized copy, set by the converter.
	StreamName string `json:"-"`
	// StreamSize is the size in bytes of the stream-optimized copy, set by the converter.
	StreamSize int64 `json:"-"`
}

var (
	// ErrNoBuilds indicates the manifest contains an empty builds list.
	ErrNoBuilds = errors.New("manifest contains no builds")
	// ErrUnnamedBuild indicates a build entry without a name.
	ErrUnnamedBuild = errors.New("build has no name")
)

// Load reads and validates a Packer manifest from the provided path.
func Load(path string) (*BuildManifest, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m BuildManifest
	if err := json.Unmarshal(contents, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	if len(m.Builds) == 0 {
		return nil, ErrNoBuilds
	}

	for _, b := range m.Builds {
		if b.Name == "" {
			return nil, ErrUnnamedBuild
		}
	}

	return &m, nil
}

// First returns the first build in the manifest.
// Only the first build is packaged; multi-build manifests are a known limitation.
func (m *BuildManifest) First() *Build {
	return m.Builds[0]
}

// DiskFiles returns the build's files whose name ends in the provided extension.
func (b *Build) DiskFiles(ext string) []*FileEntry {
	var out []*FileEntry

	for _, f := range b.Files {
		if strings.HasSuffix(f.Name, ext) {
			out = append(out, f)
		}
	}

	return out
}

// Metadata returns the value for the provided custom_data key
// and whether the key was present.
func (b *Build) Metadata(key string) (string, bool) {
	v, ok := b.CustomData[key]
	return v, ok
}
