package descriptor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/oshokin/image-build-ova/internal/manifest"
)

// outputFilePermissions is applied to the rendered descriptor file.
const outputFilePermissions = 0o644

// metadataKeys maps template placeholders to the custom_data keys
// they are populated from.
//
//nolint:gochecknoglobals // Static placeholder-to-key mapping.
var metadataKeys = map[string]string{
	"BUILD_DATE":             "build_date",
	"BUILD_TIMESTAMP":        "build_timestamp",
	"CAPI_VERSION":           "capi_version",
	"CNI_VERSION":            "kubernetes_cni_semver",
	"OS_NAME":                "os_name",
	"ISO_CHECKSUM":           "iso_checksum",
	"ISO_CHECKSUM_TYPE":      "iso_checksum_type",
	"ISO_URL":                "iso_url",
	"KUBERNETES_SEMVER":      "kubernetes_semver",
	"KUBERNETES_SOURCE_TYPE": "kubernetes_source_type",
}

// tpl is the compiled OVF template. A placeholder without a supplied value
// fails rendering rather than producing an empty field.
//
//nolint:gochecknoglobals // Compiled once, read-only afterwards.
var tpl = template.Must(
	template.New("ovf").Option("missingkey=error").Parse(ovfTemplate),
)

// Params assembles the flat substitution map for the descriptor from the
// build metadata and the converted disk. It fails if any metadata key the
// template references is absent, so nothing is written for incomplete input.
func Params(build *manifest.Build, disk *manifest.FileEntry) (map[string]string, error) {
	params := map[string]string{
		"BUILD_NAME":          build.Name,
		"ARTIFACT_ID":         build.ArtifactID,
		"POPULATED_DISK_SIZE": strconv.FormatInt(disk.Size, 10),
		"STREAM_DISK_SIZE":    strconv.FormatInt(disk.StreamSize, 10),
	}

	for placeholder, key := range metadataKeys {
		value, ok := build.Metadata(key)
		if !ok {
			return nil, fmt.Errorf("build %s: missing metadata key %q", build.Name, key)
		}

		params[placeholder] = value
	}

	return params, nil
}

// Render substitutes the parameters into the OVF template.
func Render(params map[string]string) ([]byte, error) {
	var buf bytes.Buffer

	if err := tpl.Execute(&buf, params); err != nil {
		return nil, fmt.Errorf("render descriptor: %w", err)
	}

	return buf.Bytes(), nil
}

// Create renders the descriptor and writes it to the provided path.
// The template is rendered fully in memory first, so a substitution
// failure leaves no partial file behind.
func Create(path string, params map[string]string) error {
	contents, err := Render(params)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Clean(path), contents, outputFilePermissions); err != nil {
		return fmt.Errorf("write descriptor: %w", err)
	}

	return nil
}
